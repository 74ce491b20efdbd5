// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// HLS is a cylindrical color with hue in degrees [0, 360) and
// lightness and saturation in [0, 1].
type HLS struct {
	H, L, S float64
}

// NewHLS returns an HLS color from hue in degrees and lightness and
// saturation in [0, 1].
func NewHLS(h, l, s float64) HLS {
	return HLS{h, l, s}
}

// RGB converts using the standard HLS hue ramp. Zero saturation yields
// the neutral gray of the lightness channel regardless of hue.
func (c HLS) RGB(wp ...WhitePoint) RGB {
	if c.S == 0 {
		return RGB{c.L, c.L, c.L}
	}
	var m2 float64
	if c.L < 0.5 {
		m2 = c.L * (1 + c.S)
	} else {
		m2 = c.L + c.S - c.L*c.S
	}
	m1 := 2*c.L - m2
	h := wrapHue(c.H)
	return RGB{
		hueToChannel(m1, m2, h+120),
		hueToChannel(m1, m2, h),
		hueToChannel(m1, m2, h-120),
	}
}

// hueToChannel evaluates the piecewise HLS hue ramp for one channel.
func hueToChannel(m1, m2, h float64) float64 {
	h = wrapHue(h)
	switch {
	case h < 60:
		return m1 + (m2-m1)*h/60
	case h < 180:
		return m2
	case h < 240:
		return m1 + (m2-m1)*(240-h)/60
	default:
		return m1
	}
}

func (c HLS) HSV(wp ...WhitePoint) HSV     { return c.RGB().HSV() }
func (c HLS) HLS(wp ...WhitePoint) HLS     { return c }
func (c HLS) XYZ(wp ...WhitePoint) XYZ     { return c.RGB().XYZ() }
func (c HLS) LAB(wp ...WhitePoint) LAB     { return c.RGB().LAB(wp...) }
func (c HLS) LCHab(wp ...WhitePoint) LCHab { return c.RGB().LCHab(wp...) }
func (c HLS) LUV(wp ...WhitePoint) LUV     { return c.RGB().LUV(wp...) }
func (c HLS) LCHuv(wp ...WhitePoint) LCHuv { return c.RGB().LCHuv(wp...) }

func (c HLS) Hex() string { return c.RGB().Hex() }

func (c HLS) Components() [3]float64 { return [3]float64{c.H, c.L, c.S} }

func (c HLS) String() string {
	return fmt.Sprintf("hls(%g, %g, %g)", c.H, c.L, c.S)
}
