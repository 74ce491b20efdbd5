// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"
)

// HSV is a cylindrical color with hue in degrees [0, 360) and
// saturation and value in [0, 1].
type HSV struct {
	H, S, V float64
}

// NewHSV returns an HSV color from hue in degrees and saturation and
// value in [0, 1].
func NewHSV(h, s, v float64) HSV {
	return HSV{h, s, v}
}

// RGB converts using the six-sector formula. Zero saturation yields
// the neutral gray of the value channel regardless of hue.
func (c HSV) RGB(wp ...WhitePoint) RGB {
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}
	h := wrapHue(c.H) / 60
	i := math.Floor(h)
	f := h - i
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*f)
	t := c.V * (1 - c.S*(1-f))
	switch int(i) % 6 {
	case 0:
		return RGB{c.V, t, p}
	case 1:
		return RGB{q, c.V, p}
	case 2:
		return RGB{p, c.V, t}
	case 3:
		return RGB{p, q, c.V}
	case 4:
		return RGB{t, p, c.V}
	default:
		return RGB{c.V, p, q}
	}
}

func (c HSV) HSV(wp ...WhitePoint) HSV     { return c }
func (c HSV) HLS(wp ...WhitePoint) HLS     { return c.RGB().HLS() }
func (c HSV) XYZ(wp ...WhitePoint) XYZ     { return c.RGB().XYZ() }
func (c HSV) LAB(wp ...WhitePoint) LAB     { return c.RGB().LAB(wp...) }
func (c HSV) LCHab(wp ...WhitePoint) LCHab { return c.RGB().LCHab(wp...) }
func (c HSV) LUV(wp ...WhitePoint) LUV     { return c.RGB().LUV(wp...) }
func (c HSV) LCHuv(wp ...WhitePoint) LCHuv { return c.RGB().LCHuv(wp...) }

func (c HSV) Hex() string { return c.RGB().Hex() }

func (c HSV) Components() [3]float64 { return [3]float64{c.H, c.S, c.V} }

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%g, %g, %g)", c.H, c.S, c.V)
}
