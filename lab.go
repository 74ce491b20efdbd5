// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"
)

// LAB is a CIE L*a*b* color. L is in [0, 100]; a and b are unbounded,
// practically within about ±150 for displayable colors. LAB
// coordinates are only meaningful relative to a reference white, which
// conversions take as an optional argument defaulting to [D65].
type LAB struct {
	L, A, B float64
}

// NewLAB returns a CIE L*a*b* color.
func NewLAB(l, a, b float64) LAB {
	return LAB{l, a, b}
}

// XYZ inverts the CIE LAB transform relative to the given reference
// white (default [D65]).
func (c LAB) XYZ(wp ...WhitePoint) XYZ {
	w := white(wp)
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	xr := fx * fx * fx
	if xr <= cieEpsilon {
		xr = (116*fx - 16) / cieKappa
	}
	var yr float64
	if c.L > cieKappa*cieEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / cieKappa
	}
	zr := fz * fz * fz
	if zr <= cieEpsilon {
		zr = (116*fz - 16) / cieKappa
	}
	return XYZ{xr * w.X, yr * w.Y, zr * w.Z}
}

func (c LAB) RGB(wp ...WhitePoint) RGB { return c.XYZ(wp...).RGB() }
func (c LAB) HSV(wp ...WhitePoint) HSV { return c.RGB(wp...).HSV() }
func (c LAB) HLS(wp ...WhitePoint) HLS { return c.RGB(wp...).HLS() }
func (c LAB) LAB(wp ...WhitePoint) LAB { return c }

// LCHab converts to polar form. The hue is wrapped into [0, 360); an
// achromatic color (a == b == 0) gets chroma 0 and hue 0.
func (c LAB) LCHab(wp ...WhitePoint) LCHab {
	ch := math.Hypot(c.A, c.B)
	if ch == 0 {
		return LCHab{c.L, 0, 0}
	}
	return LCHab{c.L, ch, wrapHue(math.Atan2(c.B, c.A) * 180 / math.Pi)}
}

func (c LAB) LUV(wp ...WhitePoint) LUV     { return c.XYZ(wp...).LUV(wp...) }
func (c LAB) LCHuv(wp ...WhitePoint) LCHuv { return c.LUV(wp...).LCHuv() }

func (c LAB) Hex() string { return c.RGB().Hex() }

func (c LAB) Components() [3]float64 { return [3]float64{c.L, c.A, c.B} }

func (c LAB) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B)
}

// LCHab is the polar form of [LAB]: lightness, chroma c ≥ 0, and hue
// in degrees [0, 360).
type LCHab struct {
	L, C, H float64
}

// NewLCHab returns a polar CIE LCH(ab) color.
func NewLCHab(l, c, h float64) LCHab {
	return LCHab{l, c, h}
}

// LAB converts back to Cartesian form, with the hue taken in degrees.
func (c LCHab) LAB(wp ...WhitePoint) LAB {
	h := c.H * math.Pi / 180
	return LAB{c.L, c.C * math.Cos(h), c.C * math.Sin(h)}
}

func (c LCHab) RGB(wp ...WhitePoint) RGB     { return c.LAB().RGB(wp...) }
func (c LCHab) HSV(wp ...WhitePoint) HSV     { return c.LAB().HSV(wp...) }
func (c LCHab) HLS(wp ...WhitePoint) HLS     { return c.LAB().HLS(wp...) }
func (c LCHab) XYZ(wp ...WhitePoint) XYZ     { return c.LAB().XYZ(wp...) }
func (c LCHab) LCHab(wp ...WhitePoint) LCHab { return c }
func (c LCHab) LUV(wp ...WhitePoint) LUV     { return c.LAB().LUV(wp...) }
func (c LCHab) LCHuv(wp ...WhitePoint) LCHuv { return c.LAB().LCHuv(wp...) }

func (c LCHab) Hex() string { return c.RGB().Hex() }

func (c LCHab) Components() [3]float64 { return [3]float64{c.L, c.C, c.H} }

func (c LCHab) String() string {
	return fmt.Sprintf("lchab(%g, %g, %g)", c.L, c.C, c.H)
}
