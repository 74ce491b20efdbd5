// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"
)

// LUV is a CIE L*u*v* color. L is in [0, 100]; u and v are unbounded.
// Like [LAB], LUV coordinates are relative to a reference white taken
// as an optional conversion argument defaulting to [D65].
type LUV struct {
	L, U, V float64
}

// NewLUV returns a CIE L*u*v* color.
func NewLUV(l, u, v float64) LUV {
	return LUV{l, u, v}
}

// XYZ inverts the CIE LUV transform relative to the given reference
// white (default [D65]). A color with L == 0 maps to black, since the
// u and v offsets are undefined there.
func (c LUV) XYZ(wp ...WhitePoint) XYZ {
	w := white(wp)
	if c.L == 0 {
		return XYZ{}
	}
	var y float64
	if c.L > cieKappa*cieEpsilon {
		fy := (c.L + 16) / 116
		y = fy * fy * fy
	} else {
		y = c.L / cieKappa
	}
	y *= w.Y

	ur, vr := uvPrime(w.X, w.Y, w.Z)
	u := c.U/(13*c.L) + ur
	v := c.V/(13*c.L) + vr
	if v == 0 {
		return XYZ{0, y, 0}
	}
	return XYZ{
		y * 9 * u / (4 * v),
		y,
		y * (12 - 3*u - 20*v) / (4 * v),
	}
}

func (c LUV) RGB(wp ...WhitePoint) RGB     { return c.XYZ(wp...).RGB() }
func (c LUV) HSV(wp ...WhitePoint) HSV     { return c.RGB(wp...).HSV() }
func (c LUV) HLS(wp ...WhitePoint) HLS     { return c.RGB(wp...).HLS() }
func (c LUV) LAB(wp ...WhitePoint) LAB     { return c.XYZ(wp...).LAB(wp...) }
func (c LUV) LCHab(wp ...WhitePoint) LCHab { return c.LAB(wp...).LCHab() }
func (c LUV) LUV(wp ...WhitePoint) LUV     { return c }

// LCHuv converts to polar form. The hue is wrapped into [0, 360); an
// achromatic color (u == v == 0) gets chroma 0 and hue 0.
func (c LUV) LCHuv(wp ...WhitePoint) LCHuv {
	ch := math.Hypot(c.U, c.V)
	if ch == 0 {
		return LCHuv{c.L, 0, 0}
	}
	return LCHuv{c.L, ch, wrapHue(math.Atan2(c.V, c.U) * 180 / math.Pi)}
}

func (c LUV) Hex() string { return c.RGB().Hex() }

func (c LUV) Components() [3]float64 { return [3]float64{c.L, c.U, c.V} }

func (c LUV) String() string {
	return fmt.Sprintf("luv(%g, %g, %g)", c.L, c.U, c.V)
}

// LCHuv is the polar form of [LUV]: lightness, chroma c ≥ 0, and hue
// in degrees [0, 360).
type LCHuv struct {
	L, C, H float64
}

// NewLCHuv returns a polar CIE LCH(uv) color.
func NewLCHuv(l, c, h float64) LCHuv {
	return LCHuv{l, c, h}
}

// LUV converts back to Cartesian form, with the hue taken in degrees.
func (c LCHuv) LUV(wp ...WhitePoint) LUV {
	h := c.H * math.Pi / 180
	return LUV{c.L, c.C * math.Cos(h), c.C * math.Sin(h)}
}

func (c LCHuv) RGB(wp ...WhitePoint) RGB     { return c.LUV().RGB(wp...) }
func (c LCHuv) HSV(wp ...WhitePoint) HSV     { return c.LUV().HSV(wp...) }
func (c LCHuv) HLS(wp ...WhitePoint) HLS     { return c.LUV().HLS(wp...) }
func (c LCHuv) XYZ(wp ...WhitePoint) XYZ     { return c.LUV().XYZ(wp...) }
func (c LCHuv) LAB(wp ...WhitePoint) LAB     { return c.LUV().LAB(wp...) }
func (c LCHuv) LCHab(wp ...WhitePoint) LCHab { return c.LUV().LCHab(wp...) }
func (c LCHuv) LCHuv(wp ...WhitePoint) LCHuv { return c }

func (c LCHuv) Hex() string { return c.RGB().Hex() }

func (c LCHuv) Components() [3]float64 { return [3]float64{c.L, c.C, c.H} }

func (c LCHuv) String() string {
	return fmt.Sprintf("lchuv(%g, %g, %g)", c.L, c.C, c.H)
}
