// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"
)

// XYZ is a CIE 1931 tristimulus value in linear light, with components
// nonnegative and unbounded above.
type XYZ struct {
	X, Y, Z float64
}

// NewXYZ returns a CIE XYZ color.
func NewXYZ(x, y, z float64) XYZ {
	return XYZ{x, y, z}
}

// CIE standard breakpoints shared by the LAB and LUV transforms.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// RGB converts through the sRGB primary matrix and companding curve,
// gamut-correcting the result into [0, 1]. This is the only conversion
// edge that clamps.
func (c XYZ) RGB(wp ...WhitePoint) RGB {
	r, g, b := xyzToSRGB.apply(c.X, c.Y, c.Z)
	return RGB{compand(r), compand(g), compand(b)}.Clamped()
}

func (c XYZ) HSV(wp ...WhitePoint) HSV { return c.RGB().HSV() }
func (c XYZ) HLS(wp ...WhitePoint) HLS { return c.RGB().HLS() }
func (c XYZ) XYZ(wp ...WhitePoint) XYZ { return c }

// LAB converts relative to the given reference white (default [D65])
// using the CIE piecewise cube-root transform.
func (c XYZ) LAB(wp ...WhitePoint) LAB {
	w := white(wp)
	fx := labF(c.X / w.X)
	fy := labF(c.Y / w.Y)
	fz := labF(c.Z / w.Z)
	return LAB{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func (c XYZ) LCHab(wp ...WhitePoint) LCHab { return c.LAB(wp...).LCHab() }

// LUV converts relative to the given reference white (default [D65])
// through the (u′, v′) chromaticity coordinates.
func (c XYZ) LUV(wp ...WhitePoint) LUV {
	w := white(wp)
	u, v := uvPrime(c.X, c.Y, c.Z)
	ur, vr := uvPrime(w.X, w.Y, w.Z)
	yr := c.Y / w.Y
	var l float64
	if yr > cieEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieKappa * yr
	}
	return LUV{l, 13 * l * (u - ur), 13 * l * (v - vr)}
}

func (c XYZ) LCHuv(wp ...WhitePoint) LCHuv { return c.LUV(wp...).LCHuv() }

func (c XYZ) Hex() string { return c.RGB().Hex() }

func (c XYZ) Components() [3]float64 { return [3]float64{c.X, c.Y, c.Z} }

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", c.X, c.Y, c.Z)
}

// labF is the forward CIE L* compression curve.
func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

// uvPrime returns the (u′, v′) chromaticity of a tristimulus value,
// mapping the achromatic zero denominator to (0, 0).
func uvPrime(x, y, z float64) (float64, float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}
