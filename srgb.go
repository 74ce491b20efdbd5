// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// mat3 is a row-major 3×3 matrix.
type mat3 [9]float64

func (m mat3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// sRGB primary matrices relative to D65. The inverse is carried to
// full double precision rather than the usual 7 published digits so
// that RGB→XYZ→RGB round-trips are exact to machine precision.
var (
	srgbToXYZ = mat3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToSRGB = mat3{
		3.2404548360214083, -1.5371388501025751, -0.4985315468684809,
		-0.9692663898756537, 1.8760109288424913, 0.0415560823466735,
		0.0556434196042137, -0.2040258542676981, 1.0572251624579287,
	}
)

// compand applies the sRGB transfer curve to a linear channel,
// producing a display-ready value.
func compand(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// linearize inverts [compand], recovering linear light from a
// companded sRGB channel.
func linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
