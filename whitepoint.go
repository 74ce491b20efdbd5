// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// WhitePoint is the XYZ tristimulus value of a reference illuminant,
// defining what that illuminant calls white. It parameterizes the
// XYZ↔LAB and XYZ↔LUV transforms and chromatic adaptation.
type WhitePoint struct {
	X, Y, Z float64
}

// Standard illuminants, CIE 1931 2° observer, normalized to Y = 1.
var (
	A   = WhitePoint{1.09850, 1.00000, 0.35585}
	B   = WhitePoint{0.99072, 1.00000, 0.85223}
	C   = WhitePoint{0.98074, 1.00000, 1.18232}
	D50 = WhitePoint{0.96422, 1.00000, 0.82521}
	D55 = WhitePoint{0.95682, 1.00000, 0.92149}
	D65 = WhitePoint{0.95047, 1.00000, 1.08883}
	D75 = WhitePoint{0.94972, 1.00000, 1.22638}
	E   = WhitePoint{1.00000, 1.00000, 1.00000}
	F2  = WhitePoint{0.99186, 1.00000, 0.67393}
	F7  = WhitePoint{0.95041, 1.00000, 1.08747}
	F11 = WhitePoint{1.00962, 1.00000, 0.64350}
)

// WhitePoints maps illuminant names to their white points.
var WhitePoints = map[string]WhitePoint{
	"A":   A,
	"B":   B,
	"C":   C,
	"D50": D50,
	"D55": D55,
	"D65": D65,
	"D75": D75,
	"E":   E,
	"F2":  F2,
	"F7":  F7,
	"F11": F11,
}

// white resolves an optional trailing white-point argument,
// defaulting to [D65].
func white(wp []WhitePoint) WhitePoint {
	if len(wp) == 0 {
		return D65
	}
	return wp[0]
}
