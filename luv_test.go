// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCHuvPolar(t *testing.T) {
	lch := LUV{50, 3, 4}.LCHuv()
	assert.InDelta(t, 5, lch.C, 1e-12)

	lch = LUV{50, 0, 0}.LCHuv()
	assert.Equal(t, 0.0, lch.C)
	assert.Equal(t, 0.0, lch.H)
}

func TestLCHuvRoundTrip(t *testing.T) {
	for _, luv := range []LUV{
		{50, 20, -30},
		{100, 0, 0},
		{30, -15, 45},
	} {
		back := luv.LCHuv().LUV()
		assert.InDelta(t, luv.L, back.L, 1e-9)
		assert.InDelta(t, luv.U, back.U, 1e-9)
		assert.InDelta(t, luv.V, back.V, 1e-9)
	}
}

func TestLUVRoundTripWhitePoints(t *testing.T) {
	xyz := XYZ{0.25, 0.4, 0.1}
	for name, wp := range WhitePoints {
		back := xyz.LUV(wp).XYZ(wp)
		assert.InDelta(t, xyz.X, back.X, 1e-6, name)
		assert.InDelta(t, xyz.Y, back.Y, 1e-6, name)
		assert.InDelta(t, xyz.Z, back.Z, 1e-6, name)
	}
}

func TestLUVZeroLightness(t *testing.T) {
	// L == 0 has undefined chromaticity offsets; it maps to black
	// instead of dividing by zero
	assert.Equal(t, XYZ{}, LUV{0, 25, -40}.XYZ())
}
