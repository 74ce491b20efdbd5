// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYZRoundTrip(t *testing.T) {
	for _, c := range testRGBColors {
		back := c.XYZ().RGB()
		assert.InDelta(t, c.R, back.R, 1e-6)
		assert.InDelta(t, c.G, back.G, 1e-6)
		assert.InDelta(t, c.B, back.B, 1e-6)
	}
}

func TestXYZOfWhite(t *testing.T) {
	xyz := RGB{1, 1, 1}.XYZ()
	assert.InDelta(t, D65.X, xyz.X, 1e-4)
	assert.InDelta(t, D65.Y, xyz.Y, 1e-4)
	assert.InDelta(t, D65.Z, xyz.Z, 1e-4)
}

func TestGamutClamp(t *testing.T) {
	// points outside the sRGB gamut come back clamped into the cube
	for _, xyz := range []XYZ{
		{0.3, 0.6, 0.1},
		{0.2, 0.5, 0.1},
		{1.5, 1.0, 0.2},
		{0, 0.8, 0},
	} {
		c := xyz.RGB()
		for _, v := range c.Components() {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNoMidChainClamp(t *testing.T) {
	// RGB→XYZ must not clamp: a supersaturated input survives the
	// linear transform with out-of-range influence intact
	hot := RGB{1.2, -0.1, 0.5}.XYZ()
	cool := RGB{1, 0, 0.5}.XYZ()
	assert.NotEqual(t, cool, hot)
}

func TestLABRoundTrip(t *testing.T) {
	for _, c := range testRGBColors {
		xyz := c.XYZ()
		back := xyz.LAB().XYZ()
		assert.InDelta(t, xyz.X, back.X, 1e-6)
		assert.InDelta(t, xyz.Y, back.Y, 1e-6)
		assert.InDelta(t, xyz.Z, back.Z, 1e-6)
	}
}

func TestLABRoundTripWhitePoints(t *testing.T) {
	xyz := XYZ{0.25, 0.4, 0.1}
	for name, wp := range WhitePoints {
		back := xyz.LAB(wp).XYZ(wp)
		assert.InDelta(t, xyz.X, back.X, 1e-6, name)
		assert.InDelta(t, xyz.Y, back.Y, 1e-6, name)
		assert.InDelta(t, xyz.Z, back.Z, 1e-6, name)
	}
}

func TestLABOfReferenceWhite(t *testing.T) {
	// the white point itself is L=100, a=b=0 under its own illuminant
	for name, wp := range WhitePoints {
		lab := XYZ{wp.X, wp.Y, wp.Z}.LAB(wp)
		assert.InDelta(t, 100, lab.L, 1e-9, name)
		assert.InDelta(t, 0, lab.A, 1e-9, name)
		assert.InDelta(t, 0, lab.B, 1e-9, name)
	}
}

func TestLUVRoundTrip(t *testing.T) {
	for _, c := range testRGBColors {
		if c == (RGB{}) {
			continue // black collapses to L=0; tested separately
		}
		xyz := c.XYZ()
		back := xyz.LUV().XYZ()
		assert.InDelta(t, xyz.X, back.X, 1e-6)
		assert.InDelta(t, xyz.Y, back.Y, 1e-6)
		assert.InDelta(t, xyz.Z, back.Z, 1e-6)
	}
}

func TestLUVOfBlack(t *testing.T) {
	luv := XYZ{}.LUV()
	assert.Equal(t, LUV{}, luv)
	assert.Equal(t, XYZ{}, luv.XYZ())
}

func TestLUVOfReferenceWhite(t *testing.T) {
	for name, wp := range WhitePoints {
		luv := XYZ{wp.X, wp.Y, wp.Z}.LUV(wp)
		assert.InDelta(t, 100, luv.L, 1e-9, name)
		assert.InDelta(t, 0, luv.U, 1e-9, name)
		assert.InDelta(t, 0, luv.V, 1e-9, name)
	}
}

func TestDefaultWhitePointIsD65(t *testing.T) {
	xyz := XYZ{0.2, 0.3, 0.25}
	assert.Equal(t, xyz.LAB(D65), xyz.LAB())
	assert.Equal(t, xyz.LUV(D65), xyz.LUV())
	assert.NotEqual(t, xyz.LAB(D50), xyz.LAB())
}
