// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCHabPolar(t *testing.T) {
	lch := LAB{50, 3, 4}.LCHab()
	assert.InDelta(t, 50, lch.L, 1e-12)
	assert.InDelta(t, 5, lch.C, 1e-12)

	// pure +b axis is a 90 degree hue
	lch = LAB{50, 0, 10}.LCHab()
	assert.InDelta(t, 90, lch.H, 1e-9)

	// negative a and b land in the third quadrant, wrapped positive
	lch = LAB{50, -10, -10}.LCHab()
	assert.InDelta(t, 225, lch.H, 1e-9)
}

func TestAchromaticLABHasZeroChroma(t *testing.T) {
	lch := LAB{50, 0, 0}.LCHab()
	assert.Equal(t, 0.0, lch.C)
	assert.Equal(t, 0.0, lch.H)
	assert.Equal(t, 50.0, lch.L)
}

func TestLCHabRoundTrip(t *testing.T) {
	for _, lab := range []LAB{
		{50, 20, -30},
		{100, 0, 0},
		{30, -15, 45},
		{75, 120, 5},
	} {
		back := lab.LCHab().LAB()
		assert.InDelta(t, lab.L, back.L, 1e-9)
		assert.InDelta(t, lab.A, back.A, 1e-9)
		assert.InDelta(t, lab.B, back.B, 1e-9)
	}
}

func TestHueWrapping(t *testing.T) {
	// hues outside [0, 360) wrap rather than clamp
	over := LCHab{50, 20, 370}.LAB().LCHab()
	assert.InDelta(t, 10, over.H, 1e-9)

	under := LCHab{50, 20, -10}.LAB().LCHab()
	assert.InDelta(t, 350, under.H, 1e-9)
}

func TestProducedHuesAreNormalized(t *testing.T) {
	for _, c := range testRGBColors {
		for _, h := range []float64{
			c.HSV().H,
			c.HLS().H,
			c.LCHab().H,
			c.LCHuv().H,
		} {
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Less(t, h, 360.0)
		}
	}
}

func TestLABThroughRGB(t *testing.T) {
	// full composed route: LAB -> XYZ -> RGB -> XYZ -> LAB
	lab := RGB{0.8, 0.3, 0.2}.LAB()
	back := lab.RGB().LAB()
	assert.InDelta(t, lab.L, back.L, 1e-4)
	assert.InDelta(t, lab.A, back.A, 1e-4)
	assert.InDelta(t, lab.B, back.B, 1e-4)
}
