// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedMeanIdentity(t *testing.T) {
	c := LAB{50, 20, -30}
	got, err := WeightedMean([]LAB{c}, []float64{1})
	assert.NoError(t, err)
	assert.Equal(t, c, got)

	// weights are normalized, so scale does not matter
	got, err = WeightedMean([]LAB{c}, []float64{42})
	assert.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestWeightedMeanAverage(t *testing.T) {
	a := LAB{20, 10, 0}
	b := LAB{60, -10, 40}
	got, err := WeightedMean([]LAB{a, b}, []float64{1, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 40, got.L, 1e-12)
	assert.InDelta(t, 0, got.A, 1e-12)
	assert.InDelta(t, 20, got.B, 1e-12)
}

func TestWeightedMeanWeights(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{1, 1, 1}
	got, err := WeightedMean([]RGB{a, b}, []float64{3, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, got.R, 1e-12)
	assert.InDelta(t, 0.25, got.G, 1e-12)
	assert.InDelta(t, 0.25, got.B, 1e-12)
}

func TestWeightedMeanHueIsLinear(t *testing.T) {
	// hue averaging is plain linear: 350 and 10 blend to 180, not 0
	got, err := WeightedMean([]HSV{{350, 1, 1}, {10, 1, 1}}, []float64{1, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 180, got.H, 1e-12)
}

func TestWeightedMeanErrors(t *testing.T) {
	_, err := WeightedMean([]RGB{}, []float64{})
	assert.Error(t, err)

	_, err = WeightedMean([]RGB{{1, 0, 0}}, []float64{1, 2})
	assert.Error(t, err)

	_, err = WeightedMean([]RGB{{1, 0, 0}, {0, 1, 0}}, []float64{1, -1})
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustWeightedMean([]RGB{}, []float64{})
	})
}

func TestBlend(t *testing.T) {
	a := LUV{20, 10, 0}
	b := LUV{60, -10, 40}
	assert.Equal(t, a, Blend(0, a, b))
	assert.Equal(t, b, Blend(1, a, b))

	mid := Blend(0.5, a, b)
	assert.InDelta(t, 40, mid.L, 1e-12)
	assert.InDelta(t, 0, mid.U, 1e-12)
	assert.InDelta(t, 20, mid.V, 1e-12)

	// fraction clamps
	assert.Equal(t, b, Blend(2, a, b))
	assert.Equal(t, a, Blend(-1, a, b))
}
