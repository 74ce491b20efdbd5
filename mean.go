// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"
)

// WeightedMean returns the weighted average of colors, computed
// per-component in the colors' own coordinate system after normalizing
// the weights by their sum. The two slices must have equal nonzero
// length and the weight sum must be nonzero.
//
// The blend is linear in every component, including hue: averaging is
// only perceptually meaningful in the approximately-linear LAB and LUV
// spaces, and hue-bearing coordinates get no circular treatment
// (blending hues 350 and 10 equally yields 180, not 0). Callers
// wanting a mean across different color types must convert first.
func WeightedMean[T Value](colors []T, weights []float64) (T, error) {
	var zero T
	if len(colors) == 0 {
		return zero, errors.New("colorspace.WeightedMean: no colors given")
	}
	if len(colors) != len(weights) {
		return zero, fmt.Errorf("colorspace.WeightedMean: %d colors but %d weights", len(colors), len(weights))
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return zero, errors.New("colorspace.WeightedMean: weights sum to zero")
	}
	var acc [3]float64
	for i, c := range colors {
		v := c.Components()
		w := weights[i] / sum
		acc[0] += w * v[0]
		acc[1] += w * v[1]
		acc[2] += w * v[2]
	}
	return fromComponents[T](acc), nil
}

// MustWeightedMean is like [WeightedMean] but panics on error.
func MustWeightedMean[T Value](colors []T, weights []float64) T {
	c, err := WeightedMean(colors, weights)
	if err != nil {
		panic("colorspace.MustWeightedMean: " + err.Error())
	}
	return c
}

// Blend returns the color the fraction t of the way from a to b,
// blended per-component in their shared space with t clamped into
// [0, 1]. The same linear-hue caveat as [WeightedMean] applies.
func Blend[T Value](t float64, a, b T) T {
	av, bv := a.Components(), b.Components()
	var v [3]float64
	for i := range v {
		v[i] = Lerp(t, av[i], bv[i])
	}
	return fromComponents[T](v)
}
