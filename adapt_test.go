// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptWhiteToWhite(t *testing.T) {
	// the source white point must map onto the destination white point
	got := Adapt(XYZ{D65.X, D65.Y, D65.Z}, D65, D50)
	assert.InDelta(t, D50.X, got.X, 1e-6)
	assert.InDelta(t, D50.Y, got.Y, 1e-6)
	assert.InDelta(t, D50.Z, got.Z, 1e-6)
}

func TestAdaptIdentity(t *testing.T) {
	c := XYZ{0.3, 0.4, 0.5}
	got := Adapt(c, D65, D65)
	assert.InDelta(t, c.X, got.X, 1e-6)
	assert.InDelta(t, c.Y, got.Y, 1e-6)
	assert.InDelta(t, c.Z, got.Z, 1e-6)
}

func TestAdaptRoundTrip(t *testing.T) {
	c := XYZ{0.2, 0.35, 0.15}
	back := Adapt(Adapt(c, D65, A), A, D65)
	assert.InDelta(t, c.X, back.X, 1e-6)
	assert.InDelta(t, c.Y, back.Y, 1e-6)
	assert.InDelta(t, c.Z, back.Z, 1e-6)
}
