// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceLAB(t *testing.T) {
	c := RGB{0.3, 0.6, 0.1}
	assert.Equal(t, 0.0, DistanceLAB(c, c))

	// black to white spans the full lightness axis
	d := DistanceLAB(RGB{0, 0, 0}, RGB{1, 1, 1})
	assert.InDelta(t, 100, d, 0.01)

	// distance is symmetric
	a, b := RGB{1, 0, 0}, RGB{0, 0, 1}
	assert.Equal(t, DistanceLAB(a, b), DistanceLAB(b, a))
	assert.Greater(t, DistanceLAB(a, b), 100.0)
}
