// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	red := RGB{1, 0, 0}
	green := RGB{0, 1, 0}
	assert.Equal(t, 1, Compare(red, green))
	assert.Equal(t, -1, Compare(green, red))
	assert.Equal(t, 0, Compare(red, red))
	assert.True(t, Less(green, red))

	// red channel dominates, then green, then blue
	assert.Equal(t, -1, Compare(RGB{0.5, 0.9, 0.9}, RGB{0.6, 0, 0}))
	assert.Equal(t, -1, Compare(RGB{0.5, 0.1, 0.9}, RGB{0.5, 0.2, 0}))
	assert.Equal(t, -1, Compare(RGB{0.5, 0.1, 0.1}, RGB{0.5, 0.1, 0.2}))
}

func TestCompareAcrossTypes(t *testing.T) {
	// ordering is defined through the sRGB projection, so the same
	// color in different spaces compares equal
	assert.Equal(t, 0, Compare(HSV{0, 1, 1}, RGB{1, 0, 0}))
}

func TestSort(t *testing.T) {
	colors := []RGB{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}
	Sort(colors)
	assert.Equal(t, []RGB{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, colors)
}
