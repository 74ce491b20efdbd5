// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"cmp"
	"slices"
)

// Compare orders two colors by their sRGB projection, comparing the
// red, then green, then blue channels. The order is total but
// arbitrary: it exists to support sorting and deduplication, not
// similarity judgments.
func Compare(a, b Color) int {
	ar, br := a.RGB(), b.RGB()
	if c := cmp.Compare(ar.R, br.R); c != 0 {
		return c
	}
	if c := cmp.Compare(ar.G, br.G); c != 0 {
		return c
	}
	return cmp.Compare(ar.B, br.B)
}

// Less reports whether a orders before b under [Compare].
func Less(a, b Color) bool {
	return Compare(a, b) < 0
}

// Sort sorts colors in place in [Compare] order.
func Sort[T Value](colors []T) {
	slices.SortFunc(colors, func(a, b T) int { return Compare(a, b) })
}
