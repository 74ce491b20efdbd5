// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Spaced returns a maximally widely spaced sequence of colors for
// progressive values of the index, using the LCHab space. This is
// useful, for example, for assigning colors to categories in graphs.
func Spaced(idx int) RGB {
	// blue, red, green, yellow, violet, aqua, orange, magenta
	hues := []float64{280, 30, 140, 95, 310, 230, 65, 340}
	lights := []float64{55, 70, 40, 60, 80}
	chromas := []float64{70, 70, 70, 25, 25}
	nh := len(hues)
	nl := len(lights)
	hi := idx % nh
	li := (idx / nh) % nl
	return LCHab{lights[li], chromas[li], hues[hi]}.RGB()
}
