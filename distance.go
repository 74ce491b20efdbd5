// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// DistanceLAB returns the CIE76 color difference ΔE*ab between two
// colors: the Euclidean distance between their LAB coordinates under
// the given reference white (default [D65]). A ΔE around 2.3
// corresponds to a just-noticeable difference.
func DistanceLAB(a, b Color, wp ...WhitePoint) float64 {
	ca, cb := a.LAB(wp...), b.LAB(wp...)
	dl := ca.L - cb.L
	da := ca.A - cb.A
	db := ca.B - cb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
