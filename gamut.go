// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "math"

// Lerp linearly interpolates between a and b, with the interpolation
// fraction t clamped into [0, 1] before blending.
func Lerp(t, a, b float64) float64 {
	return a + Clamp01(t)*(b-a)
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Clamped returns the color with each channel clamped into [0, 1], the
// displayable sRGB cube. Conversion chains ending at RGB apply this
// once, on the XYZ→RGB edge; intermediate linear values are never
// clamped.
func (c RGB) Clamped() RGB {
	return RGB{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}

// wrapHue normalizes a hue angle in degrees into [0, 360).
// Hues wrap around; they are never clamped.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
