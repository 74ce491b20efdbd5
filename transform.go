// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Lighten returns a color that is lighter by the given absolute HLS
// lightness amount (0-100, ranges enforced).
func Lighten(c Color, amount float64) RGB {
	h := c.HLS()
	h.L = Clamp01(h.L + amount/100)
	return h.RGB()
}

// Darken returns a color that is darker by the given absolute HLS
// lightness amount (0-100, ranges enforced).
func Darken(c Color, amount float64) RGB {
	h := c.HLS()
	h.L = Clamp01(h.L - amount/100)
	return h.RGB()
}

// Saturate returns a color that is more saturated by the given
// absolute HLS saturation amount (0-100, ranges enforced).
func Saturate(c Color, amount float64) RGB {
	h := c.HLS()
	h.S = Clamp01(h.S + amount/100)
	return h.RGB()
}

// Desaturate returns a color that is less saturated by the given
// absolute HLS saturation amount (0-100, ranges enforced).
func Desaturate(c Color, amount float64) RGB {
	h := c.HLS()
	h.S = Clamp01(h.S - amount/100)
	return h.RGB()
}

// Spin returns a color with its HLS hue rotated by the given amount in
// degrees, wrapping around the hue circle.
func Spin(c Color, amount float64) RGB {
	h := c.HLS()
	h.H = wrapHue(h.H + amount)
	return h.RGB()
}

// IsLight reports whether the given color is light
// (has an HLS lightness greater than or equal to 0.6).
func IsLight(c Color) bool {
	return c.HLS().L >= 0.6
}

// IsDark reports whether the given color is dark
// (has an HLS lightness less than 0.6).
func IsDark(c Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast the
// given color (white or black), based on the result of [IsLight].
func ContrastColor(c Color) RGB {
	if IsLight(c) {
		return RGB{}
	}
	return RGB{1, 1, 1}
}
