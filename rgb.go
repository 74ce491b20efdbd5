// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a gamma-companded sRGB color with channels nominally in
// [0, 1]. Out-of-range channels are accepted and propagate through
// conversion arithmetic unchanged; only the XYZ→RGB edge
// gamut-corrects its result (see [RGB.Clamped]).
type RGB struct {
	R, G, B float64
}

// NewRGB returns an sRGB color from channels in [0, 1].
func NewRGB(r, g, b float64) RGB {
	return RGB{r, g, b}
}

func (c RGB) RGB(wp ...WhitePoint) RGB { return c }

// HSV converts using the six-sector hue formula. Achromatic colors
// (equal channels) get hue 0 and saturation 0.
func (c RGB) HSV(wp ...WhitePoint) HSV {
	mx := math.Max(c.R, math.Max(c.G, c.B))
	mn := math.Min(c.R, math.Min(c.G, c.B))
	d := mx - mn
	if d == 0 || mx == 0 {
		return HSV{0, 0, mx}
	}
	return HSV{c.hue(mx, d), d / mx, mx}
}

// HLS converts using the six-sector hue formula. Achromatic colors
// (equal channels) get hue 0 and saturation 0.
func (c RGB) HLS(wp ...WhitePoint) HLS {
	mx := math.Max(c.R, math.Max(c.G, c.B))
	mn := math.Min(c.R, math.Min(c.G, c.B))
	l := (mx + mn) / 2
	d := mx - mn
	if d == 0 {
		return HLS{0, l, 0}
	}
	var s float64
	if l < 0.5 {
		s = d / (mx + mn)
	} else {
		s = d / (2 - mx - mn)
	}
	return HLS{c.hue(mx, d), l, s}
}

// hue computes the six-sector hue in degrees from the maximum channel
// and the max-min distance d, which must be nonzero.
func (c RGB) hue(mx, d float64) float64 {
	var h float64
	switch mx {
	case c.R:
		h = (c.G - c.B) / d
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return wrapHue(60 * h)
}

// XYZ converts through gamma decompanding and the sRGB primary matrix.
// The result is linear and never clamped.
func (c RGB) XYZ(wp ...WhitePoint) XYZ {
	x, y, z := srgbToXYZ.apply(linearize(c.R), linearize(c.G), linearize(c.B))
	return XYZ{x, y, z}
}

func (c RGB) LAB(wp ...WhitePoint) LAB     { return c.XYZ().LAB(wp...) }
func (c RGB) LCHab(wp ...WhitePoint) LCHab { return c.LAB(wp...).LCHab() }
func (c RGB) LUV(wp ...WhitePoint) LUV     { return c.XYZ().LUV(wp...) }
func (c RGB) LCHuv(wp ...WhitePoint) LCHuv { return c.LUV(wp...).LCHuv() }

// Hex returns the color as an uppercase #RRGGBB string, with each
// channel mapped into [0, 255] by the clamped [Lerp] and rounded.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		int(Lerp(c.R, 0, 255)+0.5),
		int(Lerp(c.G, 0, 255)+0.5),
		int(Lerp(c.B, 0, 255)+0.5))
}

func (c RGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// RGBA implements [color.Color], treating the color as fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(Lerp(c.R, 0, 0xffff) + 0.5)
	g = uint32(Lerp(c.G, 0, 0xffff) + 0.5)
	b = uint32(Lerp(c.B, 0, 0xffff) + 0.5)
	a = 0xffff
	return
}

// FromColor returns the given [color.Color] as an RGB value with
// channels scaled into [0, 1], dropping alpha after un-premultiplying.
func FromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	return RGB{float64(r) / float64(a), float64(g) / float64(a), float64(b) / float64(a)}
}
