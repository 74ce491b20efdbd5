// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Color is implemented by every color value type in this package.
// Each conversion method returns the receiver expressed in the target
// space, routed through the direct transforms via the RGB and XYZ hubs.
// The optional trailing white point applies only to conversions that
// cross a LAB or LUV edge; it defaults to [D65] and is ignored on
// routes that never leave the RGB family.
type Color interface {
	RGB(wp ...WhitePoint) RGB
	HSV(wp ...WhitePoint) HSV
	HLS(wp ...WhitePoint) HLS
	XYZ(wp ...WhitePoint) XYZ
	LAB(wp ...WhitePoint) LAB
	LCHab(wp ...WhitePoint) LCHab
	LUV(wp ...WhitePoint) LUV
	LCHuv(wp ...WhitePoint) LCHuv

	// Hex returns the color as an uppercase #RRGGBB string, after
	// projection to gamut-corrected sRGB.
	Hex() string

	// Components returns the three coordinates of the color in its
	// own space, in field-declaration order.
	Components() [3]float64
}

// Value is the closed set of concrete color types. It constrains the
// generic operations ([Convert], [WeightedMean], [Blend], [Sort]) to a
// single homogeneous color type.
type Value interface {
	RGB | HSV | HLS | XYZ | LAB | LCHab | LUV | LCHuv
	Color
}

// Convert returns c expressed in the color space T. It is total over
// all ordered pairs of color types, including the identity. The
// optional white point is used on any LAB/LUV leg of the route, with
// [D65] as the default.
func Convert[T Value](c Color, wp ...WhitePoint) T {
	var t T
	switch any(t).(type) {
	case RGB:
		return any(c.RGB(wp...)).(T)
	case HSV:
		return any(c.HSV(wp...)).(T)
	case HLS:
		return any(c.HLS(wp...)).(T)
	case XYZ:
		return any(c.XYZ(wp...)).(T)
	case LAB:
		return any(c.LAB(wp...)).(T)
	case LCHab:
		return any(c.LCHab(wp...)).(T)
	case LUV:
		return any(c.LUV(wp...)).(T)
	case LCHuv:
		return any(c.LCHuv(wp...)).(T)
	}
	panic("colorspace.Convert: impossible color type")
}

// fromComponents is the inverse of [Color.Components] for a concrete
// color type, used by the generic blending operations.
func fromComponents[T Value](v [3]float64) T {
	var t T
	switch any(t).(type) {
	case RGB:
		return any(RGB{v[0], v[1], v[2]}).(T)
	case HSV:
		return any(HSV{v[0], v[1], v[2]}).(T)
	case HLS:
		return any(HLS{v[0], v[1], v[2]}).(T)
	case XYZ:
		return any(XYZ{v[0], v[1], v[2]}).(T)
	case LAB:
		return any(LAB{v[0], v[1], v[2]}).(T)
	case LCHab:
		return any(LCHab{v[0], v[1], v[2]}).(T)
	case LUV:
		return any(LUV{v[0], v[1], v[2]}).(T)
	case LCHuv:
		return any(LCHuv{v[0], v[1], v[2]}).(T)
	}
	panic("colorspace: impossible color type")
}
