// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace provides value types for eight standard color spaces
// (sRGB, HSV, HLS, CIE XYZ, LAB, LUV, and the polar LCHab and LCHuv forms)
// and conversions between every pair of them, built from the small set of
// closed-form transforms composed through the RGB and XYZ hubs.
//
// All types are plain immutable values; conversions always return new
// values and never mutate their input. Conversions into and out of the
// LAB and LUV families accept an optional reference [WhitePoint],
// defaulting to [D65]. The package also provides chromatic adaptation
// between white points, gamut correction at the sRGB boundary, a total
// (but non-perceptual) ordering, weighted color averaging, HLS-based
// color transforms, and parsing and formatting of hex, rgb(), and X11
// named-color literals.
//
// Everything here is purely functional over its arguments and a set of
// read-only tables, so all functions are safe for concurrent use.
package colorspace
