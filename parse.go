// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FromString returns the RGB color for the given literal. It attempts,
// in order: the #RGB and #RRGGBB hex forms, 0xRRGGBB, rgb(r, g, b)
// with integer channels 0-255, and finally the X11 named-color table
// (case-insensitive). All whitespace is stripped before matching.
// Anything else fails with an unknown-color error. See
// [MustFromString] for a version that panics instead.
func FromString(str string) (RGB, error) {
	s := strings.ToLower(stripSpace(str))
	switch {
	case s == "":
		return RGB{}, errors.New("colorspace.FromString: empty color string")
	case strings.HasPrefix(s, "#"):
		return FromHex(s)
	case strings.HasPrefix(s, "0x"):
		if len(s) != 8 { // only the 0xRRGGBB form
			return RGB{}, fmt.Errorf("colorspace.FromString: invalid hex color %q", str)
		}
		return FromHex("#" + s[2:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		var r, g, b int
		n, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b)
		if err != nil || n != 3 {
			return RGB{}, fmt.Errorf("colorspace.FromString: invalid rgb() literal %q", str)
		}
		return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
	default:
		return FromName(s)
	}
}

// MustFromString returns the RGB color for the given literal,
// panicking on any error; see [FromString] for more information.
func MustFromString(str string) RGB {
	c, err := FromString(str)
	if err != nil {
		panic("colorspace.MustFromString: " + err.Error())
	}
	return c
}

// FromHex parses a #RGB or #RRGGBB hex literal, with the leading #
// optional, returning an RGB color with channels scaled into [0, 1].
func FromHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(stripSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("colorspace.FromHex: invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colorspace.FromHex: invalid hex color %q: %w", hex, err)
	}
	return RGB{
		float64(v>>16&0xff) / 255,
		float64(v>>8&0xff) / 255,
		float64(v&0xff) / 255,
	}, nil
}

// FromName returns the RGB color for the given X11 color name,
// matching case-insensitively with whitespace removed. It fails with
// an unknown-color error when the name is not in [Names]; see
// [MustFromName] for a version that panics instead.
func FromName(name string) (RGB, error) {
	v, ok := Names[strings.ToLower(stripSpace(name))]
	if !ok {
		return RGB{}, fmt.Errorf("colorspace: unknown color %q", name)
	}
	return RGB{float64(v[0]) / 255, float64(v[1]) / 255, float64(v[2]) / 255}, nil
}

// MustFromName returns the RGB color for the given X11 color name,
// panicking when the name is not found; see [FromName] for a version
// that returns an error.
func MustFromName(name string) RGB {
	c, err := FromName(name)
	if err != nil {
		panic("colorspace.MustFromName: " + err.Error())
	}
	return c
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
