// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#FF0000", RGB{1, 0, 0}},
		{"#ff0000", RGB{1, 0, 0}},
		{"#F00", RGB{1, 0, 0}},
		{"#00ff00", RGB{0, 1, 0}},
		{"0xFF0000", RGB{1, 0, 0}},
		{"0x0000ff", RGB{0, 0, 1}},
		{"rgb(0,255,0)", RGB{0, 1, 0}},
		{"rgb(255, 0, 255)", RGB{1, 0, 1}},
		{"red", RGB{1, 0, 0}},
		{"RED", RGB{1, 0, 0}},
		{"Alice Blue", RGB{240.0 / 255, 248.0 / 255, 1}},
		{" navy ", RGB{0, 0, 128.0 / 255}},
		{"gray50", RGB{127.0 / 255, 127.0 / 255, 127.0 / 255}},
	}
	for _, tt := range tests {
		got, err := FromString(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"notacolor",
		"#12345",
		"#GGHHII",
		"0xF00",
		"rgb(1,2)",
		"rgb(1,2,3",
	} {
		_, err := FromString(in)
		assert.Error(t, err, in)
	}

	_, err := FromString("bogus")
	assert.ErrorContains(t, err, `unknown color "bogus"`)

	assert.Panics(t, func() {
		MustFromString("bogus")
	})
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("ff8000")
	assert.NoError(t, err)
	assert.Equal(t, RGB{1, 128.0 / 255, 0}, c)

	// 3-digit form expands per digit
	c, err = FromHex("#abc")
	assert.NoError(t, err)
	assert.Equal(t, RGB{0xaa / 255.0, 0xbb / 255.0, 0xcc / 255.0}, c)

	_, err = FromHex("#abcd")
	assert.Error(t, err)
}

func TestFromName(t *testing.T) {
	c, err := FromName("red")
	assert.NoError(t, err)
	assert.Equal(t, RGB{1, 0, 0}, c)

	// the table is the X11 list: green is full green, not CSS green
	c, err = FromName("green")
	assert.NoError(t, err)
	assert.Equal(t, RGB{0, 1, 0}, c)

	_, err = FromName("doesnotexist")
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustFromName("doesnotexist")
	})
}

func TestHexParseFormatsRoundTrip(t *testing.T) {
	for _, hex := range []string{"#FF0000", "#00A1B2", "#FFFFFF", "#000000"} {
		c, err := FromHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}
}
