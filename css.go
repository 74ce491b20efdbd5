// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "encoding/json"

// CSS renders a color as its CSS hex token, or the literal none for a
// nil color.
func CSS(c Color) string {
	if c == nil {
		return "none"
	}
	return c.Hex()
}

// JSON renders a color as a JSON string token: the [CSS] form wrapped
// in quotes.
func JSON(c Color) string {
	b, _ := json.Marshal(CSS(c)) // marshaling a string cannot fail
	return string(b)
}
