// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSS(t *testing.T) {
	assert.Equal(t, "#FF0000", CSS(RGB{1, 0, 0}))
	assert.Equal(t, "#FF0000", CSS(HSV{0, 1, 1}))
	assert.Equal(t, "none", CSS(nil))
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `"#FF0000"`, JSON(RGB{1, 0, 0}))
	assert.Equal(t, `"none"`, JSON(nil))
}
