// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// Bradford cone response matrix and its inverse.
var (
	bradford = mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	bradfordInv = mat3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
)

// Adapt remaps a tristimulus value measured under the from illuminant
// to the value it would have under the to illuminant, using the
// Bradford transform: project into cone response space, scale by the
// ratio of the two white points, and project back. Adapting a white
// point to itself is the identity up to rounding.
func Adapt(c XYZ, from, to WhitePoint) XYZ {
	sx, sy, sz := bradford.apply(from.X, from.Y, from.Z)
	dx, dy, dz := bradford.apply(to.X, to.Y, to.Z)
	x, y, z := bradford.apply(c.X, c.Y, c.Z)
	x, y, z = bradfordInv.apply(x*dx/sx, y*dy/sy, z*dz/sz)
	return XYZ{x, y, z}
}
