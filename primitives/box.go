// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// boxFaces is the static index table for the 6 quad faces of a box,
// in order: top, bottom, front, back, left, right, each wound so its
// normal points outward.
var boxFaces = [][]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{4, 7, 1, 0},
	{3, 2, 6, 5},
	{5, 4, 0, 3},
	{6, 2, 1, 7},
}

// NewBox returns a box mesh with the given center and size along each
// dimension: 8 vertices and 6 quad faces.
func NewBox(center, size math32.Vector3) *mesh.Mesh {
	h := size.MulScalar(0.5)
	positions := []math32.Vector3{
		center.Add(math32.Vec3(-h.X, -h.Y, -h.Z)),
		center.Add(math32.Vec3(h.X, -h.Y, -h.Z)),
		center.Add(math32.Vec3(h.X, -h.Y, h.Z)),
		center.Add(math32.Vec3(-h.X, -h.Y, h.Z)),

		center.Add(math32.Vec3(-h.X, h.Y, -h.Z)),
		center.Add(math32.Vec3(-h.X, h.Y, h.Z)),
		center.Add(math32.Vec3(h.X, h.Y, h.Z)),
		center.Add(math32.Vec3(h.X, h.Y, -h.Z)),
	}
	return mustBuild(positions, boxFaces)
}

// NewQuad returns a single quad face at center, oriented along the
// given normal and right vectors (normalized internally), with the
// given width and height.
func NewQuad(center, normal, right math32.Vector3, size math32.Vector2) *mesh.Mesh {
	normal = normal.Normal()
	right = right.Normal()
	forward := normal.Cross(right)

	hr := right.MulScalar(size.X * 0.5)
	hf := forward.MulScalar(size.Y * 0.5)

	positions := []math32.Vector3{
		center.Add(hr).Add(hf),
		center.Sub(hr).Add(hf),
		center.Sub(hr).Sub(hf),
		center.Add(hr).Sub(hf),
	}
	return mustBuild(positions, [][]int{{0, 1, 2, 3}})
}
