// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// CircleVertices returns n points of radius around center, rotated
// about the Y axis, starting at +Z and proceeding counter-clockwise
// viewed from above.
func CircleVertices(center math32.Vector3, radius float32, n int) []math32.Vector3 {
	positions := make([]math32.Vector3, n)
	delta := 2 * math32.Pi / float32(n)
	for i := range positions {
		ang := delta * float32(i)
		positions[i] = center.Add(math32.Vec3(radius*math32.Sin(ang), 0, radius*math32.Cos(ang)))
	}
	return positions
}

// NewCircle returns a circle of n vertices around center, closed into
// a single n-gon face.
func NewCircle(center math32.Vector3, radius float32, n int) *mesh.Mesh {
	polygon := make([]int, n)
	for i := range polygon {
		polygon[i] = i
	}
	return mustBuild(CircleVertices(center, radius, n), [][]int{polygon})
}

// NewCircleOpen returns an open circle: the same n vertices as
// [NewCircle], but with the face removed so that only an n-sided
// boundary loop remains.
func NewCircleOpen(center math32.Vector3, radius float32, n int) *mesh.Mesh {
	m := NewCircle(center, radius, n)
	cn := m.Connectivity
	cn.RemoveFace(cn.Faces()[0])
	return m
}
