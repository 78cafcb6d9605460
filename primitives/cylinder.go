// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// coneEps is the top radius below which [NewCone] produces a single
// apex instead of a top ring.
const coneEps = 1e-5

// NewCone returns a generalized cone with the given center,
// bottom and top radii, height along the Y axis, and n vertices
// around each ring. A top radius within 1e-5 of zero produces a
// single-apex cone with triangular sides; otherwise the result is a
// frustum (truncated cone) with quad sides and a top cap.
func NewCone(center math32.Vector3, bottomRadius, topRadius, height float32, n int) *mesh.Mesh {
	if math32.Abs(topRadius) <= coneEps {
		return newPointedCone(center, bottomRadius, height, n)
	}
	return newFrustum(center, bottomRadius, topRadius, height, n)
}

// NewCylinder returns a cylinder with the given center, radius,
// height along the Y axis, and n vertices around each ring: the
// frustum case of [NewCone] with equal radii.
func NewCylinder(center math32.Vector3, radius, height float32, n int) *mesh.Mesh {
	return newFrustum(center, radius, radius, height, n)
}

// newPointedCone builds a cone from one bottom ring plus an apex:
// n triangular sides and a reverse-wound bottom cap, n+1 vertices.
func newPointedCone(center math32.Vector3, bottomRadius, height float32, n int) *mesh.Mesh {
	offset := math32.Vec3(0, height/2, 0)
	positions := CircleVertices(center.Sub(offset), bottomRadius, n)
	positions = append(positions, center.Add(offset))

	// bottom cap wound in reverse of the sides to keep the outward
	// orientation consistent
	polygons := [][]int{reverseRange(n)}
	for v := 0; v < n; v++ {
		polygons = append(polygons, []int{v, (v + 1) % n, n})
	}
	return mustBuild(positions, polygons)
}

// newFrustum builds a truncated cone from two vertex rings:
// n quad sides, a reverse-wound bottom cap and a forward-wound top
// cap, 2n vertices.
func newFrustum(center math32.Vector3, bottomRadius, topRadius, height float32, n int) *mesh.Mesh {
	offset := math32.Vec3(0, height/2, 0)
	positions := CircleVertices(center.Sub(offset), bottomRadius, n)
	positions = append(positions, CircleVertices(center.Add(offset), topRadius, n)...)

	top := make([]int, n)
	for i := range top {
		top[i] = n + i
	}
	polygons := [][]int{reverseRange(n), top}
	for v := 0; v < n; v++ {
		v2 := (v + 1) % n
		polygons = append(polygons, []int{v, v2, n + v2, n + v})
	}
	return mustBuild(positions, polygons)
}

// reverseRange returns n-1, n-2, ..., 0.
func reverseRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = n - 1 - i
	}
	return r
}
