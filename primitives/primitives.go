// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitives generates canonical half-edge mesh shapes:
// box, quad, circle, uv-sphere, cone, cylinder, polyline and catenary
// curves, and arbitrary polygons. All generators are pure functions of
// their numeric parameters.
package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// mustBuild builds a mesh from a polygon soup that is well formed by
// construction. A failure here is a defect in the generator, not bad
// input, so it panics rather than returning an error.
func mustBuild(positions []math32.Vector3, polygons [][]int) *mesh.Mesh {
	m, err := mesh.BuildFromPolygons(positions, polygons)
	if err != nil {
		panic("primitives: " + err.Error())
	}
	return m
}
