// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// NewPolygon wraps an arbitrary ordered point list into a single
// face. Unlike the fixed-topology generators, the points are caller
// supplied, so fewer than 3 of them is a returned error rather than
// a defect.
func NewPolygon(points []math32.Vector3) (*mesh.Mesh, error) {
	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	return mesh.BuildFromPolygons(points, [][]int{indices})
}
