// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// NewUVSphere returns a uv-sphere with the given center and radius:
// one apex vertex at each pole, rings-1 rings of segments vertices
// from the standard spherical parameterization, triangle fans at the
// poles and quads in between. segments is the number of longitudinal
// sections, rings the number of vertical sections; both must be at
// least 3.
func NewUVSphere(center math32.Vector3, radius float32, segments, rings int) *mesh.Mesh {
	var positions []math32.Vector3
	var polygons [][]int

	top := 0
	positions = append(positions, center.Add(math32.Vec3(0, radius, 0)))

	for i := 0; i < rings-1; i++ {
		phi := math32.Pi * float32(i+1) / float32(rings)
		for j := 0; j < segments; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(segments)
			x := math32.Sin(phi) * math32.Cos(theta) * radius
			y := math32.Cos(phi) * radius
			z := math32.Sin(phi) * math32.Sin(theta) * radius
			positions = append(positions, center.Add(math32.Vec3(x, y, z)))
		}
	}

	bottom := len(positions)
	positions = append(positions, center.Sub(math32.Vec3(0, radius, 0)))

	// triangle fans at the poles: ring-relative bases with modular
	// wraparound so body quads never reference a pole vertex
	for i := 0; i < segments; i++ {
		i0 := i + 1
		i1 := (i+1)%segments + 1
		polygons = append(polygons, []int{top, i1, i0})
	}
	for i := 0; i < segments; i++ {
		i0 := i + segments*(rings-2) + 1
		i1 := (i+1)%segments + segments*(rings-2) + 1
		polygons = append(polygons, []int{bottom, i0, i1})
	}

	// body quads between consecutive rings
	for j := 0; j < rings-2; j++ {
		j0 := j*segments + 1
		j1 := (j+1)*segments + 1
		for i := 0; i < segments; i++ {
			i0 := j0 + i
			i1 := j0 + (i+1)%segments
			i2 := j1 + (i+1)%segments
			i3 := j1 + i
			polygons = append(polygons, []int{i0, i1, i2, i3})
		}
	}

	return mustBuild(positions, polygons)
}
