// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitives

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// NewLine builds an open polyline directly as a single boundary loop,
// bypassing [mesh.BuildFromPolygons]: no face is ever allocated.
// position gives the vertex position for each of the segments+1
// indices, 0 through segments. Each segment gets a twinned pair of
// half-edges; the forward half-edges chain one direction of the loop,
// the backward half-edges the reverse direction, joined at both ends
// so the whole loop closes. segments must be at least 1.
func NewLine(position func(i int) math32.Vector3, segments int) *mesh.Mesh {
	if segments < 1 {
		panic("primitives: NewLine requires at least one segment")
	}
	m := mesh.NewMesh()
	cn := m.Connectivity

	forward := make([]mesh.HalfEdgeID, 0, segments)
	backward := make([]mesh.HalfEdgeID, 0, segments)

	v := cn.AllocVertex(mesh.NoHalfEdge)
	m.Positions.Set(v, position(0))
	for i := 1; i <= segments; i++ {
		w := cn.AllocVertex(mesh.NoHalfEdge)
		m.Positions.Set(w, position(i))

		hvw := cn.AllocHalfEdge()
		hwv := cn.AllocHalfEdge()
		cn.Edge(hvw).Vertex = v
		cn.Edge(hwv).Vertex = w
		cn.Edge(hvw).Twin = hwv
		cn.Edge(hwv).Twin = hvw
		cn.Vert(v).HalfEdge = hvw
		cn.Vert(w).HalfEdge = hwv

		forward = append(forward, hvw)
		backward = append(backward, hwv)
		v = w
	}

	for i := 0; i+1 < len(forward); i++ {
		cn.Edge(forward[i]).Next = forward[i+1]
	}
	for i := len(backward) - 1; i > 0; i-- {
		cn.Edge(backward[i]).Next = backward[i-1]
	}

	// tie the two chains together at both ends
	cn.Edge(forward[len(forward)-1]).Next = backward[len(backward)-1]
	cn.Edge(backward[0]).Next = forward[0]

	return m
}

// NewStraightLine returns a polyline from start to end split into the
// given number of segments.
func NewStraightLine(start, end math32.Vector3, segments int) *mesh.Mesh {
	return NewLine(func(i int) math32.Vector3 {
		t := float32(i) / float32(segments)
		return start.Add(end.Sub(start).MulScalar(t))
	}, segments)
}

// NewLineFromPoints returns a polyline through the given points,
// which must number at least 2.
func NewLineFromPoints(points []math32.Vector3) *mesh.Mesh {
	return NewLine(func(i int) math32.Vector3 {
		return points[i]
	}, len(points)-1)
}
