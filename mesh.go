// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements a half-edge mesh topology engine:
// polygonal surfaces and open polyline topologies represented as
// paired directed edges, built incrementally from polygon soups by
// [BuildFromPolygons], from the parametric generators in the
// primitives package, or from Wavefront OBJ files via the obj package.
//
// Connectivity (the half-edge graph) and per-entity attribute data
// (positions, normals, UVs) are kept separate: attributes live in
// [Channel] stores keyed by entity id, each independently lockable
// from the graph itself.
package mesh

import (
	"sync"

	"cogentcore.org/core/math32"
)

// Mesh is a half-edge mesh: the [Connectivity] graph plus the
// standard attribute channels. The embedded RWMutex guards
// Connectivity; each channel carries its own lock. No operation
// locks internally: a mesh is single-threaded by default, and
// callers sharing one across goroutines serialize access through
// these locks.
type Mesh struct {
	sync.RWMutex

	// Connectivity is the half-edge graph itself.
	Connectivity *Connectivity

	// Positions holds the per-vertex positions.
	Positions *Channel[VertexID, math32.Vector3]

	// Normals holds the optional per-vertex normals; absent when empty.
	Normals *Channel[VertexID, math32.Vector3]

	// UVs holds the optional texture coordinates. They are keyed by
	// half-edge, not vertex: a vertex's texture coordinate can differ
	// per incident face.
	UVs *Channel[HalfEdgeID, math32.Vector2]

	// SmoothNormals is whether normals are generated and exported as
	// smooth per-vertex normals.
	SmoothNormals bool
}

// NewMesh returns a new empty mesh with all standard channels allocated.
func NewMesh() *Mesh {
	return &Mesh{
		Connectivity: NewConnectivity(),
		Positions:    NewChannel[VertexID, math32.Vector3](),
		Normals:      NewChannel[VertexID, math32.Vector3](),
		UVs:          NewChannel[HalfEdgeID, math32.Vector2](),
	}
}
