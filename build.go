// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Construction errors returned by [BuildFromPolygons] for malformed
// polygon soups, wrapped with per-polygon context.
var (
	// ErrPolygonLength is a polygon with fewer than 3 vertex indices.
	ErrPolygonLength = errors.New("polygon has fewer than 3 vertices")

	// ErrVertexIndex is a polygon vertex index outside the positions list.
	ErrVertexIndex = errors.New("vertex index out of range")

	// ErrNonManifold is an undirected edge claimed by more than two
	// polygon traversals.
	ErrNonManifold = errors.New("non-manifold edge shared by more than two polygons")
)

// edgeKey is an undirected edge, normalized so the smaller vertex
// index comes first.
type edgeKey struct {
	a, b int
}

// BuildFromPolygons builds a fully linked mesh from a polygon soup:
// an ordered list of positions and a list of polygons, each a sequence
// of at least 3 indices into the positions list, all consistently
// wound. One vertex is allocated per position, in order; one face and
// one half-edge per polygon edge are allocated per polygon. Twins are
// discovered through the normalized undirected vertex pair of each
// edge: the second traversal of a pair links the two half-edges as
// twins, and a third traversal fails with [ErrNonManifold]. Half-edges
// whose pair is only traversed once remain boundary half-edges, which
// is legal and produces open topology.
//
// The caller-supplied slices are never mutated.
func BuildFromPolygons(positions []math32.Vector3, polygons [][]int) (*Mesh, error) {
	m := NewMesh()
	cn := m.Connectivity

	for _, pos := range positions {
		v := cn.AllocVertex(NoHalfEdge)
		m.Positions.Set(v, pos)
	}

	claims := make(map[edgeKey]HalfEdgeID)
	for pi, poly := range polygons {
		if len(poly) < 3 {
			return nil, fmt.Errorf("polygon %d: %w: %d", pi, ErrPolygonLength, len(poly))
		}
		for _, vi := range poly {
			if vi < 0 || vi >= len(positions) {
				return nil, fmt.Errorf("polygon %d: %w: %d with %d positions", pi, ErrVertexIndex, vi, len(positions))
			}
		}

		n := len(poly)
		edges := make([]HalfEdgeID, n)
		for i := range edges {
			edges[i] = cn.AllocHalfEdge()
		}
		face := cn.AllocFace(edges[0])

		for i, vi := range poly {
			vj := poly[(i+1)%n]
			he := cn.Edge(edges[i])
			he.Vertex = VertexID(vi)
			he.Next = edges[(i+1)%n]
			he.Face = face
			// any incident half-edge is a valid witness; last wins
			cn.Vert(VertexID(vi)).HalfEdge = edges[i]

			key := edgeKey{a: min(vi, vj), b: max(vi, vj)}
			first, ok := claims[key]
			if !ok {
				claims[key] = edges[i]
				continue
			}
			twin := cn.Edge(first)
			if twin.Twin != NoHalfEdge {
				return nil, fmt.Errorf("polygon %d edge (%d,%d): %w", pi, vi, vj, ErrNonManifold)
			}
			twin.Twin = edges[i]
			he.Twin = first
		}
	}
	return m, nil
}
