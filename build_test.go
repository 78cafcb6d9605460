// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// quadPositions is a unit square in the XZ plane.
var quadPositions = []math32.Vector3{
	math32.Vec3(0, 0, 0),
	math32.Vec3(1, 0, 0),
	math32.Vec3(1, 0, 1),
	math32.Vec3(0, 0, 1),
}

// checkInvariants checks twin involution, face loop closure and
// ownership, and vertex half-edge origins.
func checkInvariants(t *testing.T, cn *Connectivity) {
	t.Helper()
	for _, h := range cn.HalfEdges() {
		if tw := cn.Edge(h).Twin; tw != NoHalfEdge {
			assert.Equal(t, h, cn.Edge(tw).Twin, "twin involution at %d", h)
		}
	}
	for _, f := range cn.Faces() {
		start := cn.Face(f).HalfEdge
		h := start
		for i := 0; i < cn.FaceDegree(f); i++ {
			assert.Equal(t, f, cn.Edge(h).Face, "face ownership at %d", h)
			h = cn.Edge(h).Next
		}
		assert.Equal(t, start, h, "face %d loop closes after its degree", f)
	}
	for _, v := range cn.Vertices() {
		if h := cn.Vert(v).HalfEdge; h != NoHalfEdge {
			assert.Equal(t, v, cn.Edge(h).Vertex, "vertex %d half-edge origin", v)
		}
	}
}

func TestBuildFromPolygons(t *testing.T) {
	m, err := BuildFromPolygons(quadPositions, [][]int{{0, 1, 2}, {0, 2, 3}})
	assert.NoError(t, err)
	cn := m.Connectivity

	assert.Equal(t, 4, cn.NumVertices())
	assert.Equal(t, 2, cn.NumFaces())
	assert.Equal(t, 6, cn.NumHalfEdges())
	checkInvariants(t, cn)

	// the shared diagonal (0,2) is the only twinned edge
	twinned := 0
	for _, h := range cn.HalfEdges() {
		if cn.Edge(h).Twin != NoHalfEdge {
			twinned++
		}
	}
	assert.Equal(t, 2, twinned)

	for i, v := range cn.Vertices() {
		pos, ok := m.Positions.Get(v)
		assert.True(t, ok)
		assert.Equal(t, quadPositions[i], pos)
	}
}

func TestBuildSingleFace(t *testing.T) {
	m, err := BuildFromPolygons(quadPositions, [][]int{{0, 1, 2, 3}})
	assert.NoError(t, err)
	cn := m.Connectivity

	assert.Equal(t, 1, cn.NumFaces())
	f := cn.Faces()[0]
	assert.Equal(t, 4, cn.FaceDegree(f))
	assert.Equal(t, []VertexID{0, 1, 2, 3}, cn.FaceVertices(f))
	checkInvariants(t, cn)

	// a lone face is all boundary
	for _, h := range cn.HalfEdges() {
		assert.Equal(t, NoHalfEdge, cn.Edge(h).Twin)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		polygons [][]int
		err      error
	}{
		{"too short", [][]int{{0, 1}}, ErrPolygonLength},
		{"empty", [][]int{{}}, ErrPolygonLength},
		{"index out of range", [][]int{{0, 1, 4}}, ErrVertexIndex},
		{"negative index", [][]int{{0, 1, -1}}, ErrVertexIndex},
		{"non-manifold edge", [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 3}}, ErrNonManifold},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := BuildFromPolygons(quadPositions, test.polygons)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	polygons := [][]int{{0, 1, 2}, {0, 2, 3}}
	_, err := BuildFromPolygons(quadPositions, polygons)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, polygons)
}

func TestRemoveFace(t *testing.T) {
	m, err := BuildFromPolygons(quadPositions, [][]int{{0, 1, 2, 3}})
	assert.NoError(t, err)
	cn := m.Connectivity

	f := cn.Faces()[0]
	start := cn.Face(f).HalfEdge
	cn.RemoveFace(f)

	assert.Equal(t, 0, cn.NumFaces())
	assert.Empty(t, cn.Faces())
	// half-edges and vertices persist, as a boundary loop
	assert.Equal(t, 4, cn.NumHalfEdges())
	assert.Equal(t, 4, cn.NumVertices())
	for _, h := range cn.HalfEdges() {
		assert.Equal(t, NoFace, cn.Edge(h).Face)
	}
	assert.Len(t, cn.HalfEdgeLoop(start), 4)

	// removing again is a no-op
	cn.RemoveFace(f)
	assert.Equal(t, 0, cn.NumFaces())
}

func TestRemoveFaceKeepsOthers(t *testing.T) {
	m, err := BuildFromPolygons(quadPositions, [][]int{{0, 1, 2}, {0, 2, 3}})
	assert.NoError(t, err)
	cn := m.Connectivity

	f0 := cn.Faces()[0]
	cn.RemoveFace(f0)
	assert.Equal(t, 1, cn.NumFaces())
	checkInvariants(t, cn)
}

func TestAlloc(t *testing.T) {
	cn := NewConnectivity()
	v := cn.AllocVertex(NoHalfEdge)
	h := cn.AllocHalfEdge()
	assert.Equal(t, VertexID(0), v)
	assert.Equal(t, HalfEdgeID(0), h)

	he := cn.Edge(h)
	assert.Equal(t, NoHalfEdge, he.Twin)
	assert.Equal(t, NoHalfEdge, he.Next)
	assert.Equal(t, NoVertex, he.Vertex)
	assert.Equal(t, NoFace, he.Face)

	f := cn.AllocFace(h)
	assert.Equal(t, h, cn.Face(f).HalfEdge)
	assert.Equal(t, 1, cn.NumFaces())
}

func TestChannel(t *testing.T) {
	ch := NewChannel[VertexID, math32.Vector3]()
	assert.Equal(t, 0, ch.Len())

	_, ok := ch.Get(0)
	assert.False(t, ok)

	ch.Set(0, math32.Vec3(1, 2, 3))
	got, ok := ch.Get(0)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 2, 3), got)
	assert.Equal(t, math32.Vector3{}, ch.Value(1))

	ch.Delete(0)
	assert.Equal(t, 0, ch.Len())
}

func TestChannelLocking(t *testing.T) {
	m := NewMesh()
	// connectivity write and position read locks are independent
	m.Lock()
	m.Positions.RLock()
	v := m.Connectivity.AllocVertex(NoHalfEdge)
	_ = m.Positions.Value(v)
	m.Positions.RUnlock()
	m.Unlock()

	m.Positions.Lock()
	m.Positions.Set(v, math32.Vec3(1, 0, 0))
	m.Positions.Unlock()
	assert.Equal(t, 1, m.Positions.Len())
}
