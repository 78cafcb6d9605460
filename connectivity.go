// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// VertexID is a stable index of a vertex in its [Connectivity] arena.
type VertexID int

// HalfEdgeID is a stable index of a half-edge in its [Connectivity] arena.
type HalfEdgeID int

// FaceID is a stable index of a face in its [Connectivity] arena.
type FaceID int

// Sentinel values for absent references: a half-edge without a twin is
// a boundary candidate, without a face it lies on a boundary loop.
const (
	NoVertex   VertexID   = -1
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)

// Vertex references one arbitrary half-edge originating at it.
// Any incident half-edge is a valid witness.
type Vertex struct {
	HalfEdge HalfEdgeID
}

// HalfEdge is one directed traversal along a polygon edge.
// Twin is the opposite direction along the same undirected edge,
// Next the following half-edge around the same face (or boundary)
// loop, Vertex the origin vertex, and Face the owning face,
// NoFace for boundary half-edges.
type HalfEdge struct {
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Vertex VertexID
	Face   FaceID
}

// Face references one arbitrary half-edge of its bounding loop.
type Face struct {
	HalfEdge HalfEdgeID
}

// Connectivity is the half-edge graph: arenas of vertices, half-edges
// and faces addressed by their stable ids. Entities are allocated
// monotonically and ids are never reused; a removed face keeps its
// arena slot but is skipped by iteration. Connectivity itself is not
// goroutine safe: the owning [Mesh] carries the lock for it.
type Connectivity struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face

	removedFaces int
}

// NewConnectivity returns a new empty half-edge graph.
func NewConnectivity() *Connectivity {
	return &Connectivity{}
}

// Vert returns the vertex record for the given id.
func (cn *Connectivity) Vert(v VertexID) *Vertex {
	return &cn.vertices[v]
}

// Edge returns the half-edge record for the given id.
func (cn *Connectivity) Edge(h HalfEdgeID) *HalfEdge {
	return &cn.halfEdges[h]
}

// Face returns the face record for the given id.
func (cn *Connectivity) Face(f FaceID) *Face {
	return &cn.faces[f]
}

// NumVertices returns the number of allocated vertices.
func (cn *Connectivity) NumVertices() int {
	return len(cn.vertices)
}

// NumHalfEdges returns the number of allocated half-edges.
func (cn *Connectivity) NumHalfEdges() int {
	return len(cn.halfEdges)
}

// NumFaces returns the number of live (not removed) faces.
func (cn *Connectivity) NumFaces() int {
	return len(cn.faces) - cn.removedFaces
}

// Vertices returns the ids of all vertices, in allocation order.
func (cn *Connectivity) Vertices() []VertexID {
	ids := make([]VertexID, len(cn.vertices))
	for i := range ids {
		ids[i] = VertexID(i)
	}
	return ids
}

// HalfEdges returns the ids of all half-edges, in allocation order.
func (cn *Connectivity) HalfEdges() []HalfEdgeID {
	ids := make([]HalfEdgeID, len(cn.halfEdges))
	for i := range ids {
		ids[i] = HalfEdgeID(i)
	}
	return ids
}

// Faces returns the ids of all live faces, in allocation order,
// skipping removed ones.
func (cn *Connectivity) Faces() []FaceID {
	ids := make([]FaceID, 0, cn.NumFaces())
	for i := range cn.faces {
		if cn.faces[i].HalfEdge != NoHalfEdge {
			ids = append(ids, FaceID(i))
		}
	}
	return ids
}

// AllocVertex allocates a new vertex referencing the given half-edge
// (NoHalfEdge for an isolated vertex) and returns its id.
func (cn *Connectivity) AllocVertex(h HalfEdgeID) VertexID {
	cn.vertices = append(cn.vertices, Vertex{HalfEdge: h})
	return VertexID(len(cn.vertices) - 1)
}

// AllocHalfEdge allocates a new half-edge with all references unset
// and returns its id.
func (cn *Connectivity) AllocHalfEdge() HalfEdgeID {
	cn.halfEdges = append(cn.halfEdges, HalfEdge{Twin: NoHalfEdge, Next: NoHalfEdge, Vertex: NoVertex, Face: NoFace})
	return HalfEdgeID(len(cn.halfEdges) - 1)
}

// AllocFace allocates a new face referencing the given half-edge
// and returns its id.
func (cn *Connectivity) AllocFace(h HalfEdgeID) FaceID {
	cn.faces = append(cn.faces, Face{HalfEdge: h})
	return FaceID(len(cn.faces) - 1)
}

// RemoveFace retires the given face id: the Face reference of every
// half-edge on its loop is cleared, converting the loop to a boundary
// loop, and the id becomes dead. The half-edges and vertices
// themselves persist. Removing an already removed face is a no-op.
func (cn *Connectivity) RemoveFace(f FaceID) {
	fc := cn.Face(f)
	if fc.HalfEdge == NoHalfEdge {
		return
	}
	for _, h := range cn.HalfEdgeLoop(fc.HalfEdge) {
		cn.Edge(h).Face = NoFace
	}
	fc.HalfEdge = NoHalfEdge
	cn.removedFaces++
}

// HalfEdgeLoop returns the cycle of half-edges starting at h,
// following Next until the loop closes back on h.
func (cn *Connectivity) HalfEdgeLoop(h HalfEdgeID) []HalfEdgeID {
	loop := []HalfEdgeID{h}
	for c := cn.Edge(h).Next; c != h; c = cn.Edge(c).Next {
		loop = append(loop, c)
	}
	return loop
}

// FaceEdges returns the half-edges bounding the given face, in loop
// order starting at the face's stored half-edge.
func (cn *Connectivity) FaceEdges(f FaceID) []HalfEdgeID {
	return cn.HalfEdgeLoop(cn.Face(f).HalfEdge)
}

// FaceVertices returns the origin vertices of the face loop, aligned
// index-for-index with [Connectivity.FaceEdges].
func (cn *Connectivity) FaceVertices(f FaceID) []VertexID {
	edges := cn.FaceEdges(f)
	verts := make([]VertexID, len(edges))
	for i, h := range edges {
		verts[i] = cn.Edge(h).Vertex
	}
	return verts
}

// FaceDegree returns the number of edges bounding the given face.
func (cn *Connectivity) FaceDegree(f FaceID) int {
	return len(cn.FaceEdges(f))
}
