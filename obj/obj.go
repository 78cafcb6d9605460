// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj reads and writes half-edge meshes in the Wavefront OBJ
// text format (*.obj). Only the geometry subset is supported: v, vn,
// vt and f records plus # comments. Materials, objects and groups are
// not handled. Basic format info:
// https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"cogentcore.org/mesh"
)

// fileComment is written at the start of every exported file.
const fileComment = "Generated by cogentcore.org/mesh"

// ParseError is malformed OBJ text: a non-numeric token where a
// number is expected, or a truncated record. It is distinct from
// I/O errors and from the mesh construction errors.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: %s in line %d", e.Msg, e.Line)
}

// Save writes the mesh in OBJ format to the given file.
func Save(m *mesh.Mesh, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return Write(m, fp)
}

// Write writes the mesh in OBJ format to the given writer, 1-based
// indices in file order: one v record per vertex, one vn record per
// vertex when the mesh has smooth normals, one vt record per
// half-edge when UVs are present (per corner, not per vertex), then
// one f record per face. An I/O failure propagates immediately and
// can leave a truncated stream behind; there is no transactional
// guarantee. Write locks nothing itself: callers sharing the mesh
// across goroutines hold its read locks around the call.
func Write(m *mesh.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", fileComment)

	cn := m.Connectivity

	vindex := make(map[mesh.VertexID]int, cn.NumVertices())
	for i, v := range cn.Vertices() {
		vindex[v] = i + 1
		pos := m.Positions.Value(v)
		fmt.Fprintf(bw, "v %g %g %g\n", pos.X, pos.Y, pos.Z)
	}

	hasNormals := false
	if m.SmoothNormals {
		if m.Normals.Len() > 0 {
			hasNormals = true
			for _, v := range cn.Vertices() {
				n := m.Normals.Value(v)
				fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
			}
		}
	} else if m.Normals.Len() > 0 {
		// TODO: export per-face normals for flat shading
		slog.Error("obj: flat normal export is not implemented; normals dropped")
	}

	// UVs live on half-edges, so they get their own index map
	hindex := make(map[mesh.HalfEdgeID]int, cn.NumHalfEdges())
	hasUVs := m.UVs.Len() > 0
	if hasUVs {
		for i, h := range cn.HalfEdges() {
			hindex[h] = i + 1
			uv := m.UVs.Value(h)
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}

	for _, f := range cn.Faces() {
		verts := cn.FaceVertices(f)
		edges := cn.FaceEdges(f)
		bw.WriteString("f")
		for i, v := range verts {
			// only per-vertex normals are supported, so the normal
			// index is the vertex index
			switch {
			case hasUVs && hasNormals:
				fmt.Fprintf(bw, " %d/%d/%d", vindex[v], hindex[edges[i]], vindex[v])
			case hasUVs:
				fmt.Fprintf(bw, " %d/%d", vindex[v], hindex[edges[i]])
			case hasNormals:
				fmt.Fprintf(bw, " %d//%d", vindex[v], vindex[v])
			default:
				fmt.Fprintf(bw, " %d", vindex[v])
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Open reads a mesh in OBJ format from the given file.
func Open(filename string) (*mesh.Mesh, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return Read(fp)
}

// Read reads a mesh in OBJ format from the given reader, streaming
// the text record by record: vertex positions accumulate in file
// order, each face record becomes one polygon, and on completion the
// whole batch is linked by a single [mesh.BuildFromPolygons] call.
// vn and vt records are parsed and then discarded: normals and UVs do
// not survive an import round trip. Malformed text is a [ParseError];
// reader failures and construction failures propagate as themselves.
func Read(r io.Reader) (*mesh.Mesh, error) {
	var positions []math32.Vector3
	var polygons [][]int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			pos, err := parseVec3(fields[1:], line)
			if err != nil {
				return nil, err
			}
			positions = append(positions, pos)
		case "vn":
			// parsed for validity, then discarded
			if _, err := parseVec3(fields[1:], line); err != nil {
				return nil, err
			}
		case "vt":
			if _, err := parseFloats(fields[1:], 2, line); err != nil {
				return nil, err
			}
		case "f":
			poly, err := parseFace(fields[1:], len(positions), line)
			if err != nil {
				return nil, err
			}
			polygons = append(polygons, poly)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mesh.BuildFromPolygons(positions, polygons)
}

func parseVec3(fields []string, line int) (math32.Vector3, error) {
	vals, err := parseFloats(fields, 3, line)
	if err != nil {
		return math32.Vector3{}, err
	}
	return math32.Vec3(vals[0], vals[1], vals[2]), nil
}

func parseFloats(fields []string, n, line int) ([]float32, error) {
	if len(fields) < n {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("fewer than %d values", n)}
	}
	vals := make([]float32, n)
	for i, f := range fields[:n] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: "non-numeric value " + strconv.Quote(f)}
		}
		vals[i] = float32(val)
	}
	return vals, nil
}

// parseFace parses one f record into a 0-based polygon. Only the
// vertex component of each i[/it][/in] entry is kept; negative
// indices are relative to the last parsed vertex.
func parseFace(fields []string, numPositions, line int) ([]int, error) {
	if len(fields) < 3 {
		return nil, &ParseError{Line: line, Msg: "face with fewer than 3 vertices"}
	}
	poly := make([]int, len(fields))
	for i, f := range fields {
		vf, _, _ := strings.Cut(f, "/")
		val, err := strconv.ParseInt(vf, 10, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: "non-numeric face index " + strconv.Quote(f)}
		}
		switch {
		case val > 0:
			poly[i] = int(val - 1)
		case val < 0:
			poly[i] = numPositions + int(val)
		default:
			return nil, &ParseError{Line: line, Msg: "face index equal to 0"}
		}
	}
	return poly, nil
}
