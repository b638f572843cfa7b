// SPDX-License-Identifier: MIT
//
// File: methods_insert.go
// Role: Insertion, lookup by value, and incidence maintenance.
// Contract:
//   - Insertions never partially apply: duplicates are detected before any
//     store is touched, and handle preconditions are checked up front.
//   - A rejected insertion returns the sentinel handle.
//   - Nothing new is ever built on an invalidated vertex or edge.

package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/index"
)

// AddVertex appends a vertex at p and returns its handle. Always succeeds.
// Complexity: O(1) amortized.
func (m *Mesh[P, F]) AddVertex(p P) index.Vertex {
	vi := m.vertices.Append(p)
	m.vertexVertices.Append(nil)
	m.vertexEdges.Append(nil)
	m.vertexFaces.Append(nil)
	m.validVertex.Append(true)
	m.vertexProps.Resize(m.vertices.Len())

	return vi
}

// FindEdge returns the handle of the edge equal to e (either orientation),
// or the sentinel if none was ever registered. Invalidated edges are found
// too: a handle is never reused.
//
// e.First must be a vertex of this mesh.
// Complexity: O(deg(e.First)).
func (m *Mesh[P, F]) FindEdge(e edge.Undirected) index.Edge {
	m.mustVertex(e.First)
	for _, ei := range m.vertexEdges.At(e.First) {
		if m.edges.At(ei).Equal(e) {
			return ei
		}
	}
	return index.Edge{}
}

// FindFace returns the handle of the face equal to f, or the sentinel.
// Equality is by ordered vertex sequence, so a rotation of f is not found.
//
// f's first vertex must be a vertex of this mesh.
// Complexity: O(number of faces around f.At(0)).
func (m *Mesh[P, F]) FindFace(f F) index.Face {
	first := f.At(0)
	m.mustVertex(first)
	for _, fi := range m.vertexFaces.At(first) {
		if m.faces.At(fi) == f {
			return fi
		}
	}
	return index.Face{}
}

// AddEdge registers e and links it to its endpoints and to every face
// already bounded by it. If e is already registered, a warning is logged,
// the mesh is left unchanged and the sentinel is returned.
func (m *Mesh[P, F]) AddEdge(e edge.Undirected) index.Edge {
	ei, err := m.InsertEdge(e)
	if err != nil {
		m.logRejected("edge", e.String(), err)
	}
	return ei
}

// InsertEdge is AddEdge reporting a rejection as an error instead of logging it:
// ErrDuplicateEdge if e is already registered, ErrDeadDependency if an
// endpoint has been invalidated.
func (m *Mesh[P, F]) InsertEdge(e edge.Undirected) (index.Edge, error) {
	m.mustVertex(e.First)
	m.mustVertex(e.Second)
	if found := m.FindEdge(e); found.IsValid() {
		return index.Edge{}, fmt.Errorf("%w: [%s] as edge %s", ErrDuplicateEdge, e, found)
	}
	for _, v := range [2]index.Vertex{e.First, e.Second} {
		if !m.validVertex.At(v) {
			return index.Edge{}, fmt.Errorf("%w: edge [%s] on vertex %s", ErrDeadDependency, e, v)
		}
	}

	ei := m.newEdge(e)
	m.updateEdgeConnectivity(e, ei)

	return ei, nil
}

// AddFace registers f, creating any boundary edge not yet present, and
// links f with its vertices and edges. If an identical face is already
// registered, a warning is logged, the mesh is left unchanged and the
// sentinel is returned.
func (m *Mesh[P, F]) AddFace(f F) index.Face {
	fi, err := m.InsertFace(f)
	if err != nil {
		m.logRejected("face", fmt.Sprint(f), err)
	}
	return fi
}

// InsertFace is AddFace reporting a rejection as an error instead of logging it:
// ErrDuplicateFace if an identical face is registered, ErrDeadDependency if
// a vertex or an already registered boundary edge of f has been invalidated.
func (m *Mesh[P, F]) InsertFace(f F) (index.Face, error) {
	for i := range f.Len() {
		m.mustVertex(f.At(i))
	}
	if found := m.FindFace(f); found.IsValid() {
		return index.Face{}, fmt.Errorf("%w: [%v] as face %s", ErrDuplicateFace, f, found)
	}
	for i := range f.Len() {
		if v := f.At(i); !m.validVertex.At(v) {
			return index.Face{}, fmt.Errorf("%w: face [%v] on vertex %s", ErrDeadDependency, f, v)
		}
	}
	for _, e := range f.Edges() {
		if ei := m.FindEdge(e); ei.IsValid() && !m.validEdge.At(ei) {
			return index.Face{}, fmt.Errorf("%w: face [%v] on edge %s", ErrDeadDependency, f, ei)
		}
	}

	fi := m.faces.Append(f)
	m.faceEdges.Append(nil)
	m.validFace.Append(true)
	m.faceProps.Resize(m.faces.Len())
	m.updateFaceConnectivity(f, fi)

	return fi, nil
}

// newEdge appends e to the edge stores without linking it.
func (m *Mesh[P, F]) newEdge(e edge.Undirected) index.Edge {
	ei := m.edges.Append(e)
	m.edgeFaces.Append(nil)
	m.validEdge.Append(true)
	m.edgeProps.Resize(m.edges.Len())
	return ei
}

// linkEdge records e as a vertex-vertex and vertex-edge incidence on both endpoints.
func (m *Mesh[P, F]) linkEdge(e edge.Undirected, ei index.Edge) {
	vv := m.vertexVertices.Ref(e.First)
	*vv = append(*vv, e.Second)
	vv = m.vertexVertices.Ref(e.Second)
	*vv = append(*vv, e.First)

	ve := m.vertexEdges.Ref(e.First)
	*ve = append(*ve, ei)
	ve = m.vertexEdges.Ref(e.Second)
	*ve = append(*ve, ei)
}

// linkEdgeFace records the edge-face incidence in both directions.
func (m *Mesh[P, F]) linkEdgeFace(ei index.Edge, fi index.Face) {
	fe := m.faceEdges.Ref(fi)
	*fe = append(*fe, ei)
	ef := m.edgeFaces.Ref(ei)
	*ef = append(*ef, fi)
}

// updateFaceConnectivity links a freshly inserted face fi.
//
// Steps:
//  1. Append fi to every vertex's face list.
//  2. Walk f's boundary in order. Reuse an edge registered earlier (shared
//     with another face), otherwise create it and link it to its endpoints.
//  3. Link each boundary edge and fi in both directions.
func (m *Mesh[P, F]) updateFaceConnectivity(f F, fi index.Face) {
	for i := range f.Len() {
		vf := m.vertexFaces.Ref(f.At(i))
		*vf = append(*vf, fi)
	}

	for _, e := range f.Edges() {
		ei := m.FindEdge(e)
		if !ei.IsValid() {
			ei = m.newEdge(e)
			m.linkEdge(e, ei)
		}
		m.linkEdgeFace(ei, fi)
	}
}

// updateEdgeConnectivity links an explicitly inserted edge ei.
// Every face holding both endpoints is taken as bounded by e and linked. A
// boundary edge is always registered by its face already, so in practice
// this attaches chords such as a quad's diagonal.
func (m *Mesh[P, F]) updateEdgeConnectivity(e edge.Undirected, ei index.Edge) {
	m.linkEdge(e, ei)

	second := m.vertexFaces.At(e.Second)
	for _, fi := range m.vertexFaces.At(e.First) {
		if slices.Contains(second, fi) {
			m.linkEdgeFace(ei, fi)
		}
	}
}

// logRejected routes an insertion error to the matching log entry.
func (m *Mesh[P, F]) logRejected(kind, value string, err error) {
	if errors.Is(err, ErrDeadDependency) {
		m.logger.LogDeadDependency(kind, value, err)
		return
	}
	m.logger.LogDuplicate(kind, value, err)
}

func (m *Mesh[P, F]) mustVertex(v index.Vertex) {
	if !v.IsValid() || v.Int() >= m.vertices.Len() {
		panic(fmt.Sprintf("mesh: vertex %s out of range [0,%d)", v, m.vertices.Len()))
	}
}

func (m *Mesh[P, F]) mustEdge(e index.Edge) {
	if !e.IsValid() || e.Int() >= m.edges.Len() {
		panic(fmt.Sprintf("mesh: edge %s out of range [0,%d)", e, m.edges.Len()))
	}
}

func (m *Mesh[P, F]) mustFace(f index.Face) {
	if !f.IsValid() || f.Int() >= m.faces.Len() {
		panic(fmt.Sprintf("mesh: face %s out of range [0,%d)", f, m.faces.Len()))
	}
}
