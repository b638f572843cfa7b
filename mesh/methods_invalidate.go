// SPDX-License-Identifier: MIT
//
// File: methods_invalidate.go
// Role: Soft deletion with cascades along the incidence arrays.
// Invariants:
//   - A flag only ever goes true -> false; nothing here sets it back.
//   - After any Invalidate* returns, no valid face has an invalid vertex or
//     edge, and no valid edge has an invalid endpoint.

package mesh

import (
	"github.com/katalvlaran/fmesh/index"
)

// InvalidateVertex marks v invalid together with every edge and face
// touching it. Edges of those faces that are left with no valid face are
// invalidated as well.
func (m *Mesh[P, F]) InvalidateVertex(v index.Vertex) {
	m.mustVertex(v)
	n := m.invalidateVertex(v)
	m.logger.LogInvalidate("vertex", v.Int(), n)
}

// InvalidateEdge marks e invalid together with every face it bounds.
func (m *Mesh[P, F]) InvalidateEdge(e index.Edge) {
	m.mustEdge(e)
	n := m.invalidateEdge(e)
	m.logger.LogInvalidate("edge", e.Int(), n)
}

// InvalidateFace marks f invalid. Each of its edges and vertices that no
// longer touches any valid face is then invalidated too (with that entity's
// own cascade). A vertex is judged by its faces only: one still listing
// edges but no valid face is isolated.
func (m *Mesh[P, F]) InvalidateFace(f index.Face) {
	m.mustFace(f)
	m.killFace(f)
	n := 0

	for _, ei := range m.faceEdges.At(f) {
		if m.validEdge.At(ei) && m.IsIsolatedEdge(ei) {
			n += 1 + m.invalidateEdge(ei)
		}
	}

	fv := m.faces.At(f)
	for i := range fv.Len() {
		v := fv.At(i)
		if m.validVertex.At(v) && m.IsIsolatedVertex(v) {
			n += 1 + m.invalidateVertex(v)
		}
	}

	m.logger.LogInvalidate("face", f.Int(), n)
}

// invalidateVertex kills v and its dependents and returns how many
// dependents it took down.
func (m *Mesh[P, F]) invalidateVertex(v index.Vertex) int {
	n := 0
	m.killVertex(v)

	for _, ei := range m.vertexEdges.At(v) {
		if m.killEdge(ei) {
			n++
		}
	}

	fs := m.vertexFaces.At(v)
	for _, fi := range fs {
		if m.killFace(fi) {
			n++
		}
	}
	for _, fi := range fs {
		for _, ei := range m.faceEdges.At(fi) {
			if m.IsIsolatedEdge(ei) && m.killEdge(ei) {
				n++
			}
		}
	}
	return n
}

// invalidateEdge kills e and the faces it bounds and returns how many faces died.
func (m *Mesh[P, F]) invalidateEdge(e index.Edge) int {
	n := 0
	m.killEdge(e)

	for _, fi := range m.edgeFaces.At(e) {
		if m.killFace(fi) {
			n++
		}
	}
	return n
}

// HasInvalidEntities reports whether any vertex, edge or face has been
// invalidated since construction or the last RemoveInvalidEntities.
// The flags are sticky, not a live recount.
func (m *Mesh[P, F]) HasInvalidEntities() bool {
	return m.hasInvalidVertices || m.hasInvalidEdges || m.hasInvalidFaces
}

// IsIsolatedVertex reports whether v has no valid incident face.
func (m *Mesh[P, F]) IsIsolatedVertex(v index.Vertex) bool {
	for _, fi := range m.vertexFaces.At(v) {
		if m.validFace.At(fi) {
			return false
		}
	}
	return true
}

// IsIsolatedEdge reports whether e has no valid incident face.
func (m *Mesh[P, F]) IsIsolatedEdge(e index.Edge) bool {
	for _, fi := range m.edgeFaces.At(e) {
		if m.validFace.At(fi) {
			return false
		}
	}
	return true
}

// killVertex clears v's flag and reports whether it was set.
func (m *Mesh[P, F]) killVertex(v index.Vertex) bool {
	m.hasInvalidVertices = true
	if !m.validVertex.At(v) {
		return false
	}
	m.validVertex.Set(v, false)
	m.deadVertices.Add(v.Uint32())
	return true
}

func (m *Mesh[P, F]) killEdge(e index.Edge) bool {
	m.hasInvalidEdges = true
	if !m.validEdge.At(e) {
		return false
	}
	m.validEdge.Set(e, false)
	m.deadEdges.Add(e.Uint32())
	return true
}

func (m *Mesh[P, F]) killFace(f index.Face) bool {
	m.hasInvalidFaces = true
	if !m.validFace.At(f) {
		return false
	}
	m.validFace.Set(f, false)
	m.deadFaces.Add(f.Uint32())
	return true
}
