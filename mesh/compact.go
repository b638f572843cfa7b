// SPDX-License-Identifier: MIT
//
// File: compact.go
// Role: RemoveInvalidEntities: physical removal of dead entities with
//       dense renumbering of survivors.
// Policy:
//   - Survivors keep their relative order; the new position of a handle is
//     its old position minus the number of removed handles before it
//     (roaring Rank over the removed set).
//   - Removal is closed under dependency: an edge with a removed endpoint and
//     a face with a removed vertex or edge are removed too, so the compacted
//     mesh has no dangling handles.

package mesh

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

// Remap translates handles taken before a RemoveInvalidEntities call into
// handles valid after it. Removed entities translate to the sentinel.
type Remap struct {
	vertices property.Array[index.VertexKind, index.Vertex]
	edges    property.Array[index.EdgeKind, index.Edge]
	faces    property.Array[index.FaceKind, index.Face]

	removedVertices int
	removedEdges    int
	removedFaces    int
}

// Vertex returns the new handle of old, or the sentinel if old was removed.
func (r *Remap) Vertex(old index.Vertex) index.Vertex { return lookupRemap(&r.vertices, old) }

// Edge returns the new handle of old, or the sentinel if old was removed.
func (r *Remap) Edge(old index.Edge) index.Edge { return lookupRemap(&r.edges, old) }

// Face returns the new handle of old, or the sentinel if old was removed.
func (r *Remap) Face(old index.Face) index.Face { return lookupRemap(&r.faces, old) }

// Removed returns how many vertices, edges and faces were removed.
func (r *Remap) Removed() (vertices, edges, faces int) {
	return r.removedVertices, r.removedEdges, r.removedFaces
}

// Identity reports whether nothing was removed.
func (r *Remap) Identity() bool {
	return r.removedVertices == 0 && r.removedEdges == 0 && r.removedFaces == 0
}

func lookupRemap[K index.Kind](a *property.Array[K, index.Index[K]], old index.Index[K]) index.Index[K] {
	if !old.IsValid() || old.Int() >= a.Len() {
		return index.Index[K]{}
	}
	return a.At(old)
}

// RemoveInvalidEntities physically removes every invalidated entity (and
// every entity depending on one), renumbers the survivors densely and
// returns the old-to-new handle translation. All handles held by the caller
// are stale afterwards and must be passed through the returned Remap.
// Property arrays checked in to the mesh registries are compacted alongside.
//
// After the call HasInvalidEntities reports false.
// Complexity: O(V + E + F + total incidence size).
func (m *Mesh[P, F]) RemoveInvalidEntities() *Remap {
	goneV, goneE, goneF := m.closeRemoved()

	r := &Remap{
		removedVertices: int(goneV.GetCardinality()),
		removedEdges:    int(goneE.GetCardinality()),
		removedFaces:    int(goneF.GetCardinality()),
	}
	buildRemap(&r.vertices, m.vertices.Len(), goneV)
	buildRemap(&r.edges, m.edges.Len(), goneE)
	buildRemap(&r.faces, m.faces.Len(), goneF)

	// Rewrite payloads and incidence of survivors in place, then drop the rest.
	for ei := range m.Edges().All() {
		if goneE.Contains(ei.Uint32()) {
			continue
		}
		e := m.edges.Ref(ei)
		e.First, e.Second = r.Vertex(e.First), r.Vertex(e.Second)
		remapList(m.edgeFaces.Ref(ei), r.Face)
	}
	for fi := range m.Faces().All() {
		if goneF.Contains(fi.Uint32()) {
			continue
		}
		m.faces.Set(fi, m.faces.At(fi).Map(r.Vertex))
		remapList(m.faceEdges.Ref(fi), r.Edge)
	}
	for vi := range m.Vertices().All() {
		if goneV.Contains(vi.Uint32()) {
			continue
		}
		remapList(m.vertexEdges.Ref(vi), r.Edge)
		remapList(m.vertexFaces.Ref(vi), r.Face)
	}

	keepV := func(v index.Vertex) bool { return !goneV.Contains(v.Uint32()) }
	keepE := func(e index.Edge) bool { return !goneE.Contains(e.Uint32()) }
	keepF := func(f index.Face) bool { return !goneF.Contains(f.Uint32()) }

	m.vertices.Filter(keepV)
	m.vertexVertices.Filter(keepV)
	m.vertexEdges.Filter(keepV)
	m.vertexFaces.Filter(keepV)
	m.validVertex.Filter(keepV)
	m.vertexProps.Filter(keepV)

	m.edges.Filter(keepE)
	m.edgeFaces.Filter(keepE)
	m.validEdge.Filter(keepE)
	m.edgeProps.Filter(keepE)

	m.faces.Filter(keepF)
	m.faceEdges.Filter(keepF)
	m.validFace.Filter(keepF)
	m.faceProps.Filter(keepF)

	// Adjacent vertices are exactly the far endpoints of the surviving edges.
	for vi := range m.Vertices().All() {
		adj := m.vertexVertices.Ref(vi)
		*adj = (*adj)[:0]
		for _, ei := range m.vertexEdges.At(vi) {
			*adj = append(*adj, m.edges.At(ei).Other(vi))
		}
	}

	m.logger.Debug("invalid entities removed",
		"vertices", r.removedVertices,
		"edges", r.removedEdges,
		"faces", r.removedFaces,
	)

	m.deadVertices.Clear()
	m.deadEdges.Clear()
	m.deadFaces.Clear()
	m.hasInvalidVertices, m.hasInvalidEdges, m.hasInvalidFaces = false, false, false

	return r
}

// closeRemoved returns the sets of positions to remove: every invalidated
// entity plus every entity referencing one.
func (m *Mesh[P, F]) closeRemoved() (goneV, goneE, goneF *roaring.Bitmap) {
	goneV = m.deadVertices.Clone()
	goneE = m.deadEdges.Clone()
	goneF = m.deadFaces.Clone()

	for ei := range m.ValidEdges() {
		e := m.edges.At(ei)
		if goneV.Contains(e.First.Uint32()) || goneV.Contains(e.Second.Uint32()) {
			goneE.Add(ei.Uint32())
		}
	}
	for fi := range m.ValidFaces() {
		if m.faceDependsOnRemoved(fi, goneV, goneE) {
			goneF.Add(fi.Uint32())
		}
	}
	return goneV, goneE, goneF
}

func (m *Mesh[P, F]) faceDependsOnRemoved(fi index.Face, goneV, goneE *roaring.Bitmap) bool {
	f := m.faces.At(fi)
	for i := range f.Len() {
		if goneV.Contains(f.At(i).Uint32()) {
			return true
		}
	}
	for _, ei := range m.faceEdges.At(fi) {
		if goneE.Contains(ei.Uint32()) {
			return true
		}
	}
	return false
}

// buildRemap fills dst with the new handle of each of the n old positions.
func buildRemap[K index.Kind](dst *property.Array[K, index.Index[K]], n int, gone *roaring.Bitmap) {
	dst.Resize(n)
	for old := range index.Span[K](n).All() {
		pos := old.Uint32()
		if gone.Contains(pos) {
			continue // zero value is the sentinel
		}
		dst.Set(old, index.New[K](int(pos)-int(gone.Rank(pos))))
	}
}

// remapList translates every handle in *list, dropping removed ones.
func remapList[K index.Kind](list *[]index.Index[K], remap func(index.Index[K]) index.Index[K]) {
	out := (*list)[:0]
	for _, h := range *list {
		if nh := remap(h); nh.IsValid() {
			out = append(out, nh)
		}
	}
	*list = out
}
