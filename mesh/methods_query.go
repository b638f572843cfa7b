// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Read access: payloads, counts, validity, ranges and incidence lists.
// Determinism:
//   - Ranges and Valid* sequences yield handles in ascending order.
//   - Incidence lists are returned in insertion order as fresh copies.

package mesh

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

// NumVertices returns the number of vertices ever created, including invalid ones.
func (m *Mesh[P, F]) NumVertices() int { return m.vertices.Len() }

// NumEdges returns the number of edges ever created, including invalid ones.
func (m *Mesh[P, F]) NumEdges() int { return m.edges.Len() }

// NumFaces returns the number of faces ever created, including invalid ones.
func (m *Mesh[P, F]) NumFaces() int { return m.faces.Len() }

// NumValidVertices returns the number of vertices not invalidated.
func (m *Mesh[P, F]) NumValidVertices() int {
	return m.vertices.Len() - int(m.deadVertices.GetCardinality())
}

// NumValidEdges returns the number of edges not invalidated.
func (m *Mesh[P, F]) NumValidEdges() int {
	return m.edges.Len() - int(m.deadEdges.GetCardinality())
}

// NumValidFaces returns the number of faces not invalidated.
func (m *Mesh[P, F]) NumValidFaces() int {
	return m.faces.Len() - int(m.deadFaces.GetCardinality())
}

// IsValidVertex reports whether v has not been invalidated.
func (m *Mesh[P, F]) IsValidVertex(v index.Vertex) bool { return m.validVertex.At(v) }

// IsValidEdge reports whether e has not been invalidated.
func (m *Mesh[P, F]) IsValidEdge(e index.Edge) bool { return m.validEdge.At(e) }

// IsValidFace reports whether f has not been invalidated.
func (m *Mesh[P, F]) IsValidFace(f index.Face) bool { return m.validFace.At(f) }

// Vertex returns the point stored for v.
func (m *Mesh[P, F]) Vertex(v index.Vertex) P { return m.vertices.At(v) }

// SetVertex moves v to p. Topology is unaffected.
func (m *Mesh[P, F]) SetVertex(v index.Vertex, p P) { m.vertices.Set(v, p) }

// Edge returns the endpoints of e.
func (m *Mesh[P, F]) Edge(e index.Edge) edge.Undirected { return m.edges.At(e) }

// Face returns the face stored for f.
func (m *Mesh[P, F]) Face(f index.Face) F { return m.faces.At(f) }

// Vertices returns the range of every vertex handle ever created.
// Combine with IsValidVertex, or use ValidVertices, to skip dead vertices.
func (m *Mesh[P, F]) Vertices() index.Range[index.VertexKind] {
	return index.Span[index.VertexKind](m.vertices.Len())
}

// Edges returns the range of every edge handle ever created.
func (m *Mesh[P, F]) Edges() index.Range[index.EdgeKind] {
	return index.Span[index.EdgeKind](m.edges.Len())
}

// Faces returns the range of every face handle ever created.
func (m *Mesh[P, F]) Faces() index.Range[index.FaceKind] {
	return index.Span[index.FaceKind](m.faces.Len())
}

// ValidVertices yields the handles of vertices not invalidated.
func (m *Mesh[P, F]) ValidVertices() iter.Seq[index.Vertex] {
	return validOnly(m.Vertices(), &m.validVertex)
}

// ValidEdges yields the handles of edges not invalidated.
func (m *Mesh[P, F]) ValidEdges() iter.Seq[index.Edge] {
	return validOnly(m.Edges(), &m.validEdge)
}

// ValidFaces yields the handles of faces not invalidated.
func (m *Mesh[P, F]) ValidFaces() iter.Seq[index.Face] {
	return validOnly(m.Faces(), &m.validFace)
}

func validOnly[K index.Kind](r index.Range[K], valid *property.Array[K, bool]) iter.Seq[index.Index[K]] {
	return func(yield func(index.Index[K]) bool) {
		for i := range r.All() {
			if valid.At(i) && !yield(i) {
				return
			}
		}
	}
}

// VertexVertices returns the vertices joined to v by an edge.
func (m *Mesh[P, F]) VertexVertices(v index.Vertex) []index.Vertex {
	return slices.Clone(m.vertexVertices.At(v))
}

// VertexEdges returns the edges incident to v.
func (m *Mesh[P, F]) VertexEdges(v index.Vertex) []index.Edge {
	return slices.Clone(m.vertexEdges.At(v))
}

// VertexFaces returns the faces incident to v.
func (m *Mesh[P, F]) VertexFaces(v index.Vertex) []index.Face {
	return slices.Clone(m.vertexFaces.At(v))
}

// EdgeFaces returns the faces bounded by e.
func (m *Mesh[P, F]) EdgeFaces(e index.Edge) []index.Face {
	return slices.Clone(m.edgeFaces.At(e))
}

// FaceEdges returns the edges bounding f, in boundary order for faces
// whose edges were derived on insertion.
func (m *Mesh[P, F]) FaceEdges(f index.Face) []index.Edge {
	return slices.Clone(m.faceEdges.At(f))
}

// InvalidVertices returns a snapshot of the invalidated vertex positions.
func (m *Mesh[P, F]) InvalidVertices() *roaring.Bitmap { return m.deadVertices.Clone() }

// InvalidEdges returns a snapshot of the invalidated edge positions.
func (m *Mesh[P, F]) InvalidEdges() *roaring.Bitmap { return m.deadEdges.Clone() }

// InvalidFaces returns a snapshot of the invalidated face positions.
func (m *Mesh[P, F]) InvalidFaces() *roaring.Bitmap { return m.deadFaces.Clone() }

// VertexProperties returns the registry of user per-vertex arrays.
// Checked-in arrays are resized on every vertex insertion and filtered on compaction.
func (m *Mesh[P, F]) VertexProperties() *property.Registry[index.VertexKind] { return m.vertexProps }

// EdgeProperties returns the registry of user per-edge arrays.
func (m *Mesh[P, F]) EdgeProperties() *property.Registry[index.EdgeKind] { return m.edgeProps }

// FaceProperties returns the registry of user per-face arrays.
func (m *Mesh[P, F]) FaceProperties() *property.Registry[index.FaceKind] { return m.faceProps }
