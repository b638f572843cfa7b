// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Constructors for user property arrays sized to a mesh.
// Contract:
//   - The returned array has one zero slot per entity currently in m. Check it
//     in to the matching registry to have it follow insertions and compaction.

package mesh

import (
	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

// NewVertexArray returns a per-vertex array with a slot for every vertex of m.
func NewVertexArray[T any, P any, F face.Face[F]](m *Mesh[P, F]) *property.Array[index.VertexKind, T] {
	return property.NewArray[index.VertexKind, T](m.NumVertices())
}

// NewEdgeArray returns a per-edge array with a slot for every edge of m.
func NewEdgeArray[T any, P any, F face.Face[F]](m *Mesh[P, F]) *property.Array[index.EdgeKind, T] {
	return property.NewArray[index.EdgeKind, T](m.NumEdges())
}

// NewFaceArray returns a per-face array with a slot for every face of m.
func NewFaceArray[T any, P any, F face.Face[F]](m *Mesh[P, F]) *property.Array[index.FaceKind, T] {
	return property.NewArray[index.FaceKind, T](m.NumFaces())
}
