// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Mesh type, sentinel errors, functional options and the constructor.

package mesh

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

// Sentinel errors reported by InsertEdge / InsertFace and logged by AddEdge / AddFace.
var (
	// ErrDuplicateEdge indicates the undirected edge is already registered.
	ErrDuplicateEdge = errors.New("mesh: edge already registered")

	// ErrDuplicateFace indicates an identical face is already registered.
	ErrDuplicateFace = errors.New("mesh: face already registered")

	// ErrDeadDependency indicates the new entity would rest on an invalidated
	// vertex or edge.
	ErrDeadDependency = errors.New("mesh: depends on an invalidated entity")
)

// Option configures a Mesh at construction.
type Option func(o *options)

type options struct {
	logger    *Logger
	vertexCap int
	edgeCap   int
	faceCap   int
}

// WithLogger routes duplicate-insertion warnings and invalidation traces to l.
// A nil logger is ignored.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity reserves room for the given entity counts up front.
// Negative values are treated as zero.
func WithCapacity(vertices, edges, faces int) Option {
	return func(o *options) {
		o.vertexCap = max(vertices, 0)
		o.edgeCap = max(edges, 0)
		o.faceCap = max(faces, 0)
	}
}

// Mesh stores vertices of point type P, undirected edges, and faces of type F
// together with their incidence, and supports soft deletion.
//
// Every per-entity datum lives in a property.Array of the entity's kind, so
// for each kind all arrays always have the same length: the number of
// entities of that kind ever created. Handles are therefore stable until an
// explicit RemoveInvalidEntities.
//
// Mesh is not safe for concurrent use. Callers sharing a mesh must guard each
// whole insertion or invalidation with one external lock: a single AddFace
// touches several incidence arrays.
type Mesh[P any, F face.Face[F]] struct {
	// Entities
	vertices property.Array[index.VertexKind, P]
	edges    property.Array[index.EdgeKind, edge.Undirected]
	faces    property.Array[index.FaceKind, F]

	// Connectivity
	vertexVertices property.Array[index.VertexKind, []index.Vertex]
	vertexEdges    property.Array[index.VertexKind, []index.Edge]
	vertexFaces    property.Array[index.VertexKind, []index.Face]
	edgeFaces      property.Array[index.EdgeKind, []index.Face]
	faceEdges      property.Array[index.FaceKind, []index.Edge]

	// Validity
	validVertex property.Array[index.VertexKind, bool]
	validEdge   property.Array[index.EdgeKind, bool]
	validFace   property.Array[index.FaceKind, bool]

	// Handles invalidated since construction or the last compaction.
	deadVertices *roaring.Bitmap
	deadEdges    *roaring.Bitmap
	deadFaces    *roaring.Bitmap

	// Sticky per-kind flags; see HasInvalidEntities.
	hasInvalidVertices bool
	hasInvalidEdges    bool
	hasInvalidFaces    bool

	// User-attached per-entity data, kept sized with the entity stores.
	vertexProps *property.Registry[index.VertexKind]
	edgeProps   *property.Registry[index.EdgeKind]
	faceProps   *property.Registry[index.FaceKind]

	logger *Logger
}

// New returns an empty mesh.
// By default duplicate insertions are reported at Warn level on stderr.
func New[P any, F face.Face[F]](opts ...Option) *Mesh[P, F] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}

	m := &Mesh[P, F]{
		deadVertices: roaring.New(),
		deadEdges:    roaring.New(),
		deadFaces:    roaring.New(),
		vertexProps:  property.NewRegistry[index.VertexKind](o.logger.Logger),
		edgeProps:    property.NewRegistry[index.EdgeKind](o.logger.Logger),
		faceProps:    property.NewRegistry[index.FaceKind](o.logger.Logger),
		logger:       o.logger,
	}
	m.reserve(o.vertexCap, o.edgeCap, o.faceCap)

	return m
}

func (m *Mesh[P, F]) reserve(nv, ne, nf int) {
	m.vertices.Reserve(nv)
	m.vertexVertices.Reserve(nv)
	m.vertexEdges.Reserve(nv)
	m.vertexFaces.Reserve(nv)
	m.validVertex.Reserve(nv)

	m.edges.Reserve(ne)
	m.edgeFaces.Reserve(ne)
	m.validEdge.Reserve(ne)

	m.faces.Reserve(nf)
	m.faceEdges.Reserve(nf)
	m.validFace.Reserve(nf)
}
