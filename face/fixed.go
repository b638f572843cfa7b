package face

import (
	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/index"
)

// Tri is a triangular face.
type Tri [3]index.Vertex

// Quad is a quadrilateral face.
type Quad [4]index.Vertex

// NewTri returns the triangle (a, b, c).
func NewTri(a, b, c index.Vertex) Tri { return Tri{a, b, c} }

// NewQuad returns the quadrilateral (a, b, c, d).
func NewQuad(a, b, c, d index.Vertex) Quad { return Quad{a, b, c, d} }

func (t Tri) Len() int { return len(t) }
func (t Tri) At(i int) index.Vertex { return t[i] }
func (t Tri) Edges() []edge.Undirected { return Boundary(t) }
func (t Tri) ContainsVertex(v index.Vertex) bool { return ContainsVertex(t, v) }
func (t Tri) ContainsEdge(e edge.Undirected) bool { return ContainsEdge(t, e) }
func (t Tri) SharesVertexWith(o Tri) bool { return SharesVertex(t, o) }
func (t Tri) SharesEdgeWith(o Tri) bool { return SharesEdge(t, o) }
func (t Tri) String() string { return format(t) }
func (t Tri) MarshalText() ([]byte, error) { return []byte(format(t)), nil }
func (t *Tri) UnmarshalText(text []byte) error { return parseInto(text, t[:]) }
func (t Tri) Map(fn func(index.Vertex) index.Vertex) Tri {
	return Tri{fn(t[0]), fn(t[1]), fn(t[2])}
}

func (q Quad) Len() int { return len(q) }
func (q Quad) At(i int) index.Vertex { return q[i] }
func (q Quad) Edges() []edge.Undirected { return Boundary(q) }
func (q Quad) ContainsVertex(v index.Vertex) bool { return ContainsVertex(q, v) }
func (q Quad) ContainsEdge(e edge.Undirected) bool { return ContainsEdge(q, e) }
func (q Quad) SharesVertexWith(o Quad) bool { return SharesVertex(q, o) }
func (q Quad) SharesEdgeWith(o Quad) bool { return SharesEdge(q, o) }
func (q Quad) String() string { return format(q) }
func (q Quad) MarshalText() ([]byte, error) { return []byte(format(q)), nil }
func (q *Quad) UnmarshalText(text []byte) error { return parseInto(text, q[:]) }
func (q Quad) Map(fn func(index.Vertex) index.Vertex) Quad {
	return Quad{fn(q[0]), fn(q[1]), fn(q[2]), fn(q[3])}
}

// parseInto decodes into a scratch buffer so dst is untouched on error.
func parseInto(text []byte, dst []index.Vertex) error {
	tmp := make([]index.Vertex, len(dst))
	if err := parse(text, tmp); err != nil {
		return err
	}
	copy(dst, tmp)
	return nil
}
