// Package face defines fixed-arity polygon faces for meshes.
//
// A face is an ordered, cyclic sequence of N >= 3 vertex handles. Its boundary
// is the N undirected edges joining consecutive vertices, the last one closing
// back to the first. Two faces are equal when they list the same vertices in
// the same order (plain ==).
//
// Meshes accept any type satisfying Face; Tri and Quad are provided.
package face

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/index"
)

// ErrFieldCount indicates the text form does not hold exactly N handles.
var ErrFieldCount = errors.New("face: wrong number of fields")

// Polygon is the read-only view every face exposes.
type Polygon interface {
	// Len returns the fixed vertex count N.
	Len() int
	// At returns the vertex at position i in [0, N).
	At(i int) index.Vertex
}

// Face is the capability set a mesh requires from its face type F:
// fixed arity, positional access, boundary derivation, equality, and a
// vertex relabelling used when a mesh compacts its vertex store.
type Face[F any] interface {
	comparable
	Polygon
	Edges() []edge.Undirected
	Map(fn func(index.Vertex) index.Vertex) F
}

// Boundary returns the N boundary edges of p in cyclic order.
func Boundary(p Polygon) []edge.Undirected {
	n := p.Len()
	out := make([]edge.Undirected, n)
	for i := 0; i < n-1; i++ {
		out[i] = edge.New(p.At(i), p.At(i+1))
	}
	out[n-1] = edge.New(p.At(n-1), p.At(0))
	return out
}

// ContainsVertex reports whether v is one of p's vertices.
func ContainsVertex(p Polygon, v index.Vertex) bool {
	for i := range p.Len() {
		if p.At(i) == v {
			return true
		}
	}
	return false
}

// ContainsEdge reports whether e is one of p's boundary edges.
func ContainsEdge(p Polygon, e edge.Undirected) bool {
	n := p.Len()
	for i := range n {
		if e.Equal(edge.New(p.At(i), p.At((i+1)%n))) {
			return true
		}
	}
	return false
}

// SharesVertex reports whether p and q have a vertex in common.
func SharesVertex(p, q Polygon) bool {
	for i := range p.Len() {
		if ContainsVertex(q, p.At(i)) {
			return true
		}
	}
	return false
}

// SharesEdge reports whether p and q have a boundary edge in common.
func SharesEdge(p, q Polygon) bool {
	for _, e := range Boundary(p) {
		if ContainsEdge(q, e) {
			return true
		}
	}
	return false
}

func format(p Polygon) string {
	var b strings.Builder
	for i := range p.Len() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.At(i).String())
	}
	return b.String()
}

// parse decodes exactly len(dst) whitespace-separated handles into dst.
func parse(text []byte, dst []index.Vertex) error {
	fields := strings.Fields(string(text))
	if len(fields) != len(dst) {
		return fmt.Errorf("%w: want %d, got %d in %q", ErrFieldCount, len(dst), len(fields), text)
	}
	for i, f := range fields {
		if err := dst[i].UnmarshalText([]byte(f)); err != nil {
			return fmt.Errorf("face: vertex %d: %w", i, err)
		}
	}
	return nil
}
