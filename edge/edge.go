// Package edge defines the undirected edge value type used by meshes.
//
// An Undirected edge is an unordered pair of vertex handles: (a,b) and (b,a)
// denote the same edge. Use Equal, not ==, to compare edges.
package edge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fmesh/index"
)

// ErrFieldCount indicates the text form does not hold exactly two handles.
var ErrFieldCount = errors.New("edge: want 2 fields")

// Undirected is an unordered pair of vertex handles.
type Undirected struct {
	First  index.Vertex
	Second index.Vertex
}

// New returns the edge {a, b}.
func New(a, b index.Vertex) Undirected { return Undirected{First: a, Second: b} }

// Equal reports whether e and o join the same two vertices, in either order.
func (e Undirected) Equal(o Undirected) bool {
	return (e.First == o.First && e.Second == o.Second) ||
		(e.First == o.Second && e.Second == o.First)
}

// Contains reports whether v is an endpoint of e.
func (e Undirected) Contains(v index.Vertex) bool { return v == e.First || v == e.Second }

// SharesVertexWith reports whether e and o have an endpoint in common.
func (e Undirected) SharesVertexWith(o Undirected) bool {
	return o.Contains(e.First) || o.Contains(e.Second)
}

// Other returns the endpoint opposite v, or the sentinel if v is not an endpoint.
func (e Undirected) Other(v index.Vertex) index.Vertex {
	switch v {
	case e.First:
		return e.Second
	case e.Second:
		return e.First
	default:
		return index.Vertex{}
	}
}

// IsValid reports whether both endpoint handles are non-sentinel.
// It does not consult any mesh: an edge whose vertices were invalidated in
// a mesh is still IsValid here. Use the mesh's IsValidEdge for liveness.
func (e Undirected) IsValid() bool { return e.First.IsValid() && e.Second.IsValid() }

// String renders e as "first second".
func (e Undirected) String() string { return e.First.String() + " " + e.Second.String() }

// MarshalText implements encoding.TextMarshaler.
func (e Undirected) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for the String form.
func (e *Undirected) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	if len(fields) != 2 {
		return fmt.Errorf("%w, got %d in %q", ErrFieldCount, len(fields), text)
	}
	var out Undirected
	if err := out.First.UnmarshalText([]byte(fields[0])); err != nil {
		return fmt.Errorf("edge: first endpoint: %w", err)
	}
	if err := out.Second.UnmarshalText([]byte(fields[1])); err != nil {
		return fmt.Errorf("edge: second endpoint: %w", err)
	}
	*e = out
	return nil
}

// Parse decodes the String form of an edge.
func Parse(s string) (Undirected, error) {
	var e Undirected
	err := e.UnmarshalText([]byte(s))
	return e, err
}
