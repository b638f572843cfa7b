// Package index defines strongly typed entity handles and handle ranges.
//
// A handle is a stable position into a dense store. Each entity kind has its
// own handle type, so vertex, edge and face handles cannot be mixed up:
//
//	v := index.NewVertex(3) // index.Index[index.VertexKind]
//	e := index.NewEdge(3)   // index.Index[index.EdgeKind]
//	// v == e does not compile
//
// The zero handle is the sentinel ("no entity"). Handles are never reused and
// never imply that the entity they address is alive.
package index

import "errors"

// Sentinel errors for parsing handles from text.
var (
	// ErrSyntax indicates the text is not a decimal integer.
	ErrSyntax = errors.New("index: invalid syntax")

	// ErrOutOfRange indicates the decoded integer cannot address a store.
	ErrOutOfRange = errors.New("index: value out of range")
)
