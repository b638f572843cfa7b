// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Strongly typed entity handles (vertex / edge / face) with a sentinel.
// Determinism:
//   - Handles compare and order by their underlying position only.
//   - The zero value is the sentinel, so a declared-but-unset handle is invalid.

package index

import (
	"fmt"
	"math"
	"strconv"
)

// Sentinel is the textual and integral form of an invalid handle.
const Sentinel = -1

// maxPosition is the largest position a handle can address.
// Positions are stored offset by one so that the zero value is the sentinel.
const maxPosition = math.MaxUint32 - 1

// VertexKind tags handles into vertex stores.
type VertexKind struct{}

// EdgeKind tags handles into edge stores.
type EdgeKind struct{}

// FaceKind tags handles into face stores.
type FaceKind struct{}

// Kind is the closed set of entity kinds a handle may address.
type Kind interface {
	VertexKind | EdgeKind | FaceKind
}

// Index is a stable handle into a store of entities of kind K.
//
// Handles never encode liveness; validity of the addressed entity is a
// property of the owning mesh. IsValid only reports whether the handle
// is the sentinel.
type Index[K Kind] struct {
	// pos holds position+1; 0 is the sentinel.
	pos uint32
}

// Vertex, Edge and Face are the three handle types used by a mesh.
type (
	Vertex = Index[VertexKind]
	Edge   = Index[EdgeKind]
	Face   = Index[FaceKind]
)

// New returns the handle for position i.
// It panics if i is negative or exceeds the addressable range.
func New[K Kind](i int) Index[K] {
	if i < 0 || uint64(i) > maxPosition {
		panic(fmt.Sprintf("index: position %d out of range [0,%d]", i, uint64(maxPosition)))
	}
	return Index[K]{pos: uint32(i) + 1}
}

// Invalid returns the sentinel handle of kind K.
func Invalid[K Kind]() Index[K] { return Index[K]{} }

// NewVertex is shorthand for New[VertexKind].
func NewVertex(i int) Vertex { return New[VertexKind](i) }

// NewEdge is shorthand for New[EdgeKind].
func NewEdge(i int) Edge { return New[EdgeKind](i) }

// NewFace is shorthand for New[FaceKind].
func NewFace(i int) Face { return New[FaceKind](i) }

// IsValid reports whether i is not the sentinel.
func (i Index[K]) IsValid() bool { return i.pos != 0 }

// Int returns the position addressed by i, or Sentinel.
func (i Index[K]) Int() int { return int(i.pos) - 1 }

// Uint32 returns the position as uint32. It panics on the sentinel.
func (i Index[K]) Uint32() uint32 {
	if i.pos == 0 {
		panic("index: Uint32 of invalid handle")
	}
	return i.pos - 1
}

// Next returns the handle one position after i.
func (i Index[K]) Next() Index[K] { return Index[K]{pos: i.pos + 1} }

// Prev returns the handle one position before i.
// Stepping back from position 0 yields the sentinel.
func (i Index[K]) Prev() Index[K] { return Index[K]{pos: i.pos - 1} }

// Add returns i moved by n positions (n may be negative).
// The result of moving outside [0, maxPosition] is unspecified.
func (i Index[K]) Add(n int) Index[K] { return Index[K]{pos: uint32(int64(i.pos) + int64(n))} }

// Less reports whether i orders before j.
func (i Index[K]) Less(j Index[K]) bool { return i.pos < j.pos }

// Compare returns -1, 0 or +1 ordering i against j.
// The sentinel orders before every valid handle.
func (i Index[K]) Compare(j Index[K]) int {
	switch {
	case i.pos < j.pos:
		return -1
	case i.pos > j.pos:
		return 1
	default:
		return 0
	}
}

// String renders the position in decimal ("-1" for the sentinel).
func (i Index[K]) String() string { return strconv.Itoa(i.Int()) }

// MarshalText implements encoding.TextMarshaler.
func (i Index[K]) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i.Int()), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// "-1" decodes to the sentinel; any other negative value is rejected.
func (i *Index[K]) UnmarshalText(text []byte) error {
	n, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	switch {
	case n == Sentinel:
		*i = Index[K]{}
	case n < 0 || n > maxPosition:
		return fmt.Errorf("%w: %d", ErrOutOfRange, n)
	default:
		*i = Index[K]{pos: uint32(n) + 1}
	}
	return nil
}
