// Package property provides dense per-entity storage keyed by typed handles,
// and a named registry for attaching auxiliary per-entity data to a mesh.
//
// Array is the storage substrate of the mesh: entity payloads, validity flags
// and incidence lists are all Arrays. Registry lets callers attach their own
// Arrays (normals, crack ids, colours, ...) under a name and retrieve them with
// a checked, typed Lookup.
//
//	normals := property.NewArray[index.VertexKind, vec.Vec3](m.NumVertices())
//	_ = m.VertexProperties().Checkin("normal", normals)
//	n, err := property.Lookup[vec.Vec3](m.VertexProperties(), "normal")
package property

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrEmptyPropertyName indicates a check-in with an empty name.
	ErrEmptyPropertyName = errors.New("property: name is empty")

	// ErrNilProperty indicates a check-in of a nil column.
	ErrNilProperty = errors.New("property: column is nil")

	// ErrPropertyLength indicates a check-in of a column whose length differs
	// from the registry's entity count.
	ErrPropertyLength = errors.New("property: column length mismatch")

	// ErrPropertyExists indicates the name is already registered.
	ErrPropertyExists = errors.New("property: already registered")

	// ErrPropertyNotFound indicates a lookup of an unregistered name.
	ErrPropertyNotFound = errors.New("property: not found")

	// ErrPropertyType indicates the registered column has a different value type.
	ErrPropertyType = errors.New("property: type mismatch")
)
