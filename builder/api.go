// SPDX-License-Identifier: MIT
// Package: fmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes,
//     handle for handle.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/mesh"
	"github.com/katalvlaran/fmesh/vec"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only append: vertices are numbered from m.NumVertices() at entry, so
//     several constructors compose into disjoint pieces of one mesh.
//   - Preserve determinism for the same config and call order.
type Constructor[F face.Face[F]] func(m *mesh.Mesh[vec.Vec3, F], cfg builderConfig) error

// BuildMesh creates a new mesh with mesh options mopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildMesh: %w" and
// returned immediately.
func BuildMesh[F face.Face[F]](mopts []mesh.Option, bopts []BuilderOption, cons ...Constructor[F]) (*mesh.Mesh[vec.Vec3, F], error) {
	m := mesh.New[vec.Vec3, F](mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	return m, nil
}

// Apply runs constructors against an existing mesh, e.g. to add a second
// piece to a mesh built earlier. Semantics match BuildMesh.
func Apply[F face.Face[F]](m *mesh.Mesh[vec.Vec3, F], bopts []BuilderOption, cons ...Constructor[F]) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	return nil
}
