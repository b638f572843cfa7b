// Package builder generates deterministic fixture meshes: triangulated and
// quad grids and closed triangle fans, composed through functional options.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMesh:  create a mesh, resolve options, apply constructors in order.
//     – Apply:      run constructors against an existing mesh.
//   - Constructors (Constructor[F]):
//     – TriGrid(rows, cols):  rows×cols cells, two triangles each.
//     – QuadGrid(rows, cols): rows×cols quads.
//     – Fan(n):               hub plus n rim points, n triangles.
//   - Configuration primitives (BuilderOption):
//     – WithSpacing, WithOrigin:  lattice geometry.
//     – WithJitter:               random in-plane perturbation of grid points.
//     – WithSeed, WithRand:       RNG for jitter.
//
// Guarantees:
//
//   - Handles are predictable: each constructor appends its vertices in a
//     documented order starting at m.NumVertices(), then its faces.
//   - Several constructors applied in one BuildMesh call produce disjoint
//     pieces, which is handy for fragment tests.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors return sentinel errors (ErrTooFewVertices, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with method context.
//
// Example:
//
//	m, err := builder.BuildMesh(
//	    []mesh.Option{mesh.WithLogger(mesh.NoopLogger())},
//	    []builder.BuilderOption{builder.WithSpacing(0.5)},
//	    builder.TriGrid(4, 8),
//	)
package builder
