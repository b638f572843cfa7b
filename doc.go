// Package fmesh is an index-based polygonal mesh container built for
// fracture work: surfaces that get cut, chipped and split into pieces while
// every handle you hold stays meaningful.
//
// What is fmesh?
//
//	A small, allocation-conscious library that brings together:
//		• Typed handles: index.Vertex / index.Edge / index.Face, zero value = invalid
//		• Dense per-entity storage: property.Array + a named property.Registry
//		• Fixed-arity faces: face.Tri, face.Quad (or your own face.Face type)
//		• Undirected edges derived from faces and shared between neighbours
//		• Full incidence: vertex→vertices/edges/faces, edge→faces, face→edges
//		• Soft deletion with cascades, then explicit compaction with a Remap
//		• Face-adjacency BFS and fragment extraction (bfs)
//		• Fixture generators: triangle/quad grids and fans (builder)
//
// Why fmesh?
//
//   - Handles never move until you ask: invalidation only flips flags, so
//     algorithms can keep indices across a whole fracture step.
//   - Consistency is maintained for you: adjacency is symmetric after every
//     insertion, and no valid face ever references an invalid edge or vertex.
//   - Pure Go, single owner, no hidden goroutines.
//
// Packages:
//
//	index/     typed handles and half-open handle ranges
//	property/  per-entity arrays and the named property registry
//	edge/      undirected edge value type
//	face/      polygon helpers, Tri and Quad
//	vec/       small 2D/3D point types used as vertex payloads
//	mesh/      the container: insertion, queries, invalidation, compaction
//	bfs/       traversal over face adjacency, fragments
//	builder/   deterministic fixture meshes
//
// Quick ASCII example:
//
//	    2───3
//	    │ ╲ │
//	    0───1
//
//	two triangles (0,1,2) and (1,3,2) sharing edge 1–2: four vertices,
//	five edges, two faces.
//
//	go get github.com/katalvlaran/fmesh
package fmesh
