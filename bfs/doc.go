// Package bfs provides breadth-first search over the faces of a mesh.Mesh,
// returning crossing-count distances, parent links, and visit order, plus
// extraction of the connected fragments of a (possibly fractured) surface.
//
// What
//
//   - Explore valid faces in non-decreasing distance from a start face, one
//     step being a crossing of a valid shared edge.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: face → number of crossings from start
//   - Parent: face → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a face is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows vetoing individual crossings via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Fragments runs BFS from every unseen valid face to split the surface
//     into its connected pieces.
//
// Invalid entities
//
//	Invalidated faces are never visited and invalidated edges are never
//	crossed, so a traversal sees exactly the live surface. Two faces touching
//	only at a vertex are not neighbours.
//
// Determinism
//
//	Neighbours are enqueued in boundary-edge order of the current face, then
//	in the edge's face-list order (insertion order), so the visit sequence
//	is fully reproducible for a given build sequence.
//
// Complexity (F = valid faces, I = total face-edge incidence)
//
//   - Time:   O(F + I)
//   - Memory: O(F)
//
// Usage
//
//	res, err := bfs.BFS(m, start,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(_, _ index.Face, via index.Edge) bool {
//	        return !cracked.At(via)
//	    }),
//	)
//
//	pieces, err := bfs.Fragments(m)
package bfs
