package bfs

import (
	"fmt"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
)

// Fragments splits the valid faces of m into connected pieces, two faces
// being connected when they share a valid edge. Fragments are ordered by
// their smallest face handle; faces inside a fragment are in BFS order from
// that face. A mesh with no valid face yields no fragment.
//
// opts are applied to every underlying BFS. A WithFilterNeighbor filter acts
// as a cut, so a crack can be expressed without invalidating anything; it
// must be symmetric in curr and neighbor or fragments may overlap.
// WithMaxDepth would split a piece into overlapping balls and is rejected
// with ErrOptionViolation.
//
// Time:   O(F + total face-edge incidence).
// Memory: O(F).
func Fragments[P any, F face.Face[F]](m *mesh.Mesh[P, F], opts ...Option) ([][]index.Face, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Fragments does not take MaxDepth (%d)", ErrOptionViolation, o.MaxDepth)
	}

	var comps [][]index.Face
	seen := make(map[index.Face]bool, m.NumValidFaces())
	for f := range m.ValidFaces() {
		if seen[f] {
			continue
		}
		res, err := BFS(m, f, opts...)
		if err != nil {
			return nil, err
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		comps = append(comps, res.Order)
	}
	return comps, nil
}
