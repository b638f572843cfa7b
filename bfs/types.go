package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fmesh/index"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartFaceInvalid is returned when the start face is the sentinel,
	// out of range, or invalidated.
	ErrStartFaceInvalid = errors.New("bfs: start face not valid")

	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("bfs: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a face the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a face is enqueued, before visiting.
	// Receives the face and its depth from the start.
	OnEnqueue func(f index.Face, depth int)

	// OnDequeue is called immediately before visiting a face.
	OnDequeue func(f index.Face, depth int)

	// OnVisit is called when visiting a face. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(f index.Face, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a crossing by returning false.
	// Called for each step curr -> neighbor across the shared edge via.
	FilterNeighbor func(curr, neighbor index.Face, via index.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every shared valid edge may be crossed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(index.Face, int) {},
		OnDequeue:      func(index.Face, int) {},
		OnVisit:        func(index.Face, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ index.Face, _ index.Edge) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(f index.Face, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(f index.Face, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(f index.Face, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips a crossing when fn returns false.
// Typical use: treat edges flagged as cracks as impassable.
func WithFilterNeighbor(fn func(curr, neighbor index.Face, via index.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: faces visited, in visit sequence.
//   - Depth: face -> number of edge crossings from the start.
//   - Parent: face -> its predecessor in the BFS tree.
type Result struct {
	Order  []index.Face
	Depth  map[index.Face]int
	Parent map[index.Face]index.Face
}

// Reached reports whether f was enqueued during the search.
func (r *Result) Reached(f index.Face) bool {
	_, ok := r.Depth[f]
	return ok
}

// PathTo reconstructs the face path from the start face to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest index.Face) ([]index.Face, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to face %s", ErrNoPath, dest)
	}
	// build reversed path
	path := []index.Face{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
