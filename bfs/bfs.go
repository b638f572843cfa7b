package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
)

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	f     index.Face
	depth int
}

// walker encapsulates mutable BFS state.
type walker[P any, F face.Face[F]] struct {
	mesh    *mesh.Mesh[P, F]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[index.Face]bool
	res     *Result
}

// BFS runs breadth-first search over the valid faces of m starting from
// start. Two faces are neighbours when they share a valid edge.
// Returns ErrMeshNil or ErrStartFaceInvalid for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS[P any, F face.Face[F]](m *mesh.Mesh[P, F], start index.Face, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !validFace(m, start) {
		return nil, fmt.Errorf("%w: %s", ErrStartFaceInvalid, start)
	}

	n := m.NumValidFaces()
	w := &walker[P, F]{
		mesh:    m,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[index.Face]bool, n),
		res: &Result{
			Order:  make([]index.Face, 0, n),
			Depth:  make(map[index.Face]int, n),
			Parent: make(map[index.Face]index.Face, n),
		},
	}

	w.enqueue(start, 0, index.Face{})
	return w.res, w.loop()
}

func validFace[P any, F face.Face[F]](m *mesh.Mesh[P, F], f index.Face) bool {
	return f.IsValid() && f.Int() < m.NumFaces() && m.IsValidFace(f)
}

// enqueue marks f visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[P, F]) enqueue(f index.Face, d int, parent index.Face) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if parent.IsValid() {
		w.res.Parent[f] = parent
	}
	w.opts.OnEnqueue(f, d)
	w.queue = append(w.queue, queueItem{f: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[P, F]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[P, F]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.f, item.depth)
	return item
}

// visit records the face in Order and calls OnVisit.
func (w *walker[P, F]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.f)
	if err := w.opts.OnVisit(item.f, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at face %s: %w", item.f, err)
	}
	return nil
}

// enqueueNeighbors walks item's boundary edges in order and enqueues every
// unseen valid face across each valid edge, subject to filter and MaxDepth.
func (w *walker[P, F]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.mesh.FaceEdges(item.f) {
		if !w.mesh.IsValidEdge(e) {
			continue
		}
		for _, nbr := range w.mesh.EdgeFaces(e) {
			if nbr == item.f || w.visited[nbr] || !w.mesh.IsValidFace(nbr) {
				continue
			}
			if !w.opts.FilterNeighbor(item.f, nbr, e) {
				continue
			}
			w.enqueue(nbr, nextDepth, item.f)
		}
	}
}
