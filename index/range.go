package index

import "iter"

// Range is a half-open interval [begin, end) of handles of one kind.
type Range[K Kind] struct {
	begin Index[K]
	end   Index[K]
}

// NewRange returns the range [begin, end).
// It panics if either bound is the sentinel or end orders before begin.
func NewRange[K Kind](begin, end Index[K]) Range[K] {
	if !begin.IsValid() || !end.IsValid() || end.Less(begin) {
		panic("index: malformed range [" + begin.String() + "," + end.String() + ")")
	}
	return Range[K]{begin: begin, end: end}
}

// Span returns the range covering positions [0, n).
func Span[K Kind](n int) Range[K] {
	return Range[K]{begin: New[K](0), end: New[K](n)}
}

// Begin returns the first handle of the range.
func (r Range[K]) Begin() Index[K] { return r.begin }

// End returns the handle one past the last element.
func (r Range[K]) End() Index[K] { return r.end }

// Len returns the number of handles in the range.
func (r Range[K]) Len() int { return int(r.end.pos) - int(r.begin.pos) }

// Empty reports whether the range holds no handles.
func (r Range[K]) Empty() bool { return r.begin == r.end }

// Contains reports whether i lies in [begin, end).
func (r Range[K]) Contains(i Index[K]) bool {
	return i.IsValid() && !i.Less(r.begin) && i.Less(r.end)
}

// All yields every handle in ascending order.
func (r Range[K]) All() iter.Seq[Index[K]] {
	return func(yield func(Index[K]) bool) {
		for i := r.begin; i.Less(r.end); i = i.Next() {
			if !yield(i) {
				return
			}
		}
	}
}
