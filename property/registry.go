package property

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/katalvlaran/fmesh/index"
)

// Column is the type-erased view of an Array that a Registry stores.
// Every *Array[K, T] satisfies Column[K].
type Column[K index.Kind] interface {
	Len() int
	Resize(n int)
	Filter(keep func(index.Index[K]) bool)
}

// Registry maps names to externally owned per-entity arrays of kind K.
//
// The registry does not own the arrays; it only keeps them sized alongside
// the entity store it is attached to. Typed access goes through Lookup, which
// reports a type mismatch as ErrPropertyType instead of panicking.
type Registry[K index.Kind] struct {
	columns map[string]Column[K]
	// Entity count every column must match; follows Resize and Filter.
	size    int
	logger  *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger uses slog.Default().
func NewRegistry[K index.Kind](logger *slog.Logger) *Registry[K] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry[K]{columns: make(map[string]Column[K]), logger: logger}
}

// Checkin registers col under name. col must hold exactly one slot per
// entity the registry currently tracks (see Size).
func (r *Registry[K]) Checkin(name string, col Column[K]) error {
	if name == "" {
		return ErrEmptyPropertyName
	}
	if isNil(col) {
		return fmt.Errorf("%w: %q", ErrNilProperty, name)
	}
	if n := col.Len(); n != r.size {
		return fmt.Errorf("%w: %q has %d slots, want %d", ErrPropertyLength, name, n, r.size)
	}
	if _, ok := r.columns[name]; ok {
		r.logger.Warn("property already registered", "name", name)
		return fmt.Errorf("%w: %q", ErrPropertyExists, name)
	}
	r.columns[name] = col
	return nil
}

// Checkout unregisters name and reports whether it was present.
func (r *Registry[K]) Checkout(name string) bool {
	if _, ok := r.columns[name]; !ok {
		return false
	}
	delete(r.columns, name)
	return true
}

// Contains reports whether name is registered.
func (r *Registry[K]) Contains(name string) bool {
	_, ok := r.columns[name]
	return ok
}

// Len returns the number of registered columns.
func (r *Registry[K]) Len() int { return len(r.columns) }

// Names returns the registered names sorted ascending.
func (r *Registry[K]) Names() []string {
	out := make([]string, 0, len(r.columns))
	for name := range r.columns {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Size returns the entity count the registered columns are kept at.
func (r *Registry[K]) Size() int { return r.size }

// Resize resizes every registered column to n slots.
func (r *Registry[K]) Resize(n int) {
	r.size = n
	for _, col := range r.columns {
		col.Resize(n)
	}
}

// Filter applies keep to every registered column.
func (r *Registry[K]) Filter(keep func(index.Index[K]) bool) {
	kept := 0
	for i := range index.Span[K](r.size).All() {
		if keep(i) {
			kept++
		}
	}
	r.size = kept
	for _, col := range r.columns {
		col.Filter(keep)
	}
}

// isNil reports whether col is nil or a nil pointer in an interface.
func isNil[K index.Kind](col Column[K]) bool {
	if col == nil {
		return true
	}
	v := reflect.ValueOf(col)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Lookup returns the column registered under name as an *Array[K, T].
func Lookup[T any, K index.Kind](r *Registry[K], name string) (*Array[K, T], error) {
	col, ok := r.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPropertyNotFound, name)
	}
	arr, ok := col.(*Array[K, T])
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T, want %T", ErrPropertyType, name, col, arr)
	}
	return arr, nil
}
