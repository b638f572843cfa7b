package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

func TestArray_AppendAndAccess(t *testing.T) {
	var a property.Array[index.VertexKind, string]
	require.True(t, a.Empty())

	h0 := a.Append("a")
	h1 := a.Append("b")
	assert.Equal(t, index.NewVertex(0), h0)
	assert.Equal(t, index.NewVertex(1), h1)
	assert.Equal(t, 2, a.Len())

	assert.Equal(t, "b", a.At(h1))
	a.Set(h0, "z")
	assert.Equal(t, "z", a.At(h0))

	*a.Ref(h1) += "!"
	assert.Equal(t, []string{"z", "b!"}, a.Values())
}

func TestArray_OutOfRangePanics(t *testing.T) {
	a := property.NewArray[index.EdgeKind, int](2)
	assert.Panics(t, func() { a.At(index.NewEdge(2)) })
	assert.Panics(t, func() { a.Set(index.Edge{}, 1) })
	assert.Panics(t, func() { a.Ref(index.NewEdge(7)) })
	assert.Panics(t, func() { a.Resize(-1) })
	assert.NotPanics(t, func() { a.At(index.NewEdge(1)) })
}

func TestArray_Resize(t *testing.T) {
	a := property.NewArray[index.FaceKind, []int](1)
	a.Set(index.NewFace(0), []int{1, 2})

	a.Resize(3)
	require.Equal(t, 3, a.Len())
	assert.Equal(t, []int{1, 2}, a.At(index.NewFace(0)))
	assert.Nil(t, a.At(index.NewFace(2)), "grown slots are zero values")

	a.Resize(1)
	assert.Equal(t, 1, a.Len())

	// Growing again after a shrink must not resurrect stale values.
	a.Set(index.NewFace(0), nil)
	a.Resize(2)
	assert.Nil(t, a.At(index.NewFace(1)))

	a.Clear()
	assert.True(t, a.Empty())
}

func TestArray_Reserve(t *testing.T) {
	a := property.NewArray[index.VertexKind, bool](2)
	a.Reserve(64)
	assert.GreaterOrEqual(t, a.Cap(), 64)
	assert.Equal(t, 2, a.Len())
}

func TestArray_All(t *testing.T) {
	var a property.Array[index.VertexKind, float64]
	a.Append(0.5)
	a.Append(1.5)
	a.Append(2.5)

	var sum float64
	var last index.Vertex
	for h, v := range a.All() {
		sum += v
		last = h
	}
	assert.InDelta(t, 4.5, sum, 1e-12)
	assert.Equal(t, index.NewVertex(2), last)
}

func TestArray_Filter(t *testing.T) {
	var a property.Array[index.EdgeKind, string]
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		a.Append(s)
	}
	a.Filter(func(h index.Edge) bool { return h.Int()%2 == 0 })
	assert.Equal(t, []string{"a", "c", "e"}, a.Values())
}
