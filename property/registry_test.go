package property_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/property"
)

func TestRegistry_CheckinLookup(t *testing.T) {
	r := property.NewRegistry[index.VertexKind](nil)
	r.Resize(3)
	weights := property.NewArray[index.VertexKind, float64](3)

	require.NoError(t, r.Checkin("weight", weights))
	assert.True(t, r.Contains("weight"))
	assert.Equal(t, 1, r.Len())

	got, err := property.Lookup[float64](r, "weight")
	require.NoError(t, err)
	assert.Same(t, weights, got)
}

func TestRegistry_Errors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := property.NewRegistry[index.FaceKind](logger)

	assert.ErrorIs(t, r.Checkin("", property.NewArray[index.FaceKind, int](0)), property.ErrEmptyPropertyName)
	assert.ErrorIs(t, r.Checkin("x", nil), property.ErrNilProperty)
	var typedNil *property.Array[index.FaceKind, int]
	assert.ErrorIs(t, r.Checkin("x", typedNil), property.ErrNilProperty)
	assert.ErrorIs(t, r.Checkin("x", property.NewArray[index.FaceKind, int](2)), property.ErrPropertyLength)
	assert.False(t, r.Contains("x"))

	require.NoError(t, r.Checkin("crack", property.NewArray[index.FaceKind, int](0)))
	err := r.Checkin("crack", property.NewArray[index.FaceKind, int](0))
	assert.ErrorIs(t, err, property.ErrPropertyExists)
	assert.Contains(t, buf.String(), "property already registered")

	_, err = property.Lookup[int](r, "missing")
	assert.ErrorIs(t, err, property.ErrPropertyNotFound)

	_, err = property.Lookup[string](r, "crack")
	assert.ErrorIs(t, err, property.ErrPropertyType)
}

func TestRegistry_Checkout(t *testing.T) {
	r := property.NewRegistry[index.EdgeKind](nil)
	require.NoError(t, r.Checkin("a", property.NewArray[index.EdgeKind, int](0)))
	require.NoError(t, r.Checkin("b", property.NewArray[index.EdgeKind, bool](0)))
	assert.Equal(t, []string{"a", "b"}, r.Names())

	assert.True(t, r.Checkout("a"))
	assert.False(t, r.Checkout("a"))
	assert.Equal(t, []string{"b"}, r.Names())
}

func TestRegistry_ResizeAndFilter(t *testing.T) {
	r := property.NewRegistry[index.VertexKind](nil)
	ints := property.NewArray[index.VertexKind, int](0)
	strs := property.NewArray[index.VertexKind, string](0)
	require.NoError(t, r.Checkin("ints", ints))
	require.NoError(t, r.Checkin("strs", strs))

	r.Resize(4)
	assert.Equal(t, 4, ints.Len())
	assert.Equal(t, 4, strs.Len())

	for i := range 4 {
		ints.Set(index.NewVertex(i), i*10)
	}
	r.Filter(func(v index.Vertex) bool { return v.Int() != 1 })
	assert.Equal(t, []int{0, 20, 30}, ints.Values())
	assert.Equal(t, 3, strs.Len())
	assert.Equal(t, 3, r.Size())

	// Later check-ins are measured against the filtered size.
	assert.ErrorIs(t, r.Checkin("late", property.NewArray[index.VertexKind, int](4)), property.ErrPropertyLength)
	require.NoError(t, r.Checkin("late", property.NewArray[index.VertexKind, int](3)))
}
