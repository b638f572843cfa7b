package mesh_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fmesh/edge"
	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
	"github.com/katalvlaran/fmesh/property"
	"github.com/katalvlaran/fmesh/vec"
)

// InsertSuite covers insertion, lookup and incidence maintenance on the reference strip.
type InsertSuite struct {
	suite.Suite
	logs bytes.Buffer
	m    *triMesh
	v    []index.Vertex
	f    []index.Face
}

func (s *InsertSuite) SetupTest() {
	s.logs.Reset()
	s.m = newCapturingMesh(&s.logs)
	s.v, s.f = buildStrip(s.T(), s.m)
}

func (s *InsertSuite) e(a, b int) edge.Undirected { return edge.New(s.v[a], s.v[b]) }

func (s *InsertSuite) TestCounts() {
	require.Equal(s.T(), 6, s.m.NumVertices())
	require.Equal(s.T(), 4, s.m.NumFaces())
	// 3 + 2 + 2 + 2 edges: each later face reuses one edge.
	require.Equal(s.T(), 9, s.m.NumEdges())
	require.Equal(s.T(), 9, s.m.NumValidEdges())
	require.False(s.T(), s.m.HasInvalidEntities())
	requireConsistent(s.T(), s.m)
}

func (s *InsertSuite) TestVertexPayload() {
	require.Equal(s.T(), fanPoints[3], s.m.Vertex(s.v[3]))
	s.m.SetVertex(s.v[3], vec.Vec3{X: 9})
	require.Equal(s.T(), vec.Vec3{X: 9}, s.m.Vertex(s.v[3]))
}

func (s *InsertSuite) TestFindEdge() {
	e12 := s.m.FindEdge(s.e(1, 2))
	require.True(s.T(), e12.IsValid())
	require.Equal(s.T(), e12, s.m.FindEdge(s.e(2, 1)), "lookup is orientation independent")
	require.True(s.T(), s.m.Edge(e12).Equal(s.e(1, 2)))

	require.False(s.T(), s.m.FindEdge(s.e(0, 4)).IsValid())
}

func (s *InsertSuite) TestFindFace() {
	require.Equal(s.T(), s.f[2], s.m.FindFace(face.NewTri(s.v[2], s.v[3], s.v[4])))
	require.False(s.T(), s.m.FindFace(face.NewTri(s.v[3], s.v[4], s.v[2])).IsValid(),
		"a rotated face is a different face")
	require.Equal(s.T(), face.NewTri(s.v[1], s.v[5], s.v[3]), s.m.Face(s.f[3]))
}

func (s *InsertSuite) TestSharedEdgeReuse() {
	e12 := s.m.FindEdge(s.e(1, 2))
	require.ElementsMatch(s.T(), []index.Face{s.f[0], s.f[1]}, s.m.EdgeFaces(e12))

	e13 := s.m.FindEdge(s.e(1, 3))
	require.ElementsMatch(s.T(), []index.Face{s.f[1], s.f[3]}, s.m.EdgeFaces(e13))

	e34 := s.m.FindEdge(s.e(3, 4))
	require.Equal(s.T(), []index.Face{s.f[2]}, s.m.EdgeFaces(e34))
}

func (s *InsertSuite) TestFaceEdgesInBoundaryOrder() {
	fe := s.m.FaceEdges(s.f[1])
	require.Len(s.T(), fe, 3)
	for i, e := range face.NewTri(s.v[1], s.v[3], s.v[2]).Edges() {
		require.True(s.T(), s.m.Edge(fe[i]).Equal(e), "edge %d", i)
	}
}

func (s *InsertSuite) TestVertexIncidence() {
	require.ElementsMatch(s.T(), []index.Vertex{s.v[0], s.v[2], s.v[3], s.v[5]}, s.m.VertexVertices(s.v[1]))
	require.Len(s.T(), s.m.VertexEdges(s.v[1]), 4)
	require.ElementsMatch(s.T(), []index.Face{s.f[0], s.f[1], s.f[3]}, s.m.VertexFaces(s.v[1]))
	require.Equal(s.T(), []index.Face{s.f[2]}, s.m.VertexFaces(s.v[4]))
}

func (s *InsertSuite) TestIncidenceQueriesReturnCopies() {
	got := s.m.VertexFaces(s.v[1])
	got[0] = index.Face{}
	require.True(s.T(), s.m.VertexFaces(s.v[1])[0].IsValid())
}

func (s *InsertSuite) TestDuplicateFaceRejected() {
	before := s.m.NumFaces()
	dup := s.m.AddFace(face.NewTri(s.v[0], s.v[1], s.v[2]))

	require.False(s.T(), dup.IsValid())
	require.Equal(s.T(), before, s.m.NumFaces())
	require.Equal(s.T(), 9, s.m.NumEdges())
	require.Contains(s.T(), s.logs.String(), "duplicate insertion rejected")
	require.Contains(s.T(), s.logs.String(), "kind=face")

	_, err := s.m.InsertFace(face.NewTri(s.v[1], s.v[5], s.v[3]))
	require.ErrorIs(s.T(), err, mesh.ErrDuplicateFace)
	requireConsistent(s.T(), s.m)
}

func (s *InsertSuite) TestDuplicateEdgeRejected() {
	before := s.m.NumEdges()
	dup := s.m.AddEdge(s.e(2, 1))

	require.False(s.T(), dup.IsValid())
	require.Equal(s.T(), before, s.m.NumEdges())
	require.Contains(s.T(), s.logs.String(), "kind=edge")

	_, err := s.m.InsertEdge(s.e(3, 4))
	require.ErrorIs(s.T(), err, mesh.ErrDuplicateEdge)
}

func (s *InsertSuite) TestExplicitEdge() {
	e := s.m.AddEdge(s.e(0, 4))
	require.True(s.T(), e.IsValid())
	require.Equal(s.T(), 10, s.m.NumEdges())
	require.Contains(s.T(), s.m.VertexVertices(s.v[0]), s.v[4])
	require.Contains(s.T(), s.m.VertexVertices(s.v[4]), s.v[0])
	require.Empty(s.T(), s.m.EdgeFaces(e), "no face has 0-4 on its boundary")
	require.True(s.T(), s.m.IsIsolatedEdge(e))
	requireConsistent(s.T(), s.m)

	// A second insertion of the same pair, either orientation, is rejected.
	require.False(s.T(), s.m.AddEdge(s.e(4, 0)).IsValid())
	require.Equal(s.T(), 10, s.m.NumEdges())
}

func (s *InsertSuite) TestRanges() {
	require.Equal(s.T(), 6, s.m.Vertices().Len())
	require.Equal(s.T(), 9, s.m.Edges().Len())
	require.Equal(s.T(), s.f, slices.Collect(s.m.Faces().All()))
	require.Equal(s.T(), s.v, slices.Collect(s.m.ValidVertices()))
}

func TestInsertSuite(t *testing.T) {
	suite.Run(t, new(InsertSuite))
}

// TestExplicitEdgeBeforeFace checks that a face reuses an edge inserted up front
// and that the edge picks up the face.
func TestExplicitEdgeBeforeFace(t *testing.T) {
	m := mesh.New[vec.Vec3, face.Tri](mesh.WithLogger(mesh.NoopLogger()))
	a := m.AddVertex(vec.Vec3{})
	b := m.AddVertex(vec.Vec3{X: 1})
	c := m.AddVertex(vec.Vec3{Y: 1})

	ab := m.AddEdge(edge.New(b, a))
	require.Equal(t, index.NewEdge(0), ab)
	require.True(t, m.IsIsolatedEdge(ab))

	f := m.AddFace(face.NewTri(a, b, c))
	require.Equal(t, 3, m.NumEdges(), "ab reused, bc and ca created")
	require.Equal(t, []index.Face{f}, m.EdgeFaces(ab))
	require.Equal(t, ab, m.FaceEdges(f)[0])
	require.False(t, m.IsIsolatedEdge(ab))
	requireConsistent(t, m)
}

// TestExplicitEdgeQuadDiagonal checks that an explicit edge joining two
// opposite corners of a quad is linked to the quad, and that the quad then
// depends on it.
func TestExplicitEdgeQuadDiagonal(t *testing.T) {
	m := mesh.New[vec.Vec2, face.Quad](mesh.WithLogger(mesh.NoopLogger()))
	var v [4]index.Vertex
	for i := range v {
		v[i] = m.AddVertex(vec.Vec2{X: float64(i % 2), Y: float64(i / 2)})
	}
	q := m.AddFace(face.NewQuad(v[0], v[1], v[3], v[2]))
	require.True(t, q.IsValid())
	require.Equal(t, 4, m.NumEdges())

	diag := m.AddEdge(edge.New(v[0], v[3]))
	require.True(t, diag.IsValid())
	assert.Equal(t, []index.Face{q}, m.EdgeFaces(diag))
	require.Len(t, m.FaceEdges(q), 5)
	assert.Equal(t, diag, m.FaceEdges(q)[4], "boundary edges first, chord last")
	assert.Contains(t, m.VertexVertices(v[0]), v[3])
	requireConsistent(t, m)

	m.InvalidateEdge(diag)
	assert.False(t, m.IsValidFace(q))
	requireConsistent(t, m)
}

// TestQuadSharedEdge exercises incidence with a face type other than Tri.
func TestQuadSharedEdge(t *testing.T) {
	m := mesh.New[vec.Vec2, face.Quad](mesh.WithCapacity(6, 7, 2), mesh.WithLogger(mesh.NoopLogger()))
	var v [6]index.Vertex
	for i := range v {
		v[i] = m.AddVertex(vec.Vec2{X: float64(i % 3), Y: float64(i / 3)})
	}
	q0 := m.AddFace(face.NewQuad(v[0], v[1], v[4], v[3]))
	q1 := m.AddFace(face.NewQuad(v[1], v[2], v[5], v[4]))

	require.Equal(t, 7, m.NumEdges())
	shared := m.FindEdge(edge.New(v[4], v[1]))
	require.ElementsMatch(t, []index.Face{q0, q1}, m.EdgeFaces(shared))
	requireConsistent(t, m)
}

func TestContractFaults(t *testing.T) {
	m := mesh.New[vec.Vec3, face.Tri](mesh.WithLogger(mesh.NoopLogger()))
	a := m.AddVertex(vec.Vec3{})
	b := m.AddVertex(vec.Vec3{X: 1})
	ghost := index.NewVertex(7)

	assert.Panics(t, func() { m.AddFace(face.NewTri(a, b, ghost)) })
	assert.Panics(t, func() { m.AddEdge(edge.New(a, ghost)) })
	assert.Panics(t, func() { m.FindEdge(edge.New(index.Vertex{}, a)) })
	assert.Panics(t, func() { m.InvalidateFace(index.NewFace(0)) })
	assert.Panics(t, func() { m.InvalidateEdge(index.Edge{}) })
	assert.Panics(t, func() { m.Vertex(ghost) })

	// A rejected face must not have left partial state behind.
	assert.Equal(t, 0, m.NumFaces())
	assert.Equal(t, 0, m.NumEdges())
	assert.Empty(t, m.VertexFaces(a))
}

func TestVertexPropertiesFollowInsertions(t *testing.T) {
	m := mesh.New[vec.Vec3, face.Tri](mesh.WithLogger(mesh.NoopLogger()))
	a := m.AddVertex(vec.Vec3{})

	temps := mesh.NewVertexArray[float64](m)
	require.NoError(t, m.VertexProperties().Checkin("temperature", temps))
	require.Equal(t, 1, temps.Len())

	b := m.AddVertex(vec.Vec3{X: 1})
	c := m.AddVertex(vec.Vec3{Y: 1})
	require.Equal(t, 3, temps.Len())
	temps.Set(c, 21.5)

	m.AddFace(face.NewTri(a, b, c))
	cracks := mesh.NewEdgeArray[bool](m)
	require.NoError(t, m.EdgeProperties().Checkin("crack", cracks))
	require.Equal(t, 3, cracks.Len())

	m.AddVertex(vec.Vec3{Z: 1})
	assert.Equal(t, 4, temps.Len())
	assert.InDelta(t, 21.5, temps.At(c), 0)

	stale := property.NewArray[index.VertexKind, int](3)
	assert.ErrorIs(t, m.VertexProperties().Checkin("stale", stale), property.ErrPropertyLength)
}
