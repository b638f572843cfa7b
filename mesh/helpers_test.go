package mesh_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fmesh/face"
	"github.com/katalvlaran/fmesh/index"
	"github.com/katalvlaran/fmesh/mesh"
	"github.com/katalvlaran/fmesh/vec"
)

type triMesh = mesh.Mesh[vec.Vec3, face.Tri]

// newCapturingMesh returns a mesh whose log output (Debug and above) lands in buf.
func newCapturingMesh(buf *bytes.Buffer) *triMesh {
	logger := mesh.NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return mesh.New[vec.Vec3, face.Tri](mesh.WithLogger(logger))
}

// fanPoints are the six points of the reference strip used across tests.
var fanPoints = []vec.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: 2},
	{X: 2, Y: 0, Z: 0.5},
}

// buildStrip inserts v0..v5 and faces (0,1,2) (1,3,2) (2,3,4) (1,5,3).
func buildStrip(t *testing.T, m *triMesh) ([]index.Vertex, []index.Face) {
	t.Helper()
	vs := make([]index.Vertex, 0, len(fanPoints))
	for _, p := range fanPoints {
		vs = append(vs, m.AddVertex(p))
	}
	fs := []index.Face{
		m.AddFace(face.NewTri(vs[0], vs[1], vs[2])),
		m.AddFace(face.NewTri(vs[1], vs[3], vs[2])),
		m.AddFace(face.NewTri(vs[2], vs[3], vs[4])),
		m.AddFace(face.NewTri(vs[1], vs[5], vs[3])),
	}
	for _, f := range fs {
		require.True(t, f.IsValid())
	}
	return vs, fs
}

// requireConsistent checks incidence symmetry and validity closure over the whole mesh.
func requireConsistent[P any, F face.Face[F]](t *testing.T, m *mesh.Mesh[P, F]) {
	t.Helper()
	for e := range m.Edges().All() {
		ed := m.Edge(e)
		a, b := ed.First, ed.Second
		require.Contains(t, m.VertexVertices(a), b, "edge %s: %s not adjacent to %s", e, b, a)
		require.Contains(t, m.VertexVertices(b), a, "edge %s: %s not adjacent to %s", e, a, b)
		require.Contains(t, m.VertexEdges(a), e)
		require.Contains(t, m.VertexEdges(b), e)
		for _, f := range m.EdgeFaces(e) {
			require.Contains(t, m.FaceEdges(f), e, "face %s misses edge %s", f, e)
			require.True(t, face.ContainsVertex(m.Face(f), a) && face.ContainsVertex(m.Face(f), b),
				"face %s linked to edge %s without holding both endpoints", f, e)
		}
		if m.IsValidEdge(e) {
			require.True(t, m.IsValidVertex(a) && m.IsValidVertex(b), "valid edge %s with dead endpoint", e)
		}
	}
	for f := range m.Faces().All() {
		fc := m.Face(f)
		for _, e := range m.FaceEdges(f) {
			require.Contains(t, m.EdgeFaces(e), f)
			if m.IsValidFace(f) {
				require.True(t, m.IsValidEdge(e), "valid face %s with dead edge %s", f, e)
			}
		}
		for i := range fc.Len() {
			require.Contains(t, m.VertexFaces(fc.At(i)), f)
			if m.IsValidFace(f) {
				require.True(t, m.IsValidVertex(fc.At(i)), "valid face %s with dead vertex", f)
			}
		}
	}
	// No two handles for the same undirected edge.
	for e1 := range m.Edges().All() {
		for e2 := range m.Edges().All() {
			if e1.Less(e2) {
				require.False(t, m.Edge(e1).Equal(m.Edge(e2)), "edges %s and %s duplicate", e1, e2)
			}
		}
	}
}
