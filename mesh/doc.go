// Package mesh provides an index-based polygonal mesh container with full
// vertex/edge/face incidence and soft deletion.
//
// A Mesh[P, F] stores points of any type P and faces of any fixed-arity face
// type F (face.Tri, face.Quad, or your own type satisfying face.Face[F]).
// Edges are undirected and are usually derived: inserting a face creates
// every boundary edge that does not exist yet, and reuses the ones that do.
//
//	m := mesh.New[vec.Vec3, face.Tri]()
//	a := m.AddVertex(vec.Vec3{X: 0})
//	b := m.AddVertex(vec.Vec3{X: 1})
//	c := m.AddVertex(vec.Vec3{Z: 1})
//	f := m.AddFace(face.NewTri(a, b, c)) // also creates edges ab, bc, ca
//
// Connectivity kept for every insertion:
//
//	vertex -> adjacent vertices     VertexVertices
//	vertex -> incident edges        VertexEdges
//	vertex -> incident faces        VertexFaces
//	edge   -> incident faces        EdgeFaces
//	face   -> bounding edges        FaceEdges
//
// Handles:
//
//	Handles are typed (index.Vertex, index.Edge, index.Face), dense and
//	stable: nothing is physically removed until RemoveInvalidEntities is
//	called explicitly. Range helpers (Vertices, Edges, Faces) cover every
//	handle ever created; ValidVertices/ValidEdges/ValidFaces skip dead ones.
//
// Rejected insertions:
//
//	AddEdge / AddFace reject an entity that is already registered, or one
//	that would rest on an invalidated vertex or edge: a Warn record is
//	logged, the mesh is unchanged and the sentinel handle is returned.
//	Always check IsValid on the returned handle. InsertEdge / InsertFace do
//	the same but return ErrDuplicateEdge / ErrDuplicateFace /
//	ErrDeadDependency.
//
// Explicit edges:
//
//	AddEdge links the new edge to every face holding both endpoints. Since
//	boundary edges already exist, this only happens for chords such as a
//	quad diagonal; such a face lists the chord after its boundary edges in
//	FaceEdges and is invalidated with it.
//
// Invalidation:
//
//	InvalidateVertex(v)  v, its edges, its faces, then edges of those faces left without a valid face
//	InvalidateEdge(e)    e and its faces
//	InvalidateFace(f)    f, then each edge / vertex of f left without a valid face
//
//	Validity is monotonic: nothing becomes valid again. HasInvalidEntities is
//	a sticky flag, reset only by RemoveInvalidEntities.
//
// Contract faults:
//
//	Passing a sentinel or out-of-range handle, or a face that references a
//	vertex never created, panics. These are programming errors, like an
//	out-of-range slice index.
//
// Concurrency:
//
//	None. A Mesh has a single owner; guard whole operations with one external
//	lock if it must be shared.
package mesh
