package mesh

// TriangleMesh is an immutable indexed triangle mesh with derived
// adjacency. Construct with New; once built, a TriangleMesh is never
// mutated and is safe to share read-only across goroutines.
type TriangleMesh struct {
	// Triangles is the input face list, orientation preserved as given.
	Triangles []Triangle
	// Points is the input vertex list.
	Points []Point

	// IncidentFaces maps each vertex to the indices (into Triangles) of
	// every face that uses it.
	IncidentFaces [][]int32

	// EdgeFaces maps each undirected edge to the two faces that border
	// it. Populated only for edges that appear in at least one triangle;
	// by construction every entry has both slots filled (closed mesh).
	EdgeFaces map[Edge][2]int32
}

// New builds a TriangleMesh from a vertex list and a face list, validating
// the closed-2-manifold invariants spec.md §3 requires. Runs
// single-threaded; the mesh it returns is immutable thereafter.
func New(points []Point, triangles []Triangle) (*TriangleMesh, error) {
	if len(points) > MaxIndex {
		return nil, &ValidationError{ErrTooManyPoints, -1}
	}
	if len(triangles) > MaxIndex {
		return nil, &ValidationError{ErrTooManyFaces, -1}
	}
	if err := checkDuplicatePoints(points); err != nil {
		return nil, err
	}

	m := &TriangleMesh{
		Triangles:     triangles,
		Points:        points,
		IncidentFaces: make([][]int32, len(points)),
		EdgeFaces:     make(map[Edge][2]int32, len(points)+len(triangles)-2),
	}

	for fi, tri := range triangles {
		for _, v := range tri {
			m.IncidentFaces[v] = append(m.IncidentFaces[v], int32(fi))
		}
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if err := m.insertEdgeFace(a, b, int32(fi)); err != nil {
				return nil, err
			}
		}
	}

	if err := m.checkClosed(); err != nil {
		return nil, err
	}
	if err := m.checkNoFloatingVertex(); err != nil {
		return nil, err
	}
	return m, nil
}

// insertEdgeFace records that face fi borders edge (a,b), try-emplace
// style: the first occurrence of an edge fills slot 0 (slot 1 left as
// NoFace); the second fills slot 1; a third occurrence is a fatal
// non-manifold error.
func (m *TriangleMesh) insertEdgeFace(a, b VertexIndex, fi int32) error {
	e := NewEdge(a, b)
	faces, ok := m.EdgeFaces[e]
	if !ok {
		m.EdgeFaces[e] = [2]int32{fi, NoFace}
		return nil
	}
	if faces[1] == NoFace {
		faces[1] = fi
		m.EdgeFaces[e] = faces
		return nil
	}
	return &ValidationError{ErrThreeFacesOnEdge, fi}
}

func (m *TriangleMesh) checkClosed() error {
	for _, faces := range m.EdgeFaces {
		if faces[1] == NoFace {
			return &ValidationError{ErrFloatingEdge, faces[0]}
		}
	}
	return nil
}

func (m *TriangleMesh) checkNoFloatingVertex() error {
	for v, faces := range m.IncidentFaces {
		if len(faces) == 0 {
			return &ValidationError{ErrFloatingVertex, int32(v)}
		}
	}
	return nil
}

func checkDuplicatePoints(points []Point) error {
	seen := make(map[Point]int32, len(points))
	for i, p := range points {
		if prev, ok := seen[p]; ok {
			return &ValidationError{ErrDuplicatePoint, prev}
		}
		seen[p] = int32(i)
	}
	return nil
}

// OtherFace returns the face bordering edge (x,q) that is not `from`. Used
// by the propagator to cross from the current face to its neighbor.
// Panics if the edge is not in EdgeFaces or from is not one of its two
// faces — both indicate a corrupted mesh, a programming error per spec §7.
func (m *TriangleMesh) OtherFace(x, q VertexIndex, from int32) int32 {
	faces, ok := m.EdgeFaces[NewEdge(x, q)]
	if !ok {
		panic("mesh: OtherFace: edge not found in mesh")
	}
	switch from {
	case faces[0]:
		return faces[1]
	case faces[1]:
		return faces[0]
	default:
		panic("mesh: OtherFace: from-face does not border this edge")
	}
}
