// Package mesh provides an immutable indexed triangle mesh with derived
// adjacency (vertex → incident faces, undirected edge → two faces) and the
// handful of geometry queries the geodesic engine needs: edge length and
// interior corner angle.
//
// A TriangleMesh is built once, validated eagerly, and never mutated again:
//
//	m, err := mesh.New(points, triangles)
//	if err != nil {
//	    // one of ErrTooManyPoints, ErrTooManyFaces, ErrDuplicatePoint,
//	    // ErrThreeFacesOnEdge, ErrFloatingEdge, ErrFloatingVertex
//	}
//
// Construction enforces that the input describes a closed 2-manifold
// surface: every edge borders exactly two faces, every vertex is used by at
// least one face, and no two vertices share coordinates. These are the only
// checks the rest of the engine relies on — nothing downstream re-validates
// the mesh.
package mesh
