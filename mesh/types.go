package mesh

import "github.com/go-gl/mathgl/mgl64"

// MaxIndex bounds the number of points and faces a mesh may contain; New
// rejects larger inputs. The clipping key compares whole index triples, so
// this bound is not what keeps it collision-free.
const MaxIndex = 1e8

// NoFace marks the as-yet-unfilled second slot of an edge→faces entry
// while a mesh is under construction.
const NoFace int32 = -1

// VertexIndex identifies a vertex by its position in TriangleMesh.Points.
type VertexIndex int32

// Point is a point (or vector) in 3D Euclidean space.
type Point = mgl64.Vec3

// Triangle is an ordered triple of vertex indices. Orientation is whatever
// the input gave; TriangleMesh does not require consistent orientation
// across faces.
type Triangle [3]VertexIndex

// Opposite returns the first of the triangle's vertices that is neither a
// nor b. It does not check that a and b are corners of t; it panics only if
// every corner equals a or b. Callers only ever call this with an edge
// already known to belong to t.
func (t Triangle) Opposite(a, b VertexIndex) VertexIndex {
	for _, v := range t {
		if v != a && v != b {
			return v
		}
	}
	panic("mesh: Opposite called with vertices not both in triangle")
}

// Has reports whether v is one of the triangle's three corners.
func (t Triangle) Has(v VertexIndex) bool {
	return t[0] == v || t[1] == v || t[2] == v
}

// Edge is an unordered pair of vertex indices. Two edges are equal iff
// their endpoint multisets are equal.
type Edge struct {
	A, B VertexIndex
}

// NewEdge returns the canonical (order-independent) Edge for a,b, so that
// NewEdge(a,b) == NewEdge(b,a) and can be used directly as a map key.
func NewEdge(a, b VertexIndex) Edge {
	if a <= b {
		return Edge{A: a, B: b}
	}
	return Edge{A: b, B: a}
}

// Hash returns an order-independent hash of the edge's endpoints: the XOR
// of per-endpoint hashes, so Hash(a,b) == Hash(b,a) regardless of the order
// the edge was constructed in (spec Property 9).
func (e Edge) Hash() uint64 {
	return hashIndex(e.A) ^ hashIndex(e.B)
}

// hashIndex is a cheap integer mix (splitmix64 finalizer), used only to
// spread VertexIndex values before XOR-combining them in Edge.Hash.
func hashIndex(v VertexIndex) uint64 {
	x := uint64(uint32(v)) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
