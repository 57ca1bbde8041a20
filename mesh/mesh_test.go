package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/funneltree/mesh"
)

func tetrahedron() ([]mesh.Point, []mesh.Triangle) {
	points := []mesh.Point{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	tris := []mesh.Triangle{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return points, tris
}

func TestNewTetrahedron(t *testing.T) {
	points, tris := tetrahedron()
	m, err := mesh.New(points, tris)
	require.NoError(t, err)
	require.Len(t, m.EdgeFaces, 6)
	for _, faces := range m.EdgeFaces {
		assert.NotEqual(t, mesh.NoFace, faces[0])
		assert.NotEqual(t, mesh.NoFace, faces[1])
	}
	for v := range points {
		assert.NotEmpty(t, m.IncidentFaces[v], "vertex %d should have incident faces", v)
	}
}

func TestNewFloatingEdge(t *testing.T) {
	points := []mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	tris := []mesh.Triangle{{0, 1, 2}}
	_, err := mesh.New(points, tris)
	require.ErrorIs(t, err, mesh.ErrFloatingEdge)
}

func TestNewThreeFacesOnEdge(t *testing.T) {
	points := []mesh.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}}
	tris := []mesh.Triangle{
		{0, 1, 2},
		{0, 2, 1}, // shares all three edges of face 0; the next face is a third on edge (0,1)
		{0, 1, 4},
	}
	_, err := mesh.New(points, tris)
	require.ErrorIs(t, err, mesh.ErrThreeFacesOnEdge)
}

func TestNewDuplicatePoint(t *testing.T) {
	points := []mesh.Point{{0, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 0, 0}}
	tris := []mesh.Triangle{{0, 1, 2}, {0, 1, 3}}
	_, err := mesh.New(points, tris)
	require.ErrorIs(t, err, mesh.ErrDuplicatePoint)
}

func TestNewFloatingVertex(t *testing.T) {
	points, tris := tetrahedron()
	points = append(points, mesh.Point{5, 5, 5})
	_, err := mesh.New(points, tris)
	require.ErrorIs(t, err, mesh.ErrFloatingVertex)
}

func TestEdgeHashSymmetric(t *testing.T) {
	e1 := mesh.NewEdge(3, 7)
	e2 := mesh.NewEdge(7, 3)
	assert.Equal(t, e1, e2)
	assert.Equal(t, e1.Hash(), e2.Hash())
}

func TestAngleFromSidesClamping(t *testing.T) {
	// Degenerate: opposite side ~ s1+s2 (collinear) -> angle pi.
	assert.InDelta(t, math.Pi, mesh.AngleFromSides(1, 1, 2), 1e-9)
	// opposite ~ 0 -> angle 0.
	assert.InDelta(t, 0, mesh.AngleFromSides(1, 1, 0), 1e-9)
	// Equilateral triangle -> pi/3.
	assert.InDelta(t, math.Pi/3, mesh.AngleFromSides(1, 1, 1), 1e-9)
}

func TestLawOfCosinesRoundTrip(t *testing.T) {
	theta := math.Pi / 4
	s1, s2 := 2.0, 3.0
	opposite := mesh.LawOfCosines(theta, s1, s2)
	got := mesh.AngleFromSides(s1, s2, opposite)
	assert.InDelta(t, theta, got, 1e-9)
}

func TestOtherFace(t *testing.T) {
	points, tris := tetrahedron()
	m, err := mesh.New(points, tris)
	require.NoError(t, err)
	faces := m.EdgeFaces[mesh.NewEdge(0, 1)]
	other := m.OtherFace(0, 1, faces[0])
	assert.Equal(t, faces[1], other)
	assert.Equal(t, faces[0], m.OtherFace(0, 1, faces[1]))
}

func TestTooManyPoints(t *testing.T) {
	// Cheap proxy: we don't allocate 1e8 points in a unit test; just check
	// the bound constant is what spec requires.
	assert.EqualValues(t, 1e8, mesh.MaxIndex)
}
