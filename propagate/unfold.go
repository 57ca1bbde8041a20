package propagate

import (
	"math"

	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// crossing carries the unfolded geometry produced by walking f across its
// current edge xq into the next face, per spec §4.2. It is computed once
// per edge-crossing and consumed by Advance to decide slide-vs-split.
type crossing struct {
	nextFace int32
	v        mesh.VertexIndex
	sign     float64
	top      float64 // updated top_right_angle
	pv, vq   float64
	spv      float64
	sv       float64
	psv      float64
	pvq      float64
}

// outcome tags what crossEdge found.
type outcome uint8

const (
	outcomeTerminated outcome = iota // next face already visited
	outcomeCrossed
)

// crossEdge performs one edge crossing of f.X-f.Q into the face on the
// other side, per spec §4.2. It never mutates f; the caller applies the
// slide/split decision.
func crossEdge(m *mesh.TriangleMesh, f *funnel.Funnel) (crossing, outcome) {
	lastFace := f.Sequence.Last()
	nextFace := m.OtherFace(f.X, f.Q, lastFace)
	if f.Sequence.Contains(nextFace) {
		return crossing{}, outcomeTerminated
	}

	v := m.Triangles[nextFace].Opposite(f.X, f.Q)

	angleXQV := m.Angle(f.X, f.Q, v)
	top := f.TopRightAngle + angleXQV
	sign := 1.0
	if top >= math.Pi {
		top = 2*math.Pi - top
		sign = -1.0
	}

	vq := m.Dist(v, f.Q)
	pv := mesh.LawOfCosines(top, f.PQ, vq)
	angleAtP := mesh.AngleFromSides(pv, f.PQ, vq)
	spv := f.SPQ + sign*angleAtP

	sv := mesh.LawOfCosines(spv, f.SP, pv)
	psv := mesh.AngleFromSides(f.SP, sv, pv)
	pvq := mesh.AngleFromSides(pv, vq, f.PQ)

	return crossing{
		nextFace: nextFace,
		v:        v,
		sign:     sign,
		top:      top,
		pv:       pv,
		vq:       vq,
		spv:      spv,
		sv:       sv,
		psv:      psv,
		pvq:      pvq,
	}, outcomeCrossed
}
