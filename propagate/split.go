package propagate

import (
	"math"

	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// split builds the (Fpv, Fvq) child pair from a splitting funnel f and the
// crossing that triggered the split, per spec §4.3. It also returns pvs,
// the angle the parent stores for the Clipper's collision table.
func split(m *mesh.TriangleMesh, f funnel.Funnel, c crossing) (fpv, fvq funnel.Funnel, pvs float64) {
	seq := f.Sequence.Append(c.nextFace)

	angleAtV := m.Angle(f.X, c.v, f.Q) // true interior angle at v in (x,v,q)
	fpvTop := angleAtV - c.pvq*c.sign
	if fpvTop < 0 {
		fpvTop = 0
	}

	fpv = funnel.Funnel{
		P: f.P, Q: c.v, X: f.X,
		Sequence:      seq,
		SP:            f.SP,
		PQ:            c.pv,
		SPQ:           c.spv,
		PSQ:           c.psv,
		PSW:           math.Min(f.PSW, c.psv),
		TopRightAngle: fpvTop,
		FirstChild:    funnel.NoChild,
		State:         funnel.Pending,
	}

	pvs = mesh.AngleFromSides(c.pv, c.sv, f.SP)

	fvq = funnel.Funnel{
		P: c.v, Q: f.Q, X: c.v,
		Sequence:      seq,
		SP:            c.sv,
		PQ:            c.vq,
		SPQ:           c.pvq - pvs,
		PSQ:           f.PSQ - c.psv,
		PSW:           f.PSW - c.psv,
		TopRightAngle: 0,
		FirstChild:    funnel.NoChild,
		State:         funnel.Pending,
	}

	return fpv, fvq, pvs
}
