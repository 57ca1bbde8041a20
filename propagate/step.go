package propagate

import (
	"math"

	"github.com/katalvlaran/funneltree/clip"
	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// Advance runs the full slide/split loop of spec §4.4 for the funnel at id,
// mutating it in place (thread-locally — the caller must be the sole owner
// of id for the duration of this call) and writing the final result back to
// tree exactly once. It returns the child range's first ID and true if the
// funnel split, or (NoChild, false) if it terminated without children.
//
// clipMap may be nil only in tests that exercise the geometry without the
// Clipper; the frontier driver always supplies one.
func Advance(m *mesh.TriangleMesh, tree *funnel.Tree, clipMap *clip.Map, id funnel.ID) (funnel.ID, bool) {
	f := tree.Get(id)
	f.State = funnel.Sliding

	for {
		c, out := crossEdge(m, &f)
		if out == outcomeTerminated {
			f.State = funnel.FrontierTerminated
			f.FirstChild = funnel.NoChild
			tree.Set(id, f)
			return funnel.NoChild, false
		}

		switch {
		case c.spv >= math.Pi:
			// Wrap slide: the unfolding closed past s; carry on from v.
			f.Sequence = f.Sequence.Append(c.nextFace)
			f.X = c.v
			f.TopRightAngle = c.top
			continue

		case c.psv >= f.PSW:
			// Boundary slide: q moves to v, p stays put.
			f.Sequence = f.Sequence.Append(c.nextFace)
			f.Q = c.v
			f.PQ = c.pv
			f.SPQ = c.spv
			f.PSQ = c.psv
			f.PSW = math.Min(f.PSW, c.psv)
			f.TopRightAngle = c.top
			continue

		default:
			fpv, fvq, pvs := split(m, f, c)
			firstChild := tree.AppendPair(fpv, fvq)

			f.PVS = pvs
			f.FirstChild = firstChild
			f.State = funnel.Split
			tree.Set(id, f)

			if clipMap != nil {
				clipMap.Register(id, f.P, c.v, f.Q)
			}
			return firstChild, true
		}
	}
}
