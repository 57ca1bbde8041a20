package distance

import (
	"math"

	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// Aggregate computes, for every vertex that appears as some funnel's p in
// tree, the minimum sp over all funnels with that p — including removed
// ones. The source s is seeded at distance 0 directly, since s never
// appears as a funnel's own p.
//
// Including removed funnels is deliberate (§9 open question, resolved):
// the Clipper's collision rule only ever discards the *larger* of two
// candidate sp values, so a removed funnel can never hold a smaller sp
// than the surviving one at the same vertex. AggregateStrict below skips
// them instead, for tests that want to cross-check the two agree.
func Aggregate(s mesh.VertexIndex, tree *funnel.Tree) map[mesh.VertexIndex]float64 {
	return aggregate(s, tree, true)
}

// AggregateStrict computes the same distances as Aggregate but skips
// funnels with Removed set. Provided to cross-check Property 6 (distance
// correctness) is unaffected by whether removed funnels are included.
func AggregateStrict(s mesh.VertexIndex, tree *funnel.Tree) map[mesh.VertexIndex]float64 {
	return aggregate(s, tree, false)
}

func aggregate(s mesh.VertexIndex, tree *funnel.Tree, includeRemoved bool) map[mesh.VertexIndex]float64 {
	d := map[mesh.VertexIndex]float64{s: 0}
	for _, f := range tree.All() {
		if f.Removed && !includeRemoved {
			continue
		}
		if cur, ok := d[f.P]; !ok || f.SP < cur {
			d[f.P] = f.SP
		}
	}
	return d
}

// Get returns d[v] or +Inf if v never appears in the aggregated map
// (unreachable, or absent from the mesh).
func Get(d map[mesh.VertexIndex]float64, v mesh.VertexIndex) float64 {
	if val, ok := d[v]; ok {
		return val
	}
	return math.Inf(1)
}
