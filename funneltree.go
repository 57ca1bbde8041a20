// Package funneltree computes exact single-source geodesic distances over
// a closed triangulated polyhedral surface using a parallel Chen-Han/MMP
// funnel-propagation algorithm.
//
// FunnelTree builds the mesh's funnel tree rooted at a source vertex;
// distance.Aggregate then recovers the shortest-path distance to every
// other vertex from the tree's sp fields. The heavy lifting — funnel
// geometry, the slide/split loop, the concurrent clipping map, and the
// level-synchronous worker pool — lives in the mesh, funnel, propagate,
// clip, and frontier subpackages; this file only wires them together.
package funneltree

import (
	"context"

	"github.com/katalvlaran/funneltree/frontier"
	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// FunnelTree computes the full funnel tree for source vertex s over m, per
// spec.md §6's "core entry point": the returned tree's funnels are in BFS
// order (seed funnels first, thereafter in pair-adjacent (child0, child1)
// groups), ready for distance.Aggregate.
func FunnelTree(ctx context.Context, m *mesh.TriangleMesh, s mesh.VertexIndex, opts ...frontier.Option) (*funnel.Tree, error) {
	return frontier.Run(ctx, m, s, opts...)
}
