package frontier

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/funneltree/clip"
	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
	"github.com/katalvlaran/funneltree/propagate"
)

// Run builds the full funnel tree for source vertex s over mesh m, per
// spec.md §4.6: seed the star of s as level 0, then repeatedly process the
// current level's index range with a worker pool, merging each split's
// children into the next level, until a level produces no new funnels.
//
// ctx is checked only between levels (spec §5: "cancellation mid-level is
// not supported"); a cancelled context stops the run after the level in
// progress finishes and returns ctx.Err().
func Run(ctx context.Context, m *mesh.TriangleMesh, s mesh.VertexIndex, opts ...Option) (*funnel.Tree, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	tree := funnel.NewTree(len(m.Triangles))
	seedLevel(tree, m, s)
	clipMap := clip.NewMap(tree, options.ShardCount)

	start, end := 0, tree.Len()
	for end > start {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := runLevel(m, tree, clipMap, start, end, options.Workers); err != nil {
			return nil, err
		}
		start, end = end, tree.Len()
	}
	return tree, nil
}

// seedLevel creates the initial funnel for every face incident to s, per
// spec §4.6: p,q are s's triangle's other two vertices taken in the order
// that winds consistently with the face, x=p, and sequence is every face
// incident to s with the seeding face moved last.
func seedLevel(tree *funnel.Tree, m *mesh.TriangleMesh, s mesh.VertexIndex) {
	star := m.IncidentFaces[s]
	for _, f := range star {
		tri := m.Triangles[f]
		var p, q mesh.VertexIndex
		for i := 0; i < 3; i++ {
			if tri[i] == s {
				p, q = tri[(i+1)%3], tri[(i+2)%3]
				break
			}
		}

		seq := starSequenceEndingIn(star, f)
		spw := m.Angle(p, s, q) // angle at s
		tree.Append(funnel.Funnel{
			P: p, Q: q, X: p,
			Sequence:      seq,
			SP:            m.Dist(s, p),
			PQ:            m.Dist(p, q),
			SPQ:           m.Angle(s, p, q), // angle at p
			PSQ:           spw,
			PSW:           spw,
			TopRightAngle: 0,
			FirstChild:    funnel.NoChild,
			State:         funnel.Pending,
		})
	}
}

// starSequenceEndingIn builds the Sequence containing every face in star,
// with last placed at the end, so the seed funnel's own face is the most
// recently visited one.
func starSequenceEndingIn(star []int32, last int32) funnel.Sequence {
	ordered := make([]int32, 0, len(star))
	for _, f := range star {
		if f != last {
			ordered = append(ordered, f)
		}
	}
	ordered = append(ordered, last)
	return funnel.NewSequence(ordered)
}

// runLevel dynamically distributes [start,end) across a worker pool,
// advancing every non-removed funnel in range. Panics inside a worker are
// recovered, logged, and surfaced as the returned error — the run aborts
// rather than publishing partial results.
func runLevel(m *mesh.TriangleMesh, tree *funnel.Tree, clipMap *clip.Map, start, end, workers int) error {
	cursor := int64(start)
	var wg sync.WaitGroup
	var firstErr atomic.Value // stores error

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if n := end - start; workers > n {
		workers = n
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)
					slog.Error("panic in frontier worker",
						slog.Int("worker_id", workerID),
						slog.Any("panic", r),
						slog.String("stack", string(buf[:n])),
					)
					firstErr.CompareAndSwap(nil, fmt.Errorf("frontier: worker %d panicked: %v", workerID, r))
				}
			}()

			for {
				i := atomic.AddInt64(&cursor, 1) - 1
				if i >= int64(end) {
					return
				}
				id := funnel.ID(i)
				f := tree.Get(id)
				if f.Removed {
					continue
				}
				propagate.Advance(m, tree, clipMap, id)
			}
		}(w)
	}
	wg.Wait()

	if v := firstErr.Load(); v != nil {
		return v.(error)
	}
	return nil
}
