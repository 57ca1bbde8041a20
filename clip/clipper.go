package clip

import (
	"sync"

	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// DefaultShardCount is used when NewMap is given a non-positive count.
const DefaultShardCount = 64

// Map is the sharded, mutex-guarded (p,v,q) -> owner-funnel-ID map
// implementing the Clipper of spec §4.5.
type Map struct {
	tree   *funnel.Tree
	shards []shard
}

type shard struct {
	mu     sync.Mutex
	owners map[Key]funnel.ID
}

// NewMap returns a Clipper map backed by tree, with shardCount independent
// lock-striped buckets (DefaultShardCount if shardCount <= 0).
func NewMap(tree *funnel.Tree, shardCount int) *Map {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	m := &Map{tree: tree, shards: make([]shard, shardCount)}
	for i := range m.shards {
		m.shards[i].owners = make(map[Key]funnel.ID)
	}
	return m
}

func (m *Map) shardFor(k Key) *shard {
	return &m.shards[shardHash(k)%uint32(len(m.shards))]
}

// Register records that the funnel at id just split into a (Fpv, Fvq)
// child pair covering the unfolded triangle (p,v,q). If another funnel
// already registered the same triangle, the six-row collision table of
// spec §4.5 is applied immediately, pruning exactly one dominated subtree
// (or one side from each of the two owners, on a tie).
func (m *Map) Register(id funnel.ID, p, v, q mesh.VertexIndex) {
	k := NewKey(p, v, q)
	sh := m.shardFor(k)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	owner, exists := sh.owners[k]
	if !exists {
		sh.owners[k] = id
		return
	}
	m.resolve(sh, k, owner, id)
}

// resolve applies the spec §4.5 collision table for the owner O already
// registered at k against the newly arrived N. Must be called with sh.mu
// held.
func (m *Map) resolve(sh *shard, k Key, o, n funnel.ID) {
	oldF := m.tree.Get(o)
	newF := m.tree.Get(n)

	sv2 := m.tree.Get(oldF.FirstChild + 1).SP // O's Fvq.sp
	sv := m.tree.Get(newF.FirstChild + 1).SP  // N's Fvq.sp
	pvs2 := oldF.PVS
	pvs := newF.PVS

	switch {
	case sv2 > sv && pvs > pvs2:
		m.tree.MarkRemoved(oldF.FirstChild + 1) // O.Fvq
		sh.owners[k] = n
	case sv2 > sv && pvs <= pvs2:
		m.tree.MarkRemoved(oldF.FirstChild) // O.Fpv
		sh.owners[k] = n
	case sv > sv2 && pvs > pvs2:
		m.tree.MarkRemoved(newF.FirstChild) // N.Fpv
	case sv > sv2 && pvs <= pvs2:
		m.tree.MarkRemoved(newF.FirstChild + 1) // N.Fvq
	case pvs > pvs2: // sv == sv2
		m.tree.MarkRemoved(newF.FirstChild)     // N.Fpv
		m.tree.MarkRemoved(oldF.FirstChild + 1) // O.Fvq
	default: // sv == sv2, pvs <= pvs2
		m.tree.MarkRemoved(newF.FirstChild + 1) // N.Fvq
		m.tree.MarkRemoved(oldF.FirstChild)     // O.Fpv
	}
}
