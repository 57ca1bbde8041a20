package funnel

import "sync"

// Tree is the flat, append-only arena backing an entire funnel tree.
// Funnels reference each other only by ID into this arena. Every access is
// guarded by a single mutex: the frontier driver appends the seed level,
// and workers append each split's child pair (AppendPair) while the level
// is being processed.
type Tree struct {
	mu      sync.Mutex
	funnels []Funnel
}

// NewTree returns an empty arena with room for n funnels.
func NewTree(capacity int) *Tree {
	return &Tree{funnels: make([]Funnel, 0, capacity)}
}

// Append adds f to the arena and returns its ID.
func (t *Tree) Append(f Funnel) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := ID(len(t.funnels))
	t.funnels = append(t.funnels, f)
	return id
}

// AppendPair adds a (Fpv, Fvq) child pair as two adjacent slots, returning
// the first child's ID (per spec §6, children are always pair-adjacent:
// the second child is always FirstChild+1).
func (t *Tree) AppendPair(pv, vq Funnel) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := ID(len(t.funnels))
	t.funnels = append(t.funnels, pv, vq)
	return id
}

// Get returns a copy of the funnel at id. Funnels are returned by value
// (never by pointer) precisely because the backing array can reallocate
// concurrently as other workers split in the same level; a worker mutates
// its own local copy across the slide loop and writes the final result
// back once, with Set.
func (t *Tree) Get(id ID) Funnel {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.funnels[id]
}

// Set overwrites the funnel at id with f. Used once per funnel, after a
// worker finishes processing it (sliding, possibly splitting), to publish
// the final state.
func (t *Tree) Set(id ID, f Funnel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.funnels[id] = f
}

// Len returns the number of funnels currently in the arena.
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.funnels)
}

// All returns every funnel in BFS order (spec §6): the seed level first,
// then (child0, child1) pairs in the order their parents were processed.
// The returned slice is a snapshot copy, safe to read without the lock.
func (t *Tree) All() []Funnel {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Funnel, len(t.funnels))
	copy(out, t.funnels)
	return out
}

// MarkRemoved flags id (and, recursively but iteratively, every descendant
// of id) as Removed/Dead. Implemented with an explicit stack rather than
// recursion per spec §9, so it tolerates being invoked concurrently with
// other workers expanding unrelated subtrees: the Removed flag is
// monotonic, write-only, and never read by a worker processing a different
// funnel's children.
func (t *Tree) MarkRemoved(id ID) {
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.mu.Lock()
		f := &t.funnels[cur]
		alreadyDead := f.Removed
		f.Removed = true
		f.State = Dead
		child := f.FirstChild
		t.mu.Unlock()

		if alreadyDead {
			continue
		}
		if child != NoChild {
			stack = append(stack, child, child+1)
		}
	}
}
