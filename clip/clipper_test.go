package clip_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/funneltree/clip"
	"github.com/katalvlaran/funneltree/funnel"
	"github.com/katalvlaran/funneltree/mesh"
)

// splitWith appends a (Fpv, Fvq) pair to tree and returns the parent id,
// with PVS and the children's SP set as given, for exercising the
// collision table directly.
func splitWith(t *testing.T, tree *funnel.Tree, pvs, childPvSP, childVqSP float64) funnel.ID {
	t.Helper()
	children := tree.AppendPair(
		funnel.Funnel{SP: childPvSP, FirstChild: funnel.NoChild},
		funnel.Funnel{SP: childVqSP, FirstChild: funnel.NoChild},
	)
	parent := tree.Append(funnel.Funnel{PVS: pvs, FirstChild: children, State: funnel.Split})
	return parent
}

func TestRegisterNoCollision(t *testing.T) {
	tree := funnel.NewTree(0)
	m := clip.NewMap(tree, 4)
	id := splitWith(t, tree, 1.0, 1.0, 2.0)
	m.Register(id, 1, 2, 3)
	// No collision: nothing should be removed.
	f := tree.Get(id)
	assert.False(t, tree.Get(f.FirstChild).Removed)
	assert.False(t, tree.Get(f.FirstChild+1).Removed)
}

func TestRegisterCollisionNewReplacesOwner(t *testing.T) {
	tree := funnel.NewTree(0)
	m := clip.NewMap(tree, 4)

	// O: sv2 (Fvq.sp) = 5, pvs2 = 2
	o := splitWith(t, tree, 2.0, 1.0, 5.0)
	m.Register(o, 1, 2, 3)

	// N: sv (Fvq.sp) = 3 < sv2, pvs = 1 <= pvs2 -> remove O.Fpv; owner -> N
	n := splitWith(t, tree, 1.0, 1.0, 3.0)
	m.Register(n, 1, 2, 3)

	oF := tree.Get(o)
	assert.True(t, tree.Get(oF.FirstChild).Removed, "O.Fpv should be removed")
	assert.False(t, tree.Get(oF.FirstChild+1).Removed)

	nF := tree.Get(n)
	assert.False(t, tree.Get(nF.FirstChild).Removed)
	assert.False(t, tree.Get(nF.FirstChild+1).Removed)

	// A third arrival should now collide against N, not O.
	r := splitWith(t, tree, 0.5, 1.0, 1.0) // sv=1 < sv(N)=3, pvs=0.5 <= pvs(N)=1 -> remove N.Fpv
	m.Register(r, 1, 2, 3)
	assert.True(t, tree.Get(nF.FirstChild).Removed, "N.Fpv should now be removed")
}

func TestRegisterCollisionNewLoses(t *testing.T) {
	tree := funnel.NewTree(0)
	m := clip.NewMap(tree, 4)

	o := splitWith(t, tree, 1.0, 1.0, 2.0) // sv2=2, pvs2=1
	m.Register(o, 4, 5, 6)

	n := splitWith(t, tree, 3.0, 1.0, 9.0) // sv=9 > sv2=2, pvs=3 > pvs2=1 -> remove N.Fpv
	m.Register(n, 4, 5, 6)

	nF := tree.Get(n)
	assert.True(t, tree.Get(nF.FirstChild).Removed)
	assert.False(t, tree.Get(nF.FirstChild+1).Removed)
	oF := tree.Get(o)
	assert.False(t, tree.Get(oF.FirstChild).Removed)
	assert.False(t, tree.Get(oF.FirstChild+1).Removed)
}

func TestRegisterTieBreak(t *testing.T) {
	tree := funnel.NewTree(0)
	m := clip.NewMap(tree, 4)

	o := splitWith(t, tree, 1.0, 1.0, 7.0) // sv2=7, pvs2=1
	m.Register(o, 7, 8, 9)

	n := splitWith(t, tree, 2.0, 1.0, 7.0) // sv=7 (tie), pvs=2 > pvs2=1 -> remove N.Fpv, remove O.Fvq
	m.Register(n, 7, 8, 9)

	oF := tree.Get(o)
	nF := tree.Get(n)
	assert.True(t, tree.Get(oF.FirstChild+1).Removed, "O.Fvq removed on tie")
	assert.True(t, tree.Get(nF.FirstChild).Removed, "N.Fpv removed on tie")
	assert.False(t, tree.Get(oF.FirstChild).Removed, "O.Fpv survives")
	assert.False(t, tree.Get(nF.FirstChild+1).Removed, "N.Fvq survives")
}

func TestRegisterConcurrentSameKey(t *testing.T) {
	tree := funnel.NewTree(0)
	m := clip.NewMap(tree, 8)

	const n = 64
	ids := make([]funnel.ID, n)
	for i := 0; i < n; i++ {
		ids[i] = splitWith(t, tree, float64(i%5), 1.0, float64(100-i))
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			m.Register(ids[i], mesh.VertexIndex(10), mesh.VertexIndex(20), mesh.VertexIndex(30))
		}(i)
	}
	wg.Wait()

	// At least one full pair must survive (Property 7: clipping safety).
	survivorPairs := 0
	for _, id := range ids {
		f := tree.Get(id)
		c0 := tree.Get(f.FirstChild)
		c1 := tree.Get(f.FirstChild + 1)
		if !c0.Removed && !c1.Removed {
			survivorPairs++
		}
	}
	require.GreaterOrEqual(t, survivorPairs, 1)
}
