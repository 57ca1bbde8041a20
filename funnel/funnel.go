package funnel

import "github.com/katalvlaran/funneltree/mesh"

// ID identifies a Funnel by its position in a Tree's arena.
type ID int32

// NoChild marks a Funnel that has not (yet, or ever) produced children.
const NoChild ID = -1

// State is the funnel's position in the one-way state machine of spec §4.7.
type State uint8

const (
	// Pending funnels have been created but not yet processed.
	Pending State = iota
	// Sliding funnels are inside the propagator's inner loop.
	Sliding
	// Split funnels have published two children and will not be revisited.
	Split
	// Dead funnels have been pruned — by the Clipper or by an ancestor's
	// removal — and are treated as though never created.
	Dead
	// FrontierTerminated funnels ran off the strip (revisited a face, or
	// spv reached pi with no viable next vertex) with no children.
	FrontierTerminated
)

// Funnel is one unfolded-strip record rooted at the geodesic source s. See
// spec.md §3 for the full field-by-field contract.
type Funnel struct {
	// Topological state.
	P, Q, X  mesh.VertexIndex
	Sequence Sequence

	// Geometric state.
	SP            float64 // unfolded distance s -> p
	PQ            float64 // length of edge pq in the unfolding
	SPQ           float64 // signed angle /_spq at p
	PSQ           float64 // angle /_psq at the unfolded image of s
	PSW           float64 // running min of /_psv over the ancestor chain
	TopRightAngle float64 // accumulated hinge angle at q while sliding
	PVS           float64 // set only once Split; angle /_pvs at split time

	// Children references this funnel's (Fpv, Fvq) pair once Split; both
	// indices are always adjacent (FirstChild, FirstChild+1).
	FirstChild ID

	State   State
	Removed bool
}

// HasChildren reports whether this funnel has produced a child pair.
func (f *Funnel) HasChildren() bool { return f.FirstChild != NoChild }
