// Package funnel defines the Funnel record — one unfolded triangle-strip
// rooted at the geodesic source s — and Tree, the flat append-only arena
// that owns every funnel ever created.
//
// Funnels reference their children by integer ID into the owning Tree
// rather than by pointer, so the arena can grow (and in principle relocate)
// without invalidating any reference held elsewhere — the "pointer-graph →
// arena + index" redesign spec.md §9 calls for.
package funnel
