// Package clip implements the Clipper of spec.md §4.5: a concurrent map
// keyed by the unordered unfolded triangle (p,v,q) that dedupes funnels
// which split on the same triangle and prunes the dominated child subtree.
//
// The map is sharded over a fixed number of independent mutex-guarded
// buckets (spec §9's "reasonable redesign: sharded lock-striped map"),
// generalizing the teacher's habit of scoping separate locks to disjoint
// concerns (one mutex for vertices, one for edges) to N locks scoped by key
// hash. Within a shard, Register is a try-insert followed — on collision —
// by the six-row comparison table of spec §4.5, applied verbatim.
package clip
