// Package distance implements the single linear-pass aggregator of
// spec.md §6: given a finished funnel.Tree, recover the shortest-path
// distance from the source to every vertex that appears as some funnel's
// p.
package distance
