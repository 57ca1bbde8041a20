// Package propagate implements the per-funnel slide/split loop of
// spec.md §4.2-§4.4: the trigonometric unfolding step that walks a funnel
// across one edge at a time, and the slide-or-split test that ends the
// walk either by handing the funnel off to a neighboring face, by
// terminating it against its own visited-face sequence, or by splitting it
// into a (Fpv, Fvq) child pair.
//
// Every exported entry point here is a single funnel's thread-local work:
// the frontier driver owns parallelizing calls to Advance across a level,
// this package owns what happens to one funnel within that call.
package propagate
