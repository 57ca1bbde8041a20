// Package frontier drives the level-synchronous parallel expansion of
// spec.md §4.6-§5: it seeds the initial funnels at the star of the source
// vertex, then repeatedly hands the current level's index range to a worker
// pool that calls propagate.Advance on each funnel, merges the children
// produced into the next level, and barriers before starting the next
// level. The loop stops once a level produces no new funnels.
package frontier
