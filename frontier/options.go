package frontier

import "runtime"

// Options configures a Run invocation.
//
// Workers   – number of goroutines processing each level's funnels.
//
//	Must be ≥ 1. Default is runtime.NumCPU().
//
// ShardCount – number of lock-striped buckets in the Clipper map.
//
//	Default is clip.DefaultShardCount (see NewMap).
type Options struct {
	Workers    int
	ShardCount int
}

// Option is a functional option for Run.
type Option func(*Options)

// WithWorkers overrides the worker-pool size. Panics if workers < 1.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			panic("frontier: WithWorkers requires workers >= 1")
		}
		o.Workers = workers
	}
}

// WithShardCount overrides the Clipper map's shard count. Panics if
// shardCount < 1.
func WithShardCount(shardCount int) Option {
	return func(o *Options) {
		if shardCount < 1 {
			panic("frontier: WithShardCount requires shardCount >= 1")
		}
		o.ShardCount = shardCount
	}
}

// defaultOptions returns the baseline configuration before any Option is
// applied: one worker per logical CPU, default Clipper sharding.
func defaultOptions() Options {
	return Options{
		Workers:    runtime.NumCPU(),
		ShardCount: 0, // 0 means "let clip.NewMap pick DefaultShardCount"
	}
}
