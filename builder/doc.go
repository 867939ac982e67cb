// Package builder provides deterministic constructors for test and benchmark
// graphs: Path, Cycle, Complete and RandomSparse over vertex ids 0..n-1.
//
// Constructors are composed through Build, which allocates the
// *matrix.AdjacencyMatrix and applies them in order:
//
//	m, err := builder.Build(6, nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.RandomSparse(6, 0.4),
//	)
//
// A fixed seed and constructor order always yields the same matrix.
package builder
