// Package builder constructs deterministic graph topologies on top of
// socwalk/core: stars, cycles, paths and complete graphs.
//
// These are the canonical fixtures for return-time analysis — the star is
// the extremal "one hub" topology, the cycle is perfectly symmetric, the
// complete graph mixes fastest — and they double as reproducible inputs
// for tests and examples.
//
// Every constructor is deterministic: vertex IDs come from a configurable
// ID scheme (decimal by default), edges are emitted in a fixed documented
// order, and edge weights come from a weight function that only consumes
// randomness when a seeded RNG is supplied.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Star(11))
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithLoops()},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(fn)},
//	    builder.Cycle(8),
//	)
package builder
