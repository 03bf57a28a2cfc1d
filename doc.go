// Package socwalk computes second order centrality (SOC) for the nodes of a
// connected weighted graph: the standard deviation of the return time of a
// perpetual unbiased random walk to each node, derived analytically via
// Markov-chain hitting-time solves — no walk is ever simulated.
//
// 🚀 What is second order centrality?
//
//	A random walk over a connected graph keeps coming back to every node.
//	The MEAN return time only depends on a node's degree, but the VARIANCE
//	of the return time reflects the whole topology around it: well-placed
//	nodes are revisited regularly, peripheral nodes irregularly.
//	SOC(i) = stddev of the return time to i; lower SOC ⇒ more central.
//
// ✨ What's inside?
//
//   - core/    — weighted undirected graph primitives (thread-safe)
//   - matrix/  — dense float64 matrices with LU factorization & solves
//   - builder/ — deterministic topology constructors (Star, Cycle, …)
//   - soc/     — the analytic SOC pipeline and its single entry point
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Star(11))
//	scores, err := soc.SecondOrderCentrality(g)
//	// scores["Center"] is the strict minimum — the hub is most central.
//
// The computation is O(n) linear solves of size (n-1), i.e. O(n^4) worst
// case with the dense kernels used here; it is intended for small and
// medium graphs where exact per-node return-time statistics matter.
package socwalk
