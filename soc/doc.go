// Package soc computes second order centrality: for every node of a
// connected weighted graph, the standard deviation of the return time of a
// perpetual unbiased random walk to that node, obtained analytically.
//
// 🚀 How does it work?
//
//	The pipeline is a strict chain over an immutable core.Graph:
//
//	  1. index map     — sorted vertex IDs ↔ dense indices 0..N-1
//	  2. validation    — positive strength per node, connectivity scan
//	  3. transition    — row-stochastic P, P[i][j] = w(i,j)/strength(i)
//	  4. hitting times — per target t, two linear solves over I - P_t
//	                     (first and second moment of the hitting time)
//	  5. aggregation   — return-time mean/variance by first-step
//	                     conditioning; SOC(i) = sqrt(variance_i)
//
//	Stage 4 factorizes each reduced system once (Doolittle LU) and reuses
//	the factors for both moments. Targets are independent, so the stage
//	fans out across a configurable number of workers, each writing to a
//	disjoint column of the moment matrices.
//
// ⚙️ Usage:
//
//	scores, err := soc.SecondOrderCentrality(g)
//	stats, err := soc.ReturnTimes(g, soc.WithWorkers(runtime.NumCPU()))
//
// Lower SOC means more central: the walk revisits the node more regularly.
// The computation is deterministic for a given graph regardless of worker
// count, since workers never share output slots.
//
// Errors: ErrInvalidGraph (empty graph, isolated node, or disconnected
// input — a caller contract violation, never retried internally) and
// ErrSingularSystem (a reduced system failed to factorize; unreachable for
// valid connected input and surfaced rather than silently defaulted).
package soc
