// SPDX-License-Identifier: MIT
// Package soc: tunable options, result types, and sentinel errors for the
// second-order-centrality pipeline.

package soc

import (
	"errors"
	"fmt"
)

// Sentinel errors for SOC computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("soc: graph is nil")

	// ErrInvalidGraph is returned when the input graph violates the caller
	// contract: empty, contains a zero-strength (isolated) vertex, or is
	// not connected under positive-weight edges. Wrapped causes carry the
	// specifics; branch with errors.Is(err, ErrInvalidGraph).
	ErrInvalidGraph = errors.New("soc: invalid graph")

	// ErrSingularSystem is returned when a reduced transition system is not
	// invertible. This should be unreachable for a valid connected graph
	// and signals a numerical degeneracy; it is never papered over.
	ErrSingularSystem = errors.New("soc: singular reduced system")

	// ErrRowNotStochastic signals the internal row-sum self-check failed
	// while building the transition matrix. It indicates a bug upstream of
	// the solver, not bad user input.
	ErrRowNotStochastic = errors.New("soc: transition row does not sum to 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("soc: invalid option supplied")
)

// stochTol is the tolerance for the row-stochasticity self-check.
const stochTol = 1e-9

// defaultVarEps is the magnitude below which a return-time variance is
// clamped to zero; it absorbs floating-point cancellation in σ² = E[T²]-μ².
const defaultVarEps = 1e-9

// defaultWorkers keeps the solve single-threaded unless the caller opts in;
// results are identical for any worker count.
const defaultWorkers = 1

// ReturnTime holds the per-node return-time statistics of the perpetual
// walk: the mean and the standard deviation (the SOC value).
type ReturnTime struct {
	// Mean is E[T_i], the expected number of steps between visits to i.
	Mean float64

	// StdDev is sqrt(Var[T_i]) — the node's second order centrality.
	StdDev float64
}

// Option configures SOC computation via functional arguments. An invalid
// Option (e.g. non-positive worker count) is recorded internally and
// surfaced as ErrOptionViolation when the computation is invoked.
type Option func(*Options)

// Options holds parameters to customize SOC execution.
type Options struct {
	// Workers is the number of goroutines solving per-target systems.
	// Each worker writes to disjoint output columns, so any value yields
	// bit-identical results.
	Workers int

	// VarEps is the variance clamping tolerance (see defaultVarEps).
	VarEps float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with deterministic defaults:
// single worker, variance clamp 1e-9.
func DefaultOptions() Options {
	return Options{
		Workers: defaultWorkers,
		VarEps:  defaultVarEps,
		err:     nil,
	}
}

// WithWorkers sets the number of concurrent per-target solvers.
//
//	k > 0: use k workers
//	k <= 0: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithVarEps overrides the variance clamping tolerance.
//
//	eps >= 0: clamp |σ²| < eps to zero
//	eps < 0: invalid option → ErrOptionViolation
func WithVarEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: VarEps cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.VarEps = eps
	}
}
