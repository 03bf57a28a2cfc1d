// SPDX-License-Identifier: MIT
// Package soc: per-target hitting-time moment solves.
//
// For target t the walk conditioned on "not yet reached t" is governed by
// P_t, the transition matrix with row and column t removed; it is
// transient, so A = I - P_t is invertible and:
//
//	A·h = 1                 h[j] = E[steps j→t]            (first moment)
//	A·m = 1 + 2·P_t·h       m[j] = E[(steps j→t)²]         (second moment)
//
// The second right-hand side comes from conditioning the hitting time on
// the first step (T = 1 + T' with probability P[j][k]) and folding the
// k = t contribution into the constant term via h[t] = m[t] = 0.
//
// Each reduced system is factorized once (Doolittle LU) and the factors
// serve both solves. Targets are independent: the fan-out distributes them
// across workers, each writing only to its own output columns, so the
// result is identical for any worker count.

package soc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dkoverta/socwalk/matrix"
)

// solveTarget computes the hitting-time moment vectors toward target t.
// The returned slices have full length n with h[t] = m2[t] = 0 by
// convention; entry j holds the moment of the hitting time from j to t.
//
// Errors:
//   - ErrSingularSystem: the reduced system failed to factorize or solve.
//
// Complexity: Time O(n³) (one LU + two triangular solves), Space O(n²).
func solveTarget(p *matrix.Dense, t int) (h, m2 []float64, err error) {
	n := p.Rows()
	r := n - 1 // reduced order; caller guarantees n ≥ 2

	// Assemble A = I - P_t over the non-target indices. Full index j maps
	// to reduced index j for j < t and j-1 for j > t (fixed, order-preserving).
	a, err := matrix.NewDense(r, r)
	if err != nil {
		return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
	}

	var (
		j, k   int       // full indices
		ri, ci int       // reduced indices
		row    []float64 // read-only view of P row j
		v      float64
	)
	ri = 0
	for j = 0; j < n; j++ {
		if j == t {
			continue
		}
		if row, err = p.Row(j); err != nil {
			return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
		}
		ci = 0
		for k = 0; k < n; k++ {
			if k == t {
				continue
			}
			v = -row[k]
			if ri == ci {
				v += 1.0
			}
			if err = a.Set(ri, ci, v); err != nil {
				return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
			}
			ci++
		}
		ri++
	}

	// Factorize once; both moment systems share the factors.
	l, u, err := matrix.LU(a)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, ErrSingularSystem)
		}
		return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
	}

	// First moment: A·h = 1.
	ones := make([]float64, r)
	for j = 0; j < r; j++ {
		ones[j] = 1.0
	}
	hr, err := matrix.LUSolve(l, u, ones)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, ErrSingularSystem)
		}
		return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
	}

	// Second moment rhs: c = 1 + 2·P_t·h, computed as P_t·h = h - A·h to
	// avoid materializing P_t alongside A.
	ah, err := matrix.MatVec(a, hr)
	if err != nil {
		return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
	}
	c := make([]float64, r)
	for j = 0; j < r; j++ {
		c[j] = 1.0 + 2.0*(hr[j]-ah[j])
	}
	mr, err := matrix.LUSolve(l, u, c)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, ErrSingularSystem)
		}
		return nil, nil, fmt.Errorf("solveTarget(t=%d): %w", t, err)
	}

	// Expand to full length with zeros at the target slot.
	h = make([]float64, n)
	m2 = make([]float64, n)
	ri = 0
	for j = 0; j < n; j++ {
		if j == t {
			continue // h[t] = m2[t] = 0 by convention
		}
		h[j] = hr[ri]
		m2[j] = mr[ri]
		ri++
	}

	return h, m2, nil
}

// hittingMoments computes the moment columns for every target node,
// fanning targets out across the given number of workers. hCols[t][j] is
// E[steps j→t]; m2Cols[t][j] is the corresponding second moment.
//
// Workers share the read-only P and write to disjoint slots of the output
// slices, so no synchronization beyond the final join is required; the
// first solver error wins and the partial output is discarded.
//
// Complexity: Time O(n⁴) total work, Space O(n²) peak per worker.
func hittingMoments(p *matrix.Dense, workers int) (hCols, m2Cols [][]float64, err error) {
	n := p.Rows()
	hCols = make([][]float64, n)
	m2Cols = make([][]float64, n)

	if workers > n {
		workers = n
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex // guards firstErr only
		firstErr error
	)
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				h, m2, serr := solveTarget(p, t)
				if serr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = serr
					}
					mu.Unlock()
					continue
				}
				// Disjoint slot per target; no lock needed.
				hCols[t] = h
				m2Cols[t] = m2
			}
		}()
	}

	// Feed targets in ascending order and join.
	for t := 0; t < n; t++ {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}

	return hCols, m2Cols, nil
}
