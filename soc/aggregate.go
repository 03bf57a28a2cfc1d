// SPDX-License-Identifier: MIT
// Package soc: return-time aggregation.
//
// Return time T_i is the number of steps for the walk to leave i and come
// back. First-step conditioning over i's transitions gives:
//
//	E[T_i]  = Σ_j P[i][j]·(1 + H[j][i])
//	E[T_i²] = Σ_j P[i][j]·(1 + 2·H[j][i] + M2[j][i])
//	Var[T_i] = E[T_i²] - E[T_i]²
//
// Tiny negative variances from floating-point cancellation are clamped to
// zero before the square root; a negative value must never propagate into
// a domain error.

package soc

import (
	"math"

	"github.com/dkoverta/socwalk/matrix"
)

// returnTimeStats combines hitting-time moments into per-node return-time
// mean and standard deviation. eps is the variance clamping tolerance.
//
// Complexity: Time O(n²), Space O(n).
func returnTimeStats(p *matrix.Dense, hCols, m2Cols [][]float64, eps float64) (means, sigmas []float64, err error) {
	n := p.Rows()
	means = make([]float64, n)
	sigmas = make([]float64, n)

	var (
		i, j         int
		row          []float64 // read-only view of P row i
		pij          float64
		mean, second float64
		variance     float64
	)
	for i = 0; i < n; i++ {
		if row, err = p.Row(i); err != nil {
			return nil, nil, err
		}

		mean, second = 0, 0
		for j = 0; j < n; j++ {
			pij = row[j]
			if pij == 0 {
				continue // absent transition contributes nothing
			}
			mean += pij * (1.0 + hCols[i][j])
			second += pij * (1.0 + 2.0*hCols[i][j] + m2Cols[i][j])
		}

		variance = second - mean*mean
		if math.Abs(variance) < eps {
			variance = 0 // cancellation artifact, not a real signal
		}
		if variance < 0 {
			variance = 0
		}

		means[i] = mean
		sigmas[i] = math.Sqrt(variance)
	}

	return means, sigmas, nil
}
