// SPDX-License-Identifier: MIT
// Package matrix: linear-solve kernels (MatVec, LU, triangular solves).
//
// Purpose:
//   - Declare the canonical kernels used by the socwalk hitting-time solver.
//   - Keep every loop order fixed so identical inputs yield identical bits.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via
//     matrixErrorf at the facade; inner helpers return plain sentinels.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution loops.
const ZeroSum = 0.0

// pivotTol is the magnitude below which an LU pivot is treated as zero.
// Doolittle without pivoting keeps determinism; this guard keeps it honest.
const pivotTol = 1e-12

// Operation name constants for unified error wrapping.
const (
	opMatVec  = "MatVec"
	opLU      = "LU"
	opLUSolve = "LUSolve"
	opSolve   = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep working. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; zero x[j] entries are skipped.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	// Validate m and the vector length against the column count.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r) // allocate exactly rows outputs

	var i, j, base int // indices and row base offset
	var acc, xv float64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = ZeroSum            // reset accumulator per row
		base = i * m.c           // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L,
// without pivoting.
//
// Contract:
//   - m non-nil and square.
//   - Returns ErrSingular when a pivot magnitude falls below pivotTol.
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L; no data-dependent reordering.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No pivoting is intentional: the socwalk systems are diagonally
//     dominant M-matrices, for which Doolittle pivots stay away from zero.
//     Stability-sensitive callers with arbitrary inputs should precondition
//     upstream.
func LU(m *Dense) (l, u *Dense, err error) {
	// Validate input non-nil and square.
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U.
	n := m.r
	if l, err = NewDense(n, n); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	var i, j, k int // loop iterators
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	// Doolittle decomposition over the flat slices.
	var sum, pivot float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		baseI = i * n

		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Tiny-pivot guard (deterministic singularity detection).
		pivot = u.data[baseI+i]
		if math.Abs(pivot) <= pivotTol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// LUSolve solves A*x = b given the Doolittle factors L and U of A, via
// forward substitution (L*y = b) then backward substitution (U*x = y).
//
// Contract:
//   - l, u non-nil, square, same order n; len(b) == n.
//   - Returns ErrSingular when a diagonal of U falls below pivotTol.
//
// Determinism: forward i↑ then backward i↓, fixed inner orders.
// Complexity: Time O(n²), Space O(n).
func LUSolve(l, u *Dense, b []float64) ([]float64, error) {
	// Validate factor shapes and the right-hand side.
	if err := ValidateNotNil(l); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if err := ValidateSquare(u); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	n := l.r
	if u.r != n {
		return nil, matrixErrorf(opLUSolve, validatorErrorf("factors", ErrDimensionMismatch))
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	var (
		i, k  int // loop iterators
		base  int // row base offset
		sum   float64
		pivot float64
		y     = make([]float64, n) // forward substitution workspace
		x     = make([]float64, n) // backward substitution result
	)

	// Forward substitution: L*y = b (unit diagonal on L).
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		pivot = u.data[base+i]
		if math.Abs(pivot) <= pivotTol {
			return nil, matrixErrorf(opLUSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// Solve solves A*x = b directly (one-shot LU + triangular solves).
//
// Prefer LU + repeated LUSolve when the same A serves several right-hand
// sides; the socwalk solver does exactly that per target node.
// Complexity: Time O(n³), Space O(n²).
func Solve(a *Dense, b []float64) ([]float64, error) {
	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := LUSolve(l, u, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
