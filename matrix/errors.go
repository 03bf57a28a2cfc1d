// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// This file defines ONLY package-level sentinel errors. All kernels return
// these sentinels (optionally wrapped with %w for context) and callers
// branch via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length does not match the matrix columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero or numerically tiny pivot is
	// encountered during LU factorization in the non-pivoting scheme.
	ErrSingular = errors.New("matrix: singular matrix")
)
