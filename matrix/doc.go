// Package matrix provides the dense linear-algebra primitives behind the
// socwalk hitting-time solver: a row-major float64 Dense matrix, Doolittle
// LU factorization without pivoting, triangular solves, and matrix-vector
// products.
//
// The kernels are deliberately deterministic: fixed loop orders, no
// pivoting, no data-dependent branching beyond zero-skips. For the systems
// socwalk solves — I minus a substochastic transition block of a connected
// walk — the matrix is diagonally dominant, so the no-pivot factorization
// is numerically safe; a tiny pivot still surfaces as ErrSingular rather
// than propagating garbage.
//
// All functions perform strict fail-fast validation and return sentinel
// errors on dimension mismatches; nothing in this package panics on
// user-triggered conditions.
package matrix
