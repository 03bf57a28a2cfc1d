// Package core defines the weighted undirected Graph used across socwalk,
// and provides thread-safe primitives for building and querying it.
//
// The model is deliberately small: string vertex IDs, float64 edge weights,
// symmetric storage (an edge always appears from both endpoints), no
// parallel edges (re-adding an edge overwrites its weight) and optional
// self-loops behind the WithLoops option.
//
// All read accessors return deterministic results: vertex and neighbor IDs
// are sorted lexicographically ascending, so algorithms layered on top of
// core can rely on a stable iteration order.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeWeight - edge weight below zero.
//	ErrNonFiniteWeight - edge weight is NaN or ±Inf.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core
