// SPDX-License-Identifier: MIT
// Package core: Graph type, functional options, and sentinel errors.
//
// This file declares the Graph container, GraphOption, the sentinel error
// set, and the NewGraph constructor. Query and mutation methods live in
// methods.go per the package conventions.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNonFiniteWeight indicates an edge weight that is NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("core: non-finite edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A loop participates in transition normalization like any other edge.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory weighted undirected graph.
//
// Storage is symmetric: adj[u][v] == adj[v][u] always holds, and a
// self-loop is stored once under adj[u][u]. mu guards all maps; readers
// take the read lock, mutators the write lock.
type Graph struct {
	mu sync.RWMutex // guards vertices and adj

	// Configuration flags
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]struct{}           // vertex ID set
	adj      map[string]map[string]float64 // adj[u][v] = weight(u,v)
}

// NewGraph creates an empty Graph with the given options.
// By default loops are disallowed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]float64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
