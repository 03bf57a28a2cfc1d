// SPDX-License-Identifier: MIT
// Package core: mutation and query methods for Graph.
//
// Determinism:
//   - VertexIDs() returns IDs sorted lex asc.
//   - NeighborIDs(id) returns unique IDs sorted lex asc (includes id itself
//     when a self-loop exists).
//
// Concurrency:
//   - Mutators hold the write lock; accessors hold the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a vertex with the given ID. Re-adding an existing
// vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil // idempotent
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string]float64)

	return nil
}

// AddEdge records the undirected edge {u,v} with weight w, inserting
// missing endpoints implicitly. Re-adding an existing edge overwrites its
// weight (no parallel edges). A self-loop (u == v) requires WithLoops and
// is stored once.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrNegativeWeight: if w < 0.
//   - ErrNonFiniteWeight: if w is NaN or ±Inf.
//   - ErrLoopNotAllowed: if u == v and loops are disabled.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, w float64) error {
	// Validate IDs and weight before touching state (fail fast, no partial work).
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrNonFiniteWeight)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrNegativeWeight)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoints exist.
	for _, id := range [2]string{u, v} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = struct{}{}
			g.adj[id] = make(map[string]float64)
		}
	}

	// Symmetric storage; a loop is written once.
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VertexIDs returns all vertex IDs sorted lexicographically ascending.
// The returned slice is independent of internal state.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	// Sort to ensure reproducible ordering.
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically
// ascending. A self-loop makes id its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Weight returns the weight of the edge {u,v}, or 0 when the edge is
// absent (absence of an edge implies weight 0 by contract).
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrVertexNotFound: if u or v does not exist.
//
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	if u == "" || v == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[u]; !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", u, v, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", u, v, ErrVertexNotFound)
	}

	return g.adj[u][v], nil
}

// StrengthOf returns the total incident weight of id: Σ_v w(id,v), with a
// self-loop counted once. This is the normalization mass of the unbiased
// random walk leaving id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d).
func (g *Graph) StrengthOf(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("StrengthOf(%s): %w", id, ErrVertexNotFound)
	}

	var total float64
	for _, w := range g.adj[id] {
		total += w
	}

	return total, nil
}
