// SPDX-License-Identifier: MIT

package soc

// Test-Bridge (White-Box) for Private Pipeline Stages
//
// Purpose:
//   - Expose the unexported pipeline stages to soc_test ONLY, so the
//     hitting-time math can be verified against closed forms without
//     widening the production API.
//
// Behavior & Determinism:
//   - Thin pass-through aliases; no side effects, no extra allocations.

var (
	// ExportedNewIndexMap exposes newIndexMap for white-box tests.
	ExportedNewIndexMap = newIndexMap
	// ExportedBuildTransition exposes buildTransition for white-box tests.
	ExportedBuildTransition = buildTransition
	// ExportedValidateGraph exposes validateGraph for white-box tests.
	ExportedValidateGraph = validateGraph
	// ExportedSolveTarget exposes solveTarget for white-box tests.
	ExportedSolveTarget = solveTarget
	// ExportedHittingMoments exposes hittingMoments for white-box tests.
	ExportedHittingMoments = hittingMoments
)

// IndexIDs returns the ordered ID slice of an index map (test-only view).
func (m indexMap) IndexIDs() []string { return m.ids }
