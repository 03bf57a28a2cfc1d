// SPDX-License-Identifier: MIT
// Package: socwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX); no string matching.
//   - Constructors attach context via %w wrapping; sentinels stay bare.
//   - Constructors never panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor (e.g. Cycle needs n ≥ 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor (e.g. a nil Constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")
