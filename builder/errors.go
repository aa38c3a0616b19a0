// SPDX-License-Identifier: MIT
// Package: grafo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors never panic; validation panics are confined to WithX option constructors.
//   • Endpoints that do not fit the graph surface as wrapped core.ErrOutOfRange.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the requested constructor accepts (e.g. Cycle with n < 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand) for 0 < p < 1.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not run a constructor
// (e.g. a nil Constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")
