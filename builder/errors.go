// SPDX-License-Identifier: MIT
// Package: lvlathds/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a construction could not be carried out
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid length for a generated sequence.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrUnsupported indicates an implementation that cannot provide a
// requested capability (e.g. split on a red-black tree).
var ErrUnsupported = errors.New("builder: implementation does not support the requested capability")

// ErrUnknownImpl indicates an implementation name that ParseHeapImpl or
// ParseRMQImpl does not recognize.
var ErrUnknownImpl = errors.New("builder: unknown implementation")
