// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// numeric package. All kernels return these sentinels (optionally wrapped
// with an operation tag via %w) and tests match them with errors.Is.
// No kernel panics on caller-triggered conditions.

package numeric

import "errors"

// Every message is prefixed with "numeric: ..." for consistency and easy
// grepping. Kernels wrap with fmt.Errorf("Op: %w", ErrX) at their boundary;
// callers still match via errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or ragged input rows).
	ErrBadShape = errors.New("numeric: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("numeric: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. VecMat where len(v) != m.Rows().
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("numeric: nil matrix")

	// ErrDegenerateSum is returned by NormalizeSum when the vector's sum is
	// zero, NaN or ±Inf, so that a degenerate renormalization is reported
	// to the caller rather than silently producing non-finite values.
	ErrDegenerateSum = errors.New("numeric: degenerate sum in normalization")
)
