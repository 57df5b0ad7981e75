// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Checked entry points (Try*, At, Set, constructors) return these
// sentinels, usually wrapped with call-site context, and tests match them via
// errors.Is. No method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("<Op>: %w", ErrX) (see matrixErrorf); callers still
// match with errors.Is.
//
// The unchecked surface (Add, Multiply, Inverse, Get, ...) never returns
// these errors: it keeps the silent no-op / zero-value contracts and the
// Try* twins report why nothing happened.

var (
	// ErrInvalidDimensions is returned when requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape indicates that flat input data does not hold rows*cols values.
	ErrBadShape = errors.New("matrix: data length does not match shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes or Multiply where left.Cols != right.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when elimination does not reduce a matrix to the
	// exact identity, i.e. no inverse was produced.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadExponent is returned by TryPower for exponents <= 0.
	ErrBadExponent = errors.New("matrix: exponent must be > 0")
)
