// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep the algebra minimal by delegating shape/nil checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Non-composite validators assume non-nil input unless stated otherwise.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilShaped reports whether s is nil or a typed nil pointer of a package type.
func isNilShaped(s Shaped) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Matrix:
		return v == nil
	case *Matrix2x2:
		return v == nil
	case *Matrix4x4:
		return v == nil
	default:
		return false
	}
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Typed nil pointers (e.g. (*Matrix)(nil)) are treated as nil.
// Complexity: O(1).
func ValidateNotNil(m Shaped) error {
	if isNilShaped(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks that a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix if either operand is nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if isNilShaped(a) || isNilShaped(b) {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Shaped) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Shaped) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is reported as ErrNilMatrix.
func ValidateVecLen(x []float32, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
func ValidateFinite(v float32) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateDims rejects negative dimensions.
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}
