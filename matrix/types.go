// SPDX-License-Identifier: MIT

// Package matrix: shared contract implemented by every matrix type.
package matrix

// Shaped is the read-only surface shared by *Matrix, *Matrix2x2 and
// *Matrix4x4. Validators and AllClose accept it, so a fixed-size matrix can be
// compared against a generic one without conversion.
//
// Get must never panic: out-of-range reads return 0.
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Get returns the element at (i, j), or 0 when (i, j) is out of range.
	Get(i, j int) float32
}

// Compile-time checks.
var (
	_ Shaped = (*Matrix)(nil)
	_ Shaped = (*Matrix2x2)(nil)
	_ Shaped = (*Matrix4x4)(nil)
)
