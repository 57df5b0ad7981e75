// SPDX-License-Identifier: MIT

// Package matrix - interop with golang.org/x/image/math/f32.
//
// f32.Mat3 and f32.Mat4 are row-major arrays, matching Matrix storage, so
// conversions are plain copies.

package matrix

import (
	"golang.org/x/image/math/f32"
)

// NewFromMat3 builds a 3×3 matrix from an f32.Mat3.
func NewFromMat3(a f32.Mat3, opts ...Option) (*Matrix, error) {
	return NewFromSlice(a[:], 3, 3, opts...)
}

// NewFromMat4 builds a 4×4 matrix from an f32.Mat4.
func NewFromMat4(a f32.Mat4, opts ...Option) (*Matrix, error) {
	return NewFromSlice(a[:], 4, 4, opts...)
}

// Mat3 returns m as an f32.Mat3; m must be 3×3 (ErrDimensionMismatch).
func (m *Matrix) Mat3() (f32.Mat3, error) {
	var out f32.Mat3
	if !m.IsInitialized() || m.r != 3 || m.c != 3 {
		return out, matrixErrorf(opMat3, ErrDimensionMismatch)
	}
	copy(out[:], m.data)

	return out, nil
}

// Mat4 returns m as an f32.Mat4; m must be 4×4 (ErrDimensionMismatch).
func (m *Matrix) Mat4() (f32.Mat4, error) {
	var out f32.Mat4
	if !m.IsInitialized() || m.r != 4 || m.c != 4 {
		return out, matrixErrorf(opMat4, ErrDimensionMismatch)
	}
	copy(out[:], m.data)

	return out, nil
}
