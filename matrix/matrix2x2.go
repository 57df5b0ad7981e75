// SPDX-License-Identifier: MIT

// Package matrix - fixed-size 2×2 matrix.
//
// Matrix2x2 keeps its entries in a [4]float32 array (row-major) and reuses the
// flat-buffer kernels of the generic Matrix, so Solve, Inverse and Multiply
// behave identically on both. Fixed-size matrices carry no Options: Equal
// uses DefaultEpsilon and Set stores any value.

package matrix

import (
	"github.com/katalvlaran/lvmath/vector"
)

const size2 = 2

// Matrix2x2 is a 2×2 float32 matrix. The zero value is the zero matrix.
type Matrix2x2 struct {
	m [size2 * size2]float32
}

// NewMatrix2x2 builds a matrix from its entries in row-major order.
func NewMatrix2x2(m00, m01, m10, m11 float32) *Matrix2x2 {
	return &Matrix2x2{m: [4]float32{m00, m01, m10, m11}}
}

// Identity2x2 returns the 2×2 identity.
func Identity2x2() *Matrix2x2 { return NewMatrix2x2(1, 0, 0, 1) }

// NewMatrix2x2FromRows builds a matrix whose rows are r0 and r1.
func NewMatrix2x2FromRows(r0, r1 *vector.Vec2) *Matrix2x2 {
	return new(Matrix2x2).SetRows(r0, r1)
}

// NewMatrix2x2FromSlice builds a matrix from 4 row-major values (ErrBadShape otherwise).
func NewMatrix2x2FromSlice(data []float32) (*Matrix2x2, error) {
	m := new(Matrix2x2)
	if err := m.SetSlice(data); err != nil {
		return nil, err
	}

	return m, nil
}

// Matrix2x2FromMatrix copies a 2×2 generic matrix (ErrDimensionMismatch otherwise).
func Matrix2x2FromMatrix(src *Matrix) (*Matrix2x2, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	if !src.IsInitialized() || src.r != size2 || src.c != size2 {
		return nil, matrixErrorf(opFromMatrix, ErrDimensionMismatch)
	}
	m := new(Matrix2x2)
	copy(m.m[:], src.data)

	return m, nil
}

// Matrix returns a generic copy of m with default options.
func (m *Matrix2x2) Matrix() *Matrix {
	out, _ := New(size2, size2)
	copy(out.data, m.m[:])

	return out
}

// Rows returns 2.
func (m *Matrix2x2) Rows() int { return size2 }

// Cols returns 2.
func (m *Matrix2x2) Cols() int { return size2 }

// Get returns the entry at (i, j), or 0 out of range.
func (m *Matrix2x2) Get(i, j int) float32 {
	if i < 0 || i >= size2 || j < 0 || j >= size2 {
		return 0
	}

	return m.m[i*size2+j]
}

// Set stores v at (i, j); out-of-range indices are ignored.
func (m *Matrix2x2) Set(i, j int, v float32) *Matrix2x2 {
	if i >= 0 && i < size2 && j >= 0 && j < size2 {
		m.m[i*size2+j] = v
	}

	return m
}

// SetMatrix copies every entry of o into m.
func (m *Matrix2x2) SetMatrix(o *Matrix2x2) *Matrix2x2 {
	m.m = o.m

	return m
}

// SetRows overwrites the rows of m with r0 and r1.
func (m *Matrix2x2) SetRows(r0, r1 *vector.Vec2) *Matrix2x2 {
	m.m = [4]float32{r0.X, r0.Y, r1.X, r1.Y}

	return m
}

// SetSlice loads 4 row-major values; m is unchanged on ErrBadShape.
func (m *Matrix2x2) SetSlice(data []float32) error {
	if len(data) != len(m.m) {
		return matrixErrorf(opSetData, ErrBadShape)
	}
	copy(m.m[:], data)

	return nil
}

// Row returns row i as a new vector, or nil when i is out of range.
func (m *Matrix2x2) Row(i int) *vector.Vec2 {
	if i < 0 || i >= size2 {
		return nil
	}

	return vector.NewVec2(m.m[i*size2], m.m[i*size2+1])
}

// Data returns a row-major copy of the entries.
func (m *Matrix2x2) Data() []float32 { return append([]float32(nil), m.m[:]...) }

// ClearTo sets every entry to v.
func (m *Matrix2x2) ClearTo(v float32) *Matrix2x2 {
	for i := range m.m {
		m.m[i] = v
	}

	return m
}

// Clone returns an independent copy.
func (m *Matrix2x2) Clone() *Matrix2x2 {
	cp := *m

	return &cp
}

// Transpose swaps m in place.
func (m *Matrix2x2) Transpose() *Matrix2x2 {
	transposeSquare(m.m[:], size2)

	return m
}

// Add adds o element-wise.
func (m *Matrix2x2) Add(o *Matrix2x2) *Matrix2x2 {
	addFlat(m.m[:], o.m[:], 1)

	return m
}

// Subtract subtracts o element-wise.
func (m *Matrix2x2) Subtract(o *Matrix2x2) *Matrix2x2 {
	addFlat(m.m[:], o.m[:], -1)

	return m
}

// Scale multiplies every entry by k.
func (m *Matrix2x2) Scale(k float32) *Matrix2x2 {
	scaleFlat(m.m[:], k)

	return m
}

// Multiply replaces m with m×o, snapping near-integer entries.
// o may be m itself.
func (m *Matrix2x2) Multiply(o *Matrix2x2) *Matrix2x2 {
	var out [4]float32
	mulFlat(out[:], m.m[:], size2, size2, o.m[:], size2)
	m.m = out

	return m
}

// MultiplyVec returns the column product m×v as a new vector; m is unchanged.
func (m *Matrix2x2) MultiplyVec(v *vector.Vec2) *vector.Vec2 {
	var out [2]float32
	mulFlat(out[:], m.m[:], size2, size2, []float32{v.X, v.Y}, 1)

	return vector.NewVec2(out[0], out[1])
}

// Power replaces m with m^n; n <= 0 is a no-op.
func (m *Matrix2x2) Power(n int) *Matrix2x2 {
	if n <= 0 {
		return m
	}
	base := *m
	for i := 1; i < n; i++ {
		m.Multiply(&base)
	}

	return m
}

// Solve reduces m in place against the right-hand side (x, y) and returns
// the reduced right-hand side. When m reduces to the identity the result is
// the unique solution.
func (m *Matrix2x2) Solve(x, y float32) *vector.Vec2 {
	aug := [2]float32{x, y}
	eliminate(m.m[:], size2, size2, aug[:], 1)

	return vector.NewVec2(aug[0], aug[1])
}

// Inverse replaces m with its inverse; a singular m is left unchanged.
func (m *Matrix2x2) Inverse() *Matrix2x2 {
	_ = m.TryInverse()

	return m
}

// TryInverse is Inverse returning ErrSingular when no inverse was produced.
func (m *Matrix2x2) TryInverse() error {
	if !invertFlat(m.m[:], size2) {
		return matrixErrorf(opInverse, ErrSingular)
	}

	return nil
}

// IsZero reports whether every entry is 0.
func (m *Matrix2x2) IsZero() bool { return isZeroFlat(m.m[:]) }

// IsDiagonal reports zero off-diagonal entries on a non-zero matrix.
func (m *Matrix2x2) IsDiagonal() bool { return isDiagonalFlat(m.m[:], size2, size2) }

// IsIdentity reports the exact identity.
func (m *Matrix2x2) IsIdentity() bool { return isIdentityFlat(m.m[:], size2, size2) }

// IsSymmetric reports m == transpose(m) exactly.
func (m *Matrix2x2) IsSymmetric() bool { return isSymmetricFlat(m.m[:], size2, size2) }

// IsUpperTriangular reports m[1][0] == 0.
func (m *Matrix2x2) IsUpperTriangular() bool { return isUpperFlat(m.m[:], size2, size2) }

// IsLowerTriangular reports m[0][1] == 0.
func (m *Matrix2x2) IsLowerTriangular() bool { return isLowerFlat(m.m[:], size2, size2) }

// Equal reports every entry pair within DefaultEpsilon.
func (m *Matrix2x2) Equal(o *Matrix2x2) bool {
	return o != nil && equalFlat(m.m[:], o.m[:], DefaultEpsilon)
}

// String renders "m00 m01\nm10 m11\n".
func (m *Matrix2x2) String() string { return formatFlat(m.m[:], size2, size2) }
