// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvmath/vector"
)

const size4 = 4

// Matrix4x4 is a 4×4 float32 matrix stored row-major in a [16]float32, the
// same layout as f32.Mat4. The zero value is the zero matrix.
//
// It shares every kernel with the generic Matrix; like Matrix2x2 it carries
// no Options.
type Matrix4x4 struct {
	m [size4 * size4]float32
}

// NewMatrix4x4 builds a matrix from its 16 entries in row-major order.
func NewMatrix4x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) *Matrix4x4 {
	return &Matrix4x4{m: [16]float32{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

// Identity4x4 returns the 4×4 identity.
func Identity4x4() *Matrix4x4 {
	m := new(Matrix4x4)
	setIdentity(m.m[:], size4)

	return m
}

// NewMatrix4x4FromRows builds a matrix whose rows are r0..r3.
func NewMatrix4x4FromRows(r0, r1, r2, r3 *vector.Vec4) *Matrix4x4 {
	return new(Matrix4x4).SetRows(r0, r1, r2, r3)
}

// NewMatrix4x4FromSlice builds a matrix from 16 row-major values.
func NewMatrix4x4FromSlice(data []float32) (*Matrix4x4, error) {
	m := new(Matrix4x4)
	if err := m.SetSlice(data); err != nil {
		return nil, err
	}

	return m, nil
}

// Matrix4x4FromMat4 copies an f32.Mat4 (both are row-major).
func Matrix4x4FromMat4(a f32.Mat4) *Matrix4x4 {
	return &Matrix4x4{m: a}
}

// Matrix4x4FromMatrix copies a 4×4 generic matrix (ErrDimensionMismatch otherwise).
func Matrix4x4FromMatrix(src *Matrix) (*Matrix4x4, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	if !src.IsInitialized() || src.r != size4 || src.c != size4 {
		return nil, matrixErrorf(opFromMatrix, ErrDimensionMismatch)
	}
	m := new(Matrix4x4)
	copy(m.m[:], src.data)

	return m, nil
}

// Mat4 returns the entries as an f32.Mat4.
func (m *Matrix4x4) Mat4() f32.Mat4 { return f32.Mat4(m.m) }

// Matrix returns a generic copy of m with default options.
func (m *Matrix4x4) Matrix() *Matrix {
	out, _ := New(size4, size4)
	copy(out.data, m.m[:])

	return out
}

// Rows returns 4.
func (m *Matrix4x4) Rows() int { return size4 }

// Cols returns 4.
func (m *Matrix4x4) Cols() int { return size4 }

// Get returns the entry at (i, j), or 0 out of range.
func (m *Matrix4x4) Get(i, j int) float32 {
	if i < 0 || i >= size4 || j < 0 || j >= size4 {
		return 0
	}

	return m.m[i*size4+j]
}

// Set stores v at (i, j); out-of-range indices are ignored.
func (m *Matrix4x4) Set(i, j int, v float32) *Matrix4x4 {
	if i >= 0 && i < size4 && j >= 0 && j < size4 {
		m.m[i*size4+j] = v
	}

	return m
}

// SetMatrix copies every entry of o into m.
func (m *Matrix4x4) SetMatrix(o *Matrix4x4) *Matrix4x4 {
	m.m = o.m

	return m
}

// SetRows overwrites the rows of m.
func (m *Matrix4x4) SetRows(r0, r1, r2, r3 *vector.Vec4) *Matrix4x4 {
	for i, r := range [size4]*vector.Vec4{r0, r1, r2, r3} {
		m.m[i*size4+0] = r.X
		m.m[i*size4+1] = r.Y
		m.m[i*size4+2] = r.Z
		m.m[i*size4+3] = r.W
	}

	return m
}

// SetSlice loads 16 row-major values; m is unchanged on ErrBadShape.
func (m *Matrix4x4) SetSlice(data []float32) error {
	if len(data) != len(m.m) {
		return matrixErrorf(opSetData, ErrBadShape)
	}
	copy(m.m[:], data)

	return nil
}

// Row returns row i as a new vector, or nil when i is out of range.
func (m *Matrix4x4) Row(i int) *vector.Vec4 {
	if i < 0 || i >= size4 {
		return nil
	}
	o := i * size4

	return vector.NewVec4(m.m[o], m.m[o+1], m.m[o+2], m.m[o+3])
}

// Data returns a row-major copy of the entries.
func (m *Matrix4x4) Data() []float32 { return append([]float32(nil), m.m[:]...) }

// ClearTo sets every entry to v.
func (m *Matrix4x4) ClearTo(v float32) *Matrix4x4 {
	for i := range m.m {
		m.m[i] = v
	}

	return m
}

// Clone returns an independent copy.
func (m *Matrix4x4) Clone() *Matrix4x4 {
	cp := *m

	return &cp
}

// Transpose swaps m in place.
func (m *Matrix4x4) Transpose() *Matrix4x4 {
	transposeSquare(m.m[:], size4)

	return m
}

// Add adds o element-wise.
func (m *Matrix4x4) Add(o *Matrix4x4) *Matrix4x4 {
	addFlat(m.m[:], o.m[:], 1)

	return m
}

// Subtract subtracts o element-wise.
func (m *Matrix4x4) Subtract(o *Matrix4x4) *Matrix4x4 {
	addFlat(m.m[:], o.m[:], -1)

	return m
}

// Scale multiplies every entry by k.
func (m *Matrix4x4) Scale(k float32) *Matrix4x4 {
	scaleFlat(m.m[:], k)

	return m
}

// Multiply replaces m with m×o, snapping near-integer entries.
// o may be m itself.
func (m *Matrix4x4) Multiply(o *Matrix4x4) *Matrix4x4 {
	var out [16]float32
	mulFlat(out[:], m.m[:], size4, size4, o.m[:], size4)
	m.m = out

	return m
}

// MultiplyVec returns the column product m×v as a new vector; m is unchanged.
func (m *Matrix4x4) MultiplyVec(v *vector.Vec4) *vector.Vec4 {
	var out [4]float32
	mulFlat(out[:], m.m[:], size4, size4, []float32{v.X, v.Y, v.Z, v.W}, 1)

	return vector.NewVec4(out[0], out[1], out[2], out[3])
}

// Power replaces m with m^n; n <= 0 is a no-op.
func (m *Matrix4x4) Power(n int) *Matrix4x4 {
	if n <= 0 {
		return m
	}
	base := *m
	for i := 1; i < n; i++ {
		m.Multiply(&base)
	}

	return m
}

// Solve reduces m in place against the right-hand side (x, y, z, w) and
// returns the reduced right-hand side.
func (m *Matrix4x4) Solve(x, y, z, w float32) *vector.Vec4 {
	aug := [4]float32{x, y, z, w}
	eliminate(m.m[:], size4, size4, aug[:], 1)

	return vector.NewVec4(aug[0], aug[1], aug[2], aug[3])
}

// Inverse replaces m with its inverse; a singular m is left unchanged.
func (m *Matrix4x4) Inverse() *Matrix4x4 {
	_ = m.TryInverse()

	return m
}

// TryInverse is Inverse returning ErrSingular when no inverse was produced.
func (m *Matrix4x4) TryInverse() error {
	if !invertFlat(m.m[:], size4) {
		return matrixErrorf(opInverse, ErrSingular)
	}

	return nil
}

func (m *Matrix4x4) IsZero() bool            { return isZeroFlat(m.m[:]) }
func (m *Matrix4x4) IsDiagonal() bool        { return isDiagonalFlat(m.m[:], size4, size4) }
func (m *Matrix4x4) IsIdentity() bool        { return isIdentityFlat(m.m[:], size4, size4) }
func (m *Matrix4x4) IsSymmetric() bool       { return isSymmetricFlat(m.m[:], size4, size4) }
func (m *Matrix4x4) IsUpperTriangular() bool { return isUpperFlat(m.m[:], size4, size4) }
func (m *Matrix4x4) IsLowerTriangular() bool { return isLowerFlat(m.m[:], size4, size4) }

// Equal reports every entry pair within DefaultEpsilon.
func (m *Matrix4x4) Equal(o *Matrix4x4) bool {
	return o != nil && equalFlat(m.m[:], o.m[:], DefaultEpsilon)
}

// String renders four rows of four space-separated entries, each ending in "\n".
func (m *Matrix4x4) String() string { return formatFlat(m.m[:], size4, size4) }
