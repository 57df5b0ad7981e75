// SPDX-License-Identifier: MIT

// Package matrix - element-wise algebra, product, power and transpose.
//
// Contracts:
//   - The unchecked methods (Add, Subtract, Multiply, Power) never fail: on
//     a shape problem they leave the receiver untouched.
//   - The Try* twins perform the same work and report why nothing happened.
//   - Loops run in fixed i→j(→k) order for reproducible float32 results.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/compute"
)

// Add adds o element-wise into m. Shape mismatch or nil o is a silent no-op.
func (m *Matrix) Add(o *Matrix) *Matrix {
	_ = m.TryAdd(o)

	return m
}

// TryAdd is Add with error reporting (ErrNilMatrix, ErrDimensionMismatch).
func (m *Matrix) TryAdd(o *Matrix) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return matrixErrorf(opAdd, err)
	}
	addFlat(m.data, o.data, 1)

	return nil
}

// Subtract subtracts o element-wise from m. Shape mismatch is a silent no-op.
func (m *Matrix) Subtract(o *Matrix) *Matrix {
	_ = m.TrySubtract(o)

	return m
}

// TrySubtract is Subtract with error reporting.
func (m *Matrix) TrySubtract(o *Matrix) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return matrixErrorf(opSubtract, err)
	}
	addFlat(m.data, o.data, -1)

	return nil
}

// Scale multiplies every entry by k.
func (m *Matrix) Scale(k float32) *Matrix {
	if m.IsInitialized() {
		scaleFlat(m.data, k)
	}

	return m
}

// Multiply replaces m with the product m×o.
// MAIN DESCRIPTION:
//   - Dense O(r·n·c) product with snap-to-integer correction per entry.
//
// Behavior highlights:
//   - On mismatch (m.Cols() != o.Rows(), or nil o) the receiver is left
//     unchanged and a copy of it is returned, so a chain continues on a
//     detached value.
//   - Each accumulated dot product goes through snapToInteger.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c) for the result buffer.
func (m *Matrix) Multiply(o *Matrix) *Matrix {
	if err := m.TryMultiply(o); err != nil {
		return m.Clone()
	}

	return m
}

// TryMultiply is Multiply with error reporting; the receiver is unchanged on error.
func (m *Matrix) TryMultiply(o *Matrix) error {
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	out := make([]float32, m.r*o.c)
	mulFlat(out, m.data, m.r, m.c, o.data, o.c)
	m.c = o.c
	m.data = out

	return nil
}

// Power replaces m with m^n by multiplying with the original n-1 times.
// n <= 0 or a non-square m is a no-op; Power(1) leaves m as is.
func (m *Matrix) Power(n int) *Matrix {
	_ = m.TryPower(n)

	return m
}

// TryPower is Power with error reporting (ErrNonSquare, ErrBadExponent).
func (m *Matrix) TryPower(n int) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opPower, err)
	}
	if n <= 0 {
		return matrixErrorf(opPower, ErrBadExponent)
	}
	base := m.Clone()
	var i int
	for i = 1; i < n; i++ {
		if err := m.TryMultiply(base); err != nil {
			return matrixErrorf(opPower, err)
		}
	}

	return nil
}

// Transpose swaps rows and columns. Square matrices are transposed in place;
// rectangular ones get a fresh buffer.
func (m *Matrix) Transpose() *Matrix {
	if !m.IsInitialized() {
		return m
	}
	if m.r == m.c {
		transposeSquare(m.data, m.r)

		return m
	}
	out := make([]float32, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	m.r, m.c = m.c, m.r
	m.data = out

	return m
}

// ---------- flat-buffer kernels shared with Matrix2x2 / Matrix4x4 ----------

// addFlat computes a += sign*b element-wise (len(a) == len(b)).
func addFlat(a, b []float32, sign float32) {
	var i int
	for i = range a {
		a[i] += sign * b[i]
	}
}

// scaleFlat computes a *= k.
func scaleFlat(a []float32, k float32) {
	var i int
	for i = range a {
		a[i] *= k
	}
}

// transposeSquare transposes an n×n buffer in place.
func transposeSquare(a []float32, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a[i*n+j], a[j*n+i] = a[j*n+i], a[i*n+j]
		}
	}
}

// mulFlat writes the product of a (ar×ac) and b (ac×bc) into dst (ar×bc).
// dst must not alias a or b.
//
// Implementation:
//   - Stage 1: for each (i, k) accumulate Σ_j a[i,j]*b[j,k] in float32,
//     j ascending.
//   - Stage 2: pass the sum through snapToInteger before storing.
//
// Complexity:
//   - Time O(ar·ac·bc), Space O(1) beyond dst.
func mulFlat(dst, a []float32, ar, ac int, b []float32, bc int) {
	var (
		i, j, k int
		sum     float32
	)
	for i = 0; i < ar; i++ {
		for k = 0; k < bc; k++ {
			sum = 0
			for j = 0; j < ac; j++ {
				sum += a[i*ac+j] * b[j*bc+k]
			}
			dst[i*bc+k] = snapToInteger(sum)
		}
	}
}

// snapToInteger rounds sum to the nearest integer when its fractional part
// is within compute.Epsilon of 0 or 1, hiding float32 drift such as
// 2.9999981 → 3. The window is fixed and independent of Options.
// NaN and ±Inf pass through unchanged.
func snapToInteger(sum float32) float32 {
	abs := math.Abs(float64(sum))
	frac := float32(abs - math.Trunc(abs))
	if frac <= compute.Epsilon || frac+compute.Epsilon >= 1 {
		return float32(math.Floor(float64(sum) + 0.5))
	}

	return sum
}
