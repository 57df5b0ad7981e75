// SPDX-License-Identifier: MIT

// Package matrix - structural predicates and tolerance equality.
//
// Structural predicates compare exactly against 0 and 1. Equal compares
// within a tolerance; the exactness of IsIdentity is what lets Inverse
// detect a failed reduction.

package matrix

// IsZero reports whether every entry is 0. An empty matrix is zero.
func (m *Matrix) IsZero() bool { return !m.IsInitialized() || isZeroFlat(m.data) }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// IsRowVector reports a single-row matrix.
func (m *Matrix) IsRowVector() bool { return m.Rows() == 1 }

// IsColumnVector reports a single-column matrix.
func (m *Matrix) IsColumnVector() bool { return m.Cols() == 1 }

// CanMultiply reports whether m×o is defined (m.Cols() == o.Rows()).
func (m *Matrix) CanMultiply(o *Matrix) bool {
	return ValidateMulCompatible(m, o) == nil
}

// IsDiagonal reports a square matrix whose off-diagonal entries are all 0
// and that is not the zero matrix.
func (m *Matrix) IsDiagonal() bool {
	return m.IsInitialized() && isDiagonalFlat(m.data, m.r, m.c)
}

// IsIdentity reports a square matrix with exact 1 on the diagonal and exact 0
// elsewhere.
func (m *Matrix) IsIdentity() bool {
	return m.IsInitialized() && isIdentityFlat(m.data, m.r, m.c)
}

// IsSymmetric reports a square matrix equal to its transpose (exact).
func (m *Matrix) IsSymmetric() bool {
	return m.IsInitialized() && isSymmetricFlat(m.data, m.r, m.c)
}

// IsUpperTriangular reports that every entry below the diagonal is 0.
func (m *Matrix) IsUpperTriangular() bool {
	return m.IsInitialized() && isUpperFlat(m.data, m.r, m.c)
}

// IsLowerTriangular reports that every entry above the diagonal is 0.
func (m *Matrix) IsLowerTriangular() bool {
	return m.IsInitialized() && isLowerFlat(m.data, m.r, m.c)
}

// Equal reports same shape and every entry pair within the matrix's epsilon
// (DefaultEpsilon unless configured with WithEpsilon).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil {
		return false
	}

	return m.EqualWithin(o, m.options().eps)
}

// EqualWithin is Equal with an explicit per-entry tolerance.
func (m *Matrix) EqualWithin(o *Matrix, eps float32) bool {
	if m == nil || o == nil || m.r != o.r || m.c != o.c {
		return false
	}

	return equalFlat(m.data, o.data, eps)
}

// AllClose compares any two matrices entry by entry within eps, so a
// Matrix4x4 can be checked against a generic Matrix.
// MAIN DESCRIPTION:
//   - Shape check, then a fast path on flat storage when both are *Matrix,
//     otherwise a generic Get-based scan.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Shaped, eps float32) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if da, ok := a.(*Matrix); ok {
		if db, ok2 := b.(*Matrix); ok2 {
			return equalFlat(da.data, db.data, eps), nil
		}
	}

	var (
		i, j int
		r, c = a.Rows(), a.Cols()
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !within(a.Get(i, j), b.Get(i, j), eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ---------- flat-buffer predicates shared with Matrix2x2 / Matrix4x4 ----------

func isZeroFlat(a []float32) bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}

	return true
}

func isIdentityFlat(a []float32, rows, cols int) bool {
	if rows != cols {
		return false
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if i == j {
				if a[i*cols+j] != 1 {
					return false
				}
			} else if a[i*cols+j] != 0 {
				return false
			}
		}
	}

	return true
}

func isDiagonalFlat(a []float32, rows, cols int) bool {
	if rows != cols || isZeroFlat(a) {
		return false
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if i != j && a[i*cols+j] != 0 {
				return false
			}
		}
	}

	return true
}

func isSymmetricFlat(a []float32, rows, cols int) bool {
	if rows != cols {
		return false
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = i + 1; j < cols; j++ {
			if a[i*cols+j] != a[j*cols+i] {
				return false
			}
		}
	}

	return true
}

// isUpperFlat checks a[i,j] == 0 for j < i.
func isUpperFlat(a []float32, rows, cols int) bool {
	var i, j int
	for i = 1; i < rows; i++ {
		for j = 0; j < i && j < cols; j++ {
			if a[i*cols+j] != 0 {
				return false
			}
		}
	}

	return true
}

// isLowerFlat checks a[i,j] == 0 for j > i.
func isLowerFlat(a []float32, rows, cols int) bool {
	var i, j int
	for i = 0; i < rows; i++ {
		for j = i + 1; j < cols; j++ {
			if a[i*cols+j] != 0 {
				return false
			}
		}
	}

	return true
}

// equalFlat compares equal-length buffers entry by entry within eps.
func equalFlat(a, b []float32, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if !within(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// within reports |a-b| <= eps. Equal infinities compare equal; NaN never does.
func within(a, b, eps float32) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= eps
}
