// SPDX-License-Identifier: MIT

package matrix

// Solve reduces m in place by Gauss-Jordan elimination and returns m.
// A matrix of shape n×(n+k) carries its own right-hand sides: after a
// successful solve the left n×n block is the identity and the trailing
// columns hold the solutions.
func (m *Matrix) Solve() *Matrix {
	if m.IsInitialized() {
		eliminate(m.data, m.r, m.c, nil, 0)
	}

	return m
}

// SolveWith reduces m in place while applying every row operation to rhs,
// and returns rhs. rhs must have as many rows as m; otherwise nothing changes.
// Whether the system had a unique solution is not checked: inspect m (it is
// the identity on success) or use TryInverse.
func (m *Matrix) SolveWith(rhs *Matrix) *Matrix {
	if !m.IsInitialized() || !rhs.IsInitialized() || rhs.r != m.r {
		return rhs
	}
	eliminate(m.data, m.r, m.c, rhs.data, rhs.c)

	return rhs
}

// SolveVector reduces m in place against the right-hand side b and returns
// the transformed copy of b. It returns nil when len(b) != m.Rows().
func (m *Matrix) SolveVector(b []float32) []float32 {
	if !m.IsInitialized() || len(b) != m.r {
		return nil
	}
	x := append(make([]float32, 0, len(b)), b...)
	eliminate(m.data, m.r, m.c, x, 1)

	return x
}

// Inverse replaces m with its inverse. Non-square or singular matrices are
// left unchanged; use TryInverse to learn which case applied.
func (m *Matrix) Inverse() *Matrix {
	_ = m.TryInverse()

	return m
}

// TryInverse replaces m with its inverse.
// MAIN DESCRIPTION:
//   - Gauss-Jordan on a scratch copy with an identity-seeded augmented buffer.
//
// Implementation:
//   - Stage 1: require a square matrix (ErrNonSquare).
//   - Stage 2: eliminate a copy of the storage alongside the identity.
//   - Stage 3: accept only when the copy reduced to the exact identity,
//     then copy the augmented buffer into m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular. m is unchanged on error.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) TryInverse() error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if !m.IsInitialized() {
		return nil
	}
	if !invertFlat(m.data, m.r) {
		return matrixErrorf(opInverse, ErrSingular)
	}

	return nil
}

// invertFlat inverts the n×n buffer a in place and reports success.
// On failure a is untouched.
func invertFlat(a []float32, n int) bool {
	work := append(make([]float32, 0, len(a)), a...)
	aug := make([]float32, n*n)
	setIdentity(aug, n)
	eliminate(work, n, n, aug, n)
	if !isIdentityFlat(work, n, n) {
		return false
	}
	copy(a, aug)

	return true
}
