// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination kernel.
//
// One routine serves Matrix, Matrix2x2 and Matrix4x4: it works on a primary
// row-major buffer plus an optional augmented buffer that receives every row
// operation. Solve carries the right-hand side in the augmented buffer,
// Inverse carries an identity that ends up as the inverse.

package matrix

// eliminate reduces a (rows×cols, stride cols) towards reduced row echelon
// form while mirroring every row operation on b (rows×bcols, stride bcols).
// MAIN DESCRIPTION:
//   - Single forward pass of Gauss-Jordan elimination with exact-zero pivoting.
//
// Implementation:
//   - Pivot column j starts at 0 and advances once per row iteration i.
//   - Stage 1 (pivot): if a[i,j] == 0, swap in the first row below i with a
//     non-zero in column j. If there is none, advance j and go to the next
//     row; the same row is not retried.
//   - Stage 2 (normalize): if the pivot is not exactly 1, divide row i of a
//     and b by it.
//   - Stage 3 (eliminate): for every row k != i subtract a[k,j] times row i,
//     in a and b alike.
//   - Iteration stops when rows are exhausted or j reaches cols.
//
// Behavior highlights:
//   - Every written zero is stored as +0, so a result never holds -0.
//   - No partial pivoting by magnitude and no re-check pass; a rank-deficient
//     input simply leaves non-identity rows behind for the caller to detect.
//   - b may be nil with bcols == 0.
//
// Complexity:
//   - Time O(rows·rows·(cols+bcols)), Space O(1).
func eliminate(a []float32, rows, cols int, b []float32, bcols int) {
	var (
		i, j, k int
		p       int
		pivot   float32
		factor  float32
	)
	for i = 0; i < rows && j < cols; i, j = i+1, j+1 {
		if a[i*cols+j] == 0 {
			p = pivotRow(a, rows, cols, i, j)
			if p < 0 {
				continue
			}
			swapRows(a, cols, i, p)
			swapRows(b, bcols, i, p)
		}

		pivot = a[i*cols+j]
		if pivot != 1 {
			divideRow(a, cols, i, pivot)
			divideRow(b, bcols, i, pivot)
		}

		for k = 0; k < rows; k++ {
			if k == i {
				continue
			}
			factor = a[k*cols+j]
			subtractRow(a, cols, k, i, factor)
			subtractRow(b, bcols, k, i, factor)
		}
	}
}

// pivotRow returns the first row below i with a non-zero in column j, or -1.
func pivotRow(a []float32, rows, cols, i, j int) int {
	var y int
	for y = i + 1; y < rows; y++ {
		if a[y*cols+j] != 0 {
			return y
		}
	}

	return -1
}

// swapRows exchanges rows r1 and r2 of a stride-cols buffer.
func swapRows(a []float32, cols, r1, r2 int) {
	var l int
	for l = 0; l < cols; l++ {
		a[r1*cols+l], a[r2*cols+l] = a[r2*cols+l], a[r1*cols+l]
	}
}

// divideRow divides row r by d.
func divideRow(a []float32, cols, r int, d float32) {
	var l int
	for l = r * cols; l < (r+1)*cols; l++ {
		a[l] = canonicalZero(a[l] / d)
	}
}

// subtractRow computes row k -= factor * row i.
func subtractRow(a []float32, cols, k, i int, factor float32) {
	var l int
	for l = 0; l < cols; l++ {
		a[k*cols+l] = canonicalZero(a[k*cols+l] - a[i*cols+l]*factor)
	}
}

// canonicalZero maps -0 to +0 and returns every other value unchanged.
func canonicalZero(v float32) float32 {
	if v == 0 {
		return 0
	}

	return v
}
