// SPDX-License-Identifier: MIT

// Package matrix - generic dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit
//     index formula i*cols + j.
//   - Keep the zero value usable: Matrix{} is the uninitialized state that
//     SetData fills on first use.
//   - Guarantee safety at the public surface: Get returns 0 out of range,
//     At/Set return errors, nothing panics on user input.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Get/At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	opNew          = "New"
	opNewFromSlice = "NewFromSlice"
	opIdentity     = "Identity"
	opSetData      = "SetData"
	opAt           = "At"
	opSet          = "Set"
	opAdd          = "Add"
	opSubtract     = "Subtract"
	opMultiply     = "Multiply"
	opPower        = "Power"
	opInverse      = "Inverse"
	opFromMatrix   = "FromMatrix"
	opMat3         = "Mat3"
	opMat4         = "Mat4"
)

// ---------- Formatting literals ----------

const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtFloat   = 'g'
	_fmtBitSize = 32
)

// matrixErrorf wraps a sentinel with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps a sentinel with the operation tag and coordinates.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}

// Matrix is a dense rows×cols grid of float32 values.
//   - r, c hold dimensions (>= 0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     nil while the matrix is uninitialized.
//   - opts is nil for the zero value, meaning package defaults.
//
// Mutating methods work in place and return the receiver for chaining;
// use Clone for an independent copy.
type Matrix struct {
	r, c int
	data []float32
	opts *Options
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and functional options.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: resolve options on top of the defaults.
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Zero dimensions are legal and yield an empty, initialized matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		r:    rows,
		c:    cols,
		data: make([]float32, rows*cols),
		opts: &o,
	}, nil
}

// NewFromSlice creates a rows×cols matrix holding a copy of data (row-major).
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//   - ErrBadShape when len(data) != rows*cols.
//   - ErrNaNInf when data holds a non-finite value and the policy is on.
func NewFromSlice(data []float32, rows, cols int, opts ...Option) (*Matrix, error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewFromSlice, err)
	}
	if err = m.fill(data); err != nil {
		return nil, matrixErrorf(opNewFromSlice, err)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	setIdentity(m.data, n)

	return m, nil
}

// SetData loads a row-major copy of data.
// On an uninitialized matrix it allocates rows×cols first; otherwise rows and
// cols must equal the current shape.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrBadShape, ErrNaNInf.
//
// The matrix is unchanged whenever an error is returned.
func (m *Matrix) SetData(data []float32, rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return matrixErrorf(opSetData, err)
	}
	if m.IsInitialized() && (rows != m.r || cols != m.c) {
		return matrixErrorf(opSetData, ErrDimensionMismatch)
	}
	if len(data) != rows*cols {
		return matrixErrorf(opSetData, ErrBadShape)
	}
	if m.options().validateNaNInf {
		if err := validateAllFinite(data); err != nil {
			return matrixErrorf(opSetData, err)
		}
	}
	if !m.IsInitialized() {
		m.r, m.c = rows, cols
		m.data = make([]float32, rows*cols)
	}
	copy(m.data, data)

	return nil
}

// fill copies data into an already shaped matrix.
func (m *Matrix) fill(data []float32) error {
	if len(data) != len(m.data) {
		return ErrBadShape
	}
	if m.options().validateNaNInf {
		if err := validateAllFinite(data); err != nil {
			return err
		}
	}
	copy(m.data, data)

	return nil
}

// options returns the effective configuration (defaults for the zero value).
func (m *Matrix) options() Options {
	if m.opts == nil {
		return defaultOptions()
	}

	return *m.opts
}

// Options returns the configuration captured at construction.
func (m *Matrix) Options() Options { return m.options() }

// IsInitialized reports whether the matrix has storage. The zero value does not.
func (m *Matrix) IsInitialized() bool { return m != nil && m.data != nil }

// Rows returns the row count (0 for nil).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for nil).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// inRange reports whether (i, j) addresses a stored element.
func (m *Matrix) inRange(i, j int) bool {
	return m.IsInitialized() && i >= 0 && i < m.r && j >= 0 && j < m.c
}

// Get returns the element at (i, j). Out-of-range indices and uninitialized
// storage read as 0; Get never panics.
func (m *Matrix) Get(i, j int) float32 {
	if !m.inRange(i, j) {
		return 0
	}

	return m.data[i*m.c+j]
}

// At returns the element at (i, j) or a wrapped ErrOutOfRange.
func (m *Matrix) At(i, j int) (float32, error) {
	if !m.inRange(i, j) {
		return 0, indexErrorf(opAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set stores v at (i, j).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds (storage untouched).
//   - ErrNaNInf for NaN/±Inf while the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Set(i, j int, v float32) error {
	if !m.inRange(i, j) {
		return indexErrorf(opSet, i, j, ErrOutOfRange)
	}
	if m.options().validateNaNInf {
		if err := ValidateFinite(v); err != nil {
			return indexErrorf(opSet, i, j, err)
		}
	}
	m.data[i*m.c+j] = v

	return nil
}

// Data returns a row-major copy of the storage (nil when uninitialized).
func (m *Matrix) Data() []float32 {
	if !m.IsInitialized() {
		return nil
	}

	return append([]float32(nil), m.data...)
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []float32 {
	if !m.IsInitialized() || i < 0 || i >= m.r {
		return nil
	}
	out := make([]float32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Col returns a copy of column j, or nil when j is out of range.
func (m *Matrix) Col(j int) []float32 {
	if !m.IsInitialized() || j < 0 || j >= m.c {
		return nil
	}
	out := make([]float32, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Clone returns a deep copy with the same shape, data and options.
// Cloning an uninitialized matrix yields another uninitialized matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := &Matrix{r: m.r, c: m.c, opts: m.opts}
	if m.data != nil {
		cp.data = append(make([]float32, 0, len(m.data)), m.data...)
	}

	return cp
}

// String renders the matrix row by row: entries in %g form separated by a
// single space, each row terminated by "\n". The 2×2 identity prints as
// "1 0\n0 1\n"; an empty matrix prints as "".
func (m *Matrix) String() string {
	if !m.IsInitialized() {
		return ""
	}

	return formatFlat(m.data, m.r, m.c)
}

// formatFlat is the shared renderer for every matrix type.
func formatFlat(a []float32, rows, cols int) string {
	var (
		b    strings.Builder
		i, j int
	)
	b.Grow(rows * (cols*4 + 1))
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(float64(a[i*cols+j]), _fmtFloat, -1, _fmtBitSize))
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// validateAllFinite rejects the first NaN/±Inf found in a.
func validateAllFinite(a []float32) error {
	for _, v := range a {
		if err := ValidateFinite(v); err != nil {
			return err
		}
	}

	return nil
}

// setIdentity overwrites an n×n buffer with the identity.
func setIdentity(a []float32, n int) {
	var i int
	for i = range a {
		a[i] = 0
	}
	for i = 0; i < n; i++ {
		a[i*n+i] = 1
	}
}
