// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.
//   - Keep all data finite so the NaN/Inf policy never interferes by accident.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Shaped value to mask its concrete type, forcing AllClose onto
// its generic Get-based path.
type hide struct{ matrix.Shaped }

// mustMatrix builds an r×c matrix from row-major values or fails the test.
func mustMatrix(tb testing.TB, r, c int, data ...float32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewFromSlice(data, r, c)
	require.NoError(tb, err)

	return m
}

// mustZero allocates an r×c zero matrix or fails the test.
func mustZero(tb testing.TB, r, c int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c)
	require.NoError(tb, err)

	return m
}

// mustIdentity allocates the n×n identity or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// mustSet writes v at (i, j) or fails the test.
func mustSet(tb testing.TB, m *matrix.Matrix, i, j int, v float32) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// requireEqualMatrix fails when got and want differ beyond DefaultEpsilon.
func requireEqualMatrix(tb testing.TB, want, got *matrix.Matrix) {
	tb.Helper()
	require.Truef(tb, want.Equal(got), "matrices differ:\nwant:\n%vgot:\n%v", want, got)
}

// randomFill writes deterministic values in [-1, 1) drawn from seed.
func randomFill(tb testing.TB, m *matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			mustSet(tb, m, i, j, rng.Float32()*2-1)
		}
	}
}

// diagonallyDominant returns a random n×n matrix with |a_ii| > Σ|a_ij|,
// which is always invertible.
func diagonallyDominant(tb testing.TB, n int, seed int64) *matrix.Matrix {
	tb.Helper()
	m := mustZero(tb, n, n)
	randomFill(tb, m, seed)
	var i int
	for i = 0; i < n; i++ {
		mustSet(tb, m, i, i, float32(n)+1)
	}

	return m
}
