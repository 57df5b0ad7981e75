// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestInverse_Known(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, 4, 7, 2, 6)
	orig := a.Clone()

	require.NoError(t, a.TryInverse())
	requireEqualMatrix(t, mustMatrix(t, 2, 2, 0.6, -0.7, -0.2, 0.4), a)

	// inv × A snaps back to the exact identity.
	require.True(t, a.Multiply(orig).IsIdentity())
}

func TestInverse_ExactValues(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, []float32{-2, 1, 1.5, -0.5}, a.Inverse().Data())
}

func TestInverse_SingularLeavesReceiver(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, 1, 2, 2, 4)
	require.Equal(t, []float32{1, 2, 2, 4}, a.Inverse().Data())
	require.ErrorIs(t, a.TryInverse(), matrix.ErrSingular)
	require.Equal(t, []float32{1, 2, 2, 4}, a.Data())
}

func TestInverse_NonSquareIsNoOp(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, a.Inverse().Data())
	require.ErrorIs(t, a.TryInverse(), matrix.ErrNonSquare)
}

func TestInverse_RandomRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 5, 8} {
		a := diagonallyDominant(t, n, int64(n))
		inv := a.Clone()
		require.NoError(t, inv.TryInverse(), "n=%d", n)

		prod := inv.Clone().Multiply(a)
		ok, err := matrix.AllClose(prod, mustIdentity(t, n), 1e-4)
		require.NoError(t, err)
		require.True(t, ok, "n=%d\n%v", n, prod)
	}
}

func TestSolve_InPlaceAugmented(t *testing.T) {
	t.Parallel()

	// x + y = 3, y = 1
	m := mustMatrix(t, 2, 3, 1, 1, 3, 0, 1, 1)
	require.Same(t, m, m.Solve())
	require.Equal(t, []float32{1, 0, 2, 0, 1, 1}, m.Data())
}

func TestSolve_PivotSwap(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, 0, 1, 1, 0)
	x := m.SolveVector([]float32{5, 7})
	require.Equal(t, []float32{7, 5}, x)
	require.True(t, m.IsIdentity())
}

func TestSolve_NegativeZeroIsCanonical(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, -1, 0, 0, 1)
	m.Solve()
	require.Equal(t, "1 0\n0 1\n", m.String())
	require.False(t, math.Signbit(float64(m.Get(0, 1))))
}

func TestSolve_ZeroColumnAdvancesPivot(t *testing.T) {
	t.Parallel()

	// Column 0 has no pivot; row 0 is not retried against column 1.
	m := mustMatrix(t, 2, 2, 0, 1, 0, 2)
	m.Solve()
	require.Equal(t, []float32{0, 0, 0, 1}, m.Data())
}

func TestSolve_TallMatrixStops(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 3, 2, 1, 0, 0, 1, 1, 1)
	require.NotPanics(t, func() { m.Solve() })
	require.Equal(t, []float32{1, 0, 0, 1, 0, 0}, m.Data())
}

func TestSolveWith(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, 2, 0, 0, 4)
	rhs := mustMatrix(t, 2, 2, 2, 4, 8, 4)
	out := a.SolveWith(rhs)
	require.Same(t, rhs, out)
	require.Equal(t, []float32{1, 2, 2, 1}, rhs.Data())
	require.True(t, a.IsIdentity())

	// Row-count mismatch changes nothing.
	b := mustMatrix(t, 2, 2, 2, 0, 0, 4)
	bad := mustMatrix(t, 3, 1, 1, 1, 1)
	require.Same(t, bad, b.SolveWith(bad))
	require.Equal(t, []float32{2, 0, 0, 4}, b.Data())
	require.Equal(t, []float32{1, 1, 1}, bad.Data())
}

func TestSolveVector_BadLength(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, 2, 0, 0, 4)
	require.Nil(t, m.SolveVector([]float32{1}))
	require.Equal(t, []float32{2, 0, 0, 4}, m.Data())

	b := []float32{2, 8}
	require.Equal(t, []float32{1, 2}, m.SolveVector(b))
	require.Equal(t, []float32{2, 8}, b)
}
