// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_Shapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.True(t, m.IsZero())
	require.True(t, m.IsInitialized())

	empty, err := matrix.New(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, "", empty.String())

	_, err = matrix.New(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.New(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromSlice_BadShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFromSlice([]float32{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, []float32{1, 2, 3, 4}, m.Data())
}

func TestNewFromSlice_NaNPolicy(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	_, err := matrix.NewFromSlice([]float32{nan}, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewFromSlice([]float32{nan}, 1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(m.Get(0, 0))))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id := mustIdentity(t, 3)
	require.True(t, id.IsIdentity())
	require.Equal(t, "1 0 0\n0 1 0\n0 0 1\n", id.String())

	_, err := matrix.Identity(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestZeroValue_SetData(t *testing.T) {
	t.Parallel()

	var m matrix.Matrix
	require.False(t, m.IsInitialized())
	require.Equal(t, float32(0), m.Get(0, 0))
	require.Nil(t, m.Data())
	require.Equal(t, "", m.String())

	require.NoError(t, m.SetData([]float32{1, 2, 3, 4, 5, 6}, 2, 3))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, float32(6), m.Get(1, 2))

	// Once shaped, the dimensions are fixed.
	require.ErrorIs(t, m.SetData([]float32{1, 2, 3}, 3, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetData([]float32{1, 2}, 2, 3), matrix.ErrBadShape)
	require.Equal(t, float32(6), m.Get(1, 2))

	require.NoError(t, m.SetData([]float32{6, 5, 4, 3, 2, 1}, 2, 3))
	require.Equal(t, float32(6), m.Get(0, 0))
}

func TestGet_OutOfRangeReadsZero(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, c := range cases {
		require.Equal(t, float32(0), m.Get(c[0], c[1]), "Get(%d,%d)", c[0], c[1])
	}

	var nilM *matrix.Matrix
	require.Equal(t, float32(0), nilM.Get(0, 0))
	require.Equal(t, 0, nilM.Rows())
}

func TestAtSet_Errors(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(3), v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(0, 2, 9), matrix.ErrOutOfRange)
	require.Equal(t, []float32{1, 2, 3, 4}, m.Data())

	require.ErrorIs(t, m.Set(0, 0, float32(math.Inf(1))), matrix.ErrNaNInf)
	require.Equal(t, float32(1), m.Get(0, 0))

	require.NoError(t, m.Set(0, 0, 9))
	require.Equal(t, float32(9), m.Get(0, 0))
}

func TestRowCol_Copies(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)
	require.Equal(t, []float32{4, 5, 6}, m.Row(1))
	require.Equal(t, []float32{3, 6}, m.Col(2))
	require.Nil(t, m.Row(2))
	require.Nil(t, m.Col(-1))

	row := m.Row(0)
	row[0] = 100
	require.Equal(t, float32(1), m.Get(0, 0))
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	mustSet(t, c, 0, 0, 42)
	require.Equal(t, float32(1), m.Get(0, 0))
	require.Equal(t, float32(42), c.Get(0, 0))

	var zero matrix.Matrix
	require.False(t, zero.Clone().IsInitialized())

	tight, err := matrix.New(1, 1, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, float32(0), tight.Clone().Options().Epsilon())
}

func TestString_Format(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 3, 1, -2.5, 0, 1e-7, 3, 100)
	require.Equal(t, "1 -2.5 0\n1e-07 3 100\n", m.String())
}
