// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var m *matrix.Matrix
	var m2 *matrix.Matrix2x2
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(m2), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustZero(t, 1, 1)))
	require.NoError(t, matrix.ValidateNotNil(matrix.Identity4x4()))
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	a := mustZero(t, 2, 3)
	b := mustZero(t, 3, 2)

	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(matrix.Identity2x2()))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)

	// Fixed-size types share the same contract.
	require.NoError(t, matrix.ValidateMulCompatible(matrix.Identity4x4(), mustZero(t, 4, 1)))
}

func TestValidateScalars(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float32{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float32{1, 2}, 2))

	require.ErrorIs(t, matrix.ValidateFinite(float32(math.NaN())), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(float32(math.Inf(-1))), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(-3))

	require.ErrorIs(t, matrix.ValidateDims(-1, 0), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateDims(0, 0))
}
