// Package matrix implements float32 matrices and the Gauss-Jordan solver at
// the core of lvmath.
//
// The matrix package provides:
//
//   - Matrix: a dense rows×cols grid with row-major storage, functional
//     options (WithEpsilon, WithValidateNaNInf) and a usable zero value.
//   - Matrix2x2 and Matrix4x4: array-backed fixed sizes that share every
//     kernel with Matrix and convert to vector.Vec2 / vector.Vec4 and
//     f32.Mat4.
//   - Solve, SolveWith, SolveVector and Inverse, all driven by one
//     elimination routine over flat buffers.
//
// Error model: the plain methods never fail. Add/Subtract on mismatched
// shapes, Power with n <= 0 and Inverse of a singular matrix leave the
// receiver unchanged; Multiply on mismatch returns a copy of the receiver.
// Each of them has a Try* twin that returns a sentinel from errors.go so the
// caller can tell a no-op from success:
//
//	a, _ := matrix.NewFromSlice([]float32{4, 7, 2, 6}, 2, 2)
//	if err := a.TryInverse(); errors.Is(err, matrix.ErrSingular) {
//		// a is unchanged
//	}
//
// Products snap entries whose fractional part is within compute.Epsilon of
// an integer, so float32 drift such as 2.9999981 is stored as 3.
//
// Nothing in this package is safe for concurrent mutation; Clone per
// goroutine.
package matrix
