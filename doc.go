// Package lvmath is a small float32 math toolkit for 2D/3D/4D graphics and
// game code: scalar helpers, vectors, fixed-size and generic matrices.
//
// Everything is organized under three subpackages:
//
//	compute/: constants, tolerance equality, rounding, angles, scalar
//	          point-in-shape tests and random helpers
//	vector/:  Vec2, Vec3, Vec4 with chaining mutators and x/image interop
//	matrix/:  Matrix, Matrix2x2, Matrix4x4 and the Gauss-Jordan solver
//
// Dependencies flow matrix → vector → compute.
//
// Quick example (solve x+y=3, y=1):
//
//	m := matrix.NewMatrix2x2(1, 1, 0, 1)
//	fmt.Println(m.Solve(3, 1)) // {2, 1}
//
// All types are plain values without locks: mutate from one goroutine and
// Clone to share.
//
//	go get github.com/katalvlaran/lvmath
package lvmath
