// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM   *matrix.Matrix
	sinkM4  *matrix.Matrix4x4
	sinkV4  *vector.Vec4
	sinkErr error
)

func BenchmarkMultiply(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustZero(b, n, n)
			B := mustZero(b, n, n)
			randomFill(b, A, 1337)
			randomFill(b, B, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Clone().Multiply(B)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagonallyDominant(b, n, 99)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := A.Clone()
				sinkErr = c.TryInverse()
				sinkM = c
			}
		})
	}
}

func BenchmarkSolveVector(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := diagonallyDominant(b, n, 7)
			rhs := make([]float32, n)
			for i := range rhs {
				rhs[i] = float32(i)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = A.Clone().SolveVector(rhs)
			}
		})
	}
}

func BenchmarkMatrix4x4_Inverse(b *testing.B) {
	m := affine()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Clone().Inverse()
	}
}

func BenchmarkMatrix4x4_MultiplyVec(b *testing.B) {
	m := affine()
	v := vector.NewVec4(1, 2, 3, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkV4 = m.MultiplyVec(v)
	}
}
