package util

import (
	"errors"
)

// Matrix helpers for the 3x3 float32 matrices used throughout the color
// pipeline. Matrices are row-major [][]float32.

func MatrixIdentity(n int) [][]float32 {
	matrix := MakeMatrix2D[float32](n, n)
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
	}
	return matrix
}

func InvertMatrix3x3(m [][]float32) [][]float32 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return nil
	}
	invDet := 1.0 / det
	inv := MakeMatrix2D[float32](3, 3)
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return inv
}

func MatrixMatrixMultiply(a [][]float32, b [][]float32) ([][]float32, error) {
	if a == nil || b == nil {
		return nil, errors.New("nil matrix")
	}
	if len(a[0]) != len(b) {
		return nil, errors.New("matrix dimension mismatch")
	}
	res := MakeMatrix2D[float32](len(a), len(b[0]))
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b[0]); j++ {
			var sum float32
			for k := 0; k < len(b); k++ {
				sum += a[i][k] * b[k][j]
			}
			res[i][j] = sum
		}
	}
	return res, nil
}

func MatrixVectorMultiply(m [][]float32, v []float32) ([]float32, error) {
	if m == nil || v == nil {
		return nil, errors.New("nil matrix")
	}
	if len(m[0]) != len(v) {
		return nil, errors.New("matrix dimension mismatch")
	}
	res := make([]float32, len(m))
	for i := 0; i < len(m); i++ {
		var sum float32
		for k := 0; k < len(v); k++ {
			sum += m[i][k] * v[k]
		}
		res[i] = sum
	}
	return res, nil
}

func MakeMatrix2D[T any](a int, b int) [][]T {
	matrix := make([][]T, a)
	for i := range matrix {
		matrix[i] = make([]T, b)
	}
	return matrix
}
