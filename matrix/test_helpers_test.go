// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the mask kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/holomask/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom builds a *Dense from row literals or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// Counting fills an r×c *Dense with 1, 2, 3, ... in row-major order, so every
// element is non-zero and distinct.
func Counting(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	if err := m.Apply(func(i, j int, _ float64) float64 { return float64(i*c + j + 1) }); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	return m
}

// Rows dumps m into row literals for readable equality assertions.
func Rows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}
