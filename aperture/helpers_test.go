// SPDX-License-Identifier: MIT
package aperture_test

import (
	"testing"

	"github.com/katalvlaran/holomask/matrix"
)

// hide masks the concrete *Dense type so the generic matrix fallback runs.
type hide struct{ matrix.Matrix }

// ones returns an r×c hologram of ones.
func ones(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFilled(r, c, 1)
	if err != nil {
		t.Fatalf("NewFilled(%d,%d): %v", r, c, err)
	}

	return m
}

// counting returns an r×c hologram holding 1, 2, 3, ... in row-major order.
func counting(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m := ones(t, r, c)
	if err := m.Apply(func(i, j int, _ float64) float64 { return float64(i*c + j + 1) }); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	return m
}

// dump reads m into row literals.
func dump(t testing.TB, m matrix.Matrix) [][]float64 {
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

// keptRows lists the row indices that contain at least one non-zero element.
func keptRows(t testing.TB, m matrix.Matrix) []int {
	t.Helper()
	kept := []int{}
	for i, row := range dump(t, m) {
		for _, v := range row {
			if v != 0 {
				kept = append(kept, i)
				break
			}
		}
	}

	return kept
}

// keptCols lists the column indices that contain at least one non-zero element.
func keptCols(t testing.TB, m matrix.Matrix) []int {
	t.Helper()
	rows := dump(t, m)
	kept := []int{}
	for j := 0; j < m.Cols(); j++ {
		for i := range rows {
			if rows[i][j] != 0 {
				kept = append(kept, j)
				break
			}
		}
	}

	return kept
}

// span returns [lo, lo+1, ..., hi].
func span(lo, hi int) []int {
	out := []int{}
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}
