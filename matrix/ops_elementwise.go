// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise mask kernels (ew*) so band and disk
//     apertures share one tight copy-then-zero loop.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API reaches them via thin wrappers in api.go (MaskRows, MaskCols,
//     MaskWhere, AllClose).
//   - Every mask kernel returns a Clone of its input: the input is never
//     written, and the output keeps the input's concrete type and policy.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j).
//   - Dense fast-path zeroes whole rows as contiguous runs of the flat buffer.
//   - Exactly one allocation (the clone); O(r*c) time.

package matrix

import (
	"math"
)

// ewMaskRows copies X and zeroes every row i for which keep(i) is false.
// Time: O(r*c). Space: O(r*c).
func ewMaskRows(X Matrix, keep func(i int) bool) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("MaskRows", err)
	}
	if keep == nil {
		return nil, matrixErrorf("MaskRows", ErrNilPredicate)
	}
	r, c := X.Rows(), X.Cols()

	// Dense fast-path: each dropped row is one contiguous run.
	if d, ok := X.(*Dense); ok {
		out := d.clone()
		for i := 0; i < r; i++ {
			if keep(i) {
				continue
			}
			row := out.data[i*c : (i+1)*c]
			for j := range row {
				row[j] = 0
			}
		}
		return out, nil
	}

	// Generic fallback via Clone + Set.
	out := X.Clone()
	for i := 0; i < r; i++ {
		if keep(i) {
			continue
		}
		for j := 0; j < c; j++ {
			if err := out.Set(i, j, 0); err != nil {
				return nil, matrixErrorf("MaskRows", err)
			}
		}
	}
	return out, nil
}

// ewMaskCols copies X and zeroes every column j for which keep(j) is false.
// keep is evaluated once per column, not once per element.
// Time: O(r*c). Space: O(r*c + c).
func ewMaskCols(X Matrix, keep func(j int) bool) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("MaskCols", err)
	}
	if keep == nil {
		return nil, matrixErrorf("MaskCols", ErrNilPredicate)
	}
	r, c := X.Rows(), X.Cols()

	drop := make([]bool, c)
	dropped := false
	for j := 0; j < c; j++ {
		drop[j] = !keep(j)
		dropped = dropped || drop[j]
	}

	if d, ok := X.(*Dense); ok {
		out := d.clone()
		if !dropped {
			return out, nil
		}
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				if drop[j] {
					out.data[base+j] = 0
				}
			}
		}
		return out, nil
	}

	out := X.Clone()
	if !dropped {
		return out, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !drop[j] {
				continue
			}
			if err := out.Set(i, j, 0); err != nil {
				return nil, matrixErrorf("MaskCols", err)
			}
		}
	}
	return out, nil
}

// ewMaskWhere copies X and zeroes every element (i,j) for which keep(i,j) is false.
// Time: O(r*c). Space: O(r*c).
func ewMaskWhere(X Matrix, keep func(i, j int) bool) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("MaskWhere", err)
	}
	if keep == nil {
		return nil, matrixErrorf("MaskWhere", ErrNilPredicate)
	}
	r, c := X.Rows(), X.Cols()

	if d, ok := X.(*Dense); ok {
		out := d.clone()
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				if !keep(i, j) {
					out.data[base+j] = 0
				}
			}
		}
		return out, nil
	}

	out := X.Clone()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if keep(i, j) {
				continue
			}
			if err := out.Set(i, j, 0); err != nil {
				return nil, matrixErrorf("MaskWhere", err)
			}
		}
	}
	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//   - NaN never matches; equal infinities match.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	r, c := a.Rows(), a.Cols()

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At; indices are in range after the shape check.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind ewAllClose.
func closeEnough(av, bv, rtol, atol float64) bool {
	if av == bv { // covers equal infinities
		return true
	}
	if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return false
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
