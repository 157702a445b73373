// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, documented entry points over the private ew* kernels.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "fmt"

// matrixErrorf wraps an underlying error with the given call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a structural clone of m (same concrete type).
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ---------- Masking (copy-then-zero) ----------

// MaskRows returns a copy of m with every row i zeroed where keep(i) is false.
// The input is never modified; the result has m's shape and concrete type.
// Time: O(r*c). Space: O(r*c).
func MaskRows(m Matrix, keep func(i int) bool) (Matrix, error) {
	return ewMaskRows(m, keep)
}

// MaskCols returns a copy of m with every column j zeroed where keep(j) is false.
// Time: O(r*c). Space: O(r*c).
func MaskCols(m Matrix, keep func(j int) bool) (Matrix, error) {
	return ewMaskCols(m, keep)
}

// MaskWhere returns a copy of m with every element (i,j) zeroed where
// keep(i,j) is false. keep is called once per element in row-major order.
// Time: O(r*c). Space: O(r*c).
func MaskWhere(m Matrix, keep func(i, j int) bool) (Matrix, error) {
	return ewMaskWhere(m, keep)
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never matches; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
