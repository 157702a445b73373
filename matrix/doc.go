// Package matrix provides the two-dimensional float64 storage that holomask
// masks: a Matrix interface and its row-major Dense implementation.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - A numeric policy (WithValidateNaNInf / WithNoValidateNaNInf) that is
//     carried through Clone.
//   - Copy-then-zero mask kernels (MaskRows, MaskCols, MaskWhere) that never
//     touch their input and keep its concrete type.
//   - AllClose for tolerance-based comparison.
//
// See the aperture package for the band and disk masks built on top.
package matrix
