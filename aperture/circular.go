// SPDX-License-Identifier: MIT

package aperture

import (
	"math"

	"github.com/katalvlaran/holomask/matrix"
)

const ctxCircular = "Circular"

// Circular keeps the disk centered on (x, y) and zeroes every element outside.
//
// Element (i, j) (row i, column j) is zeroed when
//
//	(i-y)² + (j-x)² > radius²
//
// so the boundary circle itself is kept. Without options the disk sits at the
// geometric center (cols/2, rows/2) with the largest radius that fits,
// min(cols-x, x, rows-y, y). WithCenter and WithRadius override either value;
// the default radius is computed from the resolved center.
//
// Errors:
//   - matrix.ErrNilMatrix: h is nil.
//   - ErrNonFinite       : a center coordinate or the radius is NaN or ±Inf.
//
// Complexity: O(rows·cols), one clone.
func Circular(h matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return nil, apertureErrorf(ctxCircular, err)
	}
	x, y, radius, err := resolveDisk(h.Rows(), h.Cols(), gatherOptions(opts...))
	if err != nil {
		return nil, apertureErrorf(ctxCircular, err)
	}

	r2 := radius * radius
	masked, err := matrix.MaskWhere(h, func(i, j int) bool {
		dy := float64(i) - y
		dx := float64(j) - x
		return dy*dy+dx*dx <= r2
	})
	if err != nil {
		return nil, apertureErrorf(ctxCircular, err)
	}

	return masked, nil
}

// resolveDisk fills in the default center and radius.
func resolveDisk(rows, cols int, o options) (x, y, radius float64, err error) {
	x, y = float64(cols)/2, float64(rows)/2
	if o.hasCenter {
		x, y = o.x, o.y
	}
	if !finite(x, y) {
		return 0, 0, 0, ErrNonFinite
	}

	if o.hasRadius {
		radius = o.radius
	} else {
		radius = math.Min(math.Min(float64(cols)-x, x), math.Min(float64(rows)-y, y))
	}
	if !finite(radius) {
		return 0, 0, 0, ErrNonFinite
	}

	return x, y, radius, nil
}
