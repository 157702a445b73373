// SPDX-License-Identifier: MIT

package aperture

import (
	"math"

	"github.com/katalvlaran/holomask/matrix"
)

const (
	ctxHorizontal = "Horizontal"
	ctxVertical   = "Vertical"
)

// Band is the result of a horizontal or vertical aperture.
//
// Fields:
//   - Hologram: the masked copy; same shape and concrete type as the input.
//   - Center  : the center actually used, after pulling it away from the edges.
//   - Start   : first kept index (row or column), never negative.
//   - End     : last kept index, inclusive. Not clamped to the array: an End
//     at or past the last index keeps everything from Start on, and an
//     End below Start keeps nothing.
type Band struct {
	Hologram matrix.Matrix
	Center   float64
	Start    int
	End      int
}

// Horizontal keeps the band of rows centered on center and zeroes the rest.
// It is HorizontalWithCenter without the resolved geometry.
func Horizontal(h matrix.Matrix, center, width float64) (matrix.Matrix, error) {
	b, err := HorizontalWithCenter(h, center, width)
	if err != nil {
		return nil, err
	}

	return b.Hologram, nil
}

// HorizontalWithCenter applies a horizontal aperture and reports the
// resolved band.
//
// Algorithm Outline:
//  1. half = width/2. If center < half, center = half; then if
//     center > rows-half, center = rows-half.
//  2. Start = roundHalfEven(center-half), End = roundHalfEven(center+half).
//  3. Start = max(Start, 0). End is left as is.
//  4. Rows i with i < Start or i > End are zeroed on a clone of h.
//
// Negative and degenerate widths are legal and follow the same arithmetic,
// typically keeping nothing (or everything).
//
// Errors:
//   - matrix.ErrNilMatrix: h is nil.
//   - ErrNonFinite       : center or width is NaN or ±Inf.
//
// Example:
//
//	// 10×10 hologram, center 1, width 4:
//	// center is pulled to 2, rows 0..4 are kept.
//	b, err := HorizontalWithCenter(holo, 1, 4)
func HorizontalWithCenter(h matrix.Matrix, center, width float64) (Band, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return Band{}, apertureErrorf(ctxHorizontal, err)
	}
	if !finite(center, width) {
		return Band{}, apertureErrorf(ctxHorizontal, ErrNonFinite)
	}

	center, start, end := resolveBand(h.Rows(), center, width)
	masked, err := matrix.MaskRows(h, func(i int) bool { return i >= start && i <= end })
	if err != nil {
		return Band{}, apertureErrorf(ctxHorizontal, err)
	}

	return Band{Hologram: masked, Center: center, Start: start, End: end}, nil
}

// Vertical keeps the band of columns centered on center and zeroes the rest.
// It is VerticalWithCenter without the resolved geometry.
func Vertical(h matrix.Matrix, center, width float64) (matrix.Matrix, error) {
	b, err := VerticalWithCenter(h, center, width)
	if err != nil {
		return nil, err
	}

	return b.Hologram, nil
}

// VerticalWithCenter is HorizontalWithCenter on the column axis: center is
// clamped against [width/2, cols-width/2] and columns outside [Start, End]
// are zeroed.
func VerticalWithCenter(h matrix.Matrix, center, width float64) (Band, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return Band{}, apertureErrorf(ctxVertical, err)
	}
	if !finite(center, width) {
		return Band{}, apertureErrorf(ctxVertical, ErrNonFinite)
	}

	center, start, end := resolveBand(h.Cols(), center, width)
	masked, err := matrix.MaskCols(h, func(j int) bool { return j >= start && j <= end })
	if err != nil {
		return Band{}, apertureErrorf(ctxVertical, err)
	}

	return Band{Hologram: masked, Center: center, Start: start, End: end}, nil
}

// resolveBand clamps center so the full width fits in [0, extent) and returns
// the inclusive index range [start, end] to keep. The lower clamp runs first,
// so when width exceeds extent the upper clamp wins.
func resolveBand(extent int, center, width float64) (float64, int, int) {
	half := width / 2
	if center < half {
		center = half
	}
	if center > float64(extent)-half {
		center = float64(extent) - half
	}

	start := toIndex(math.RoundToEven(center-half), extent)
	end := toIndex(math.RoundToEven(center+half), extent)
	if start < 0 {
		start = 0
	}

	return center, start, end
}

// toIndex converts a rounded coordinate to int, saturating to [-1, extent].
// Values beyond either bound select the same rows as the saturated ones, and
// saturation keeps the float→int conversion defined for huge widths.
func toIndex(v float64, extent int) int {
	if v < -1 {
		return -1
	}
	if v > float64(extent) {
		return extent
	}

	return int(v)
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
