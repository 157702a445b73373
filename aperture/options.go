// SPDX-License-Identifier: MIT

package aperture

// Option configures Circular. Unset values are resolved to their defaults at
// the top of Circular, after all options are applied (last-writer-wins).
type Option func(*options)

// options holds the optional circular-aperture geometry.
type options struct {
	hasCenter bool
	x, y      float64 // column (x) and row (y) of the disk center

	hasRadius bool
	radius    float64
}

// WithCenter places the disk center at column x, row y (array-index units).
// Default: the geometric center (cols/2, rows/2).
func WithCenter(x, y float64) Option {
	return func(o *options) {
		o.hasCenter = true
		o.x, o.y = x, y
	}
}

// WithRadius sets the disk radius.
// Default: the largest radius keeping the disk inside the array,
// min(cols-x, x, rows-y, y) for the resolved center.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.hasRadius = true
		o.radius = r
	}
}

// gatherOptions applies setters in order; nil setters are skipped.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}
