// Package aperture applies spatial masks ("apertures") to holograms held in a
// matrix.Matrix.
//
// 🚀 What is an aperture?
//
//	An aperture is a geometric region of the hologram that is kept; every
//	element outside of it is set to zero. Three shapes are provided:
//	  • Horizontal: a band of rows centered on a row coordinate
//	  • Vertical  : a band of columns centered on a column coordinate
//	  • Circular  : a disk centered on an (x, y) point
//
// ✨ Key features:
//   - copy-then-mask: the input is never modified, the output keeps its
//     shape and concrete type
//   - band centers are pulled away from the edges so the full width fits;
//     the resolved center is reported by the ...WithCenter variants
//   - circular center and radius default to the geometric center and the
//     largest disk that fits (WithCenter / WithRadius override them)
//   - declarative aperture stacks decoded from YAML (ParseSpecs, ApplyAll)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/holomask/aperture"
//
//	slit, err := aperture.Horizontal(holo, 5, 4)      // rows 3..7 survive
//	band, err := aperture.VerticalWithCenter(holo, 1, 4)
//	fmt.Println(band.Center)                          // 2 (clamped)
//	pin, err := aperture.Circular(holo, aperture.WithRadius(3))
//
// Rounding:
//
//	Band boundaries are rounded half-to-even (math.RoundToEven):
//	center 5, width 3 keeps rows round(3.5)=4 .. round(6.5)=6.
//
// Performance:
//
//   - Time:   O(rows·cols) for every aperture
//   - Memory: one clone of the input
package aperture
