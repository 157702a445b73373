// Package holomask masks holograms with geometric apertures.
//
// 🚀 What is holomask?
//
//	A small, dependency-light library for the masking step of a hologram
//	processing pipeline:
//		• matrix  : float64 2D storage (Dense) with safe accessors and
//		             copy-then-zero mask kernels
//		• aperture: horizontal and vertical bands, circular disks, and
//		             YAML-described aperture stacks
//
// ✨ Guarantees:
//
//   - Inputs are never modified; every aperture returns a fresh copy of the
//     same shape and concrete type
//   - No panics on user input; failures are sentinel errors matched with errors.Is
//   - Deterministic: fixed row-major traversal, round-half-to-even band edges
//
// Quick example:
//
//	holo, _ := matrix.NewFilled(10, 10, 1)
//	band, _ := aperture.HorizontalWithCenter(holo, 1, 4)
//	// band.Center == 2, rows 0..4 kept
//
// See the examples directory for a runnable slit scan.
package holomask
