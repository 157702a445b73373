// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on the bulk constructors (NewDenseFrom, NewFilled).
	DefaultValidateNaNInf = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables finite-only writes: Set and bulk constructors
// reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy.
// Use for raw detector data that may legitimately carry NaN markers.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order (last-writer-wins); nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}
