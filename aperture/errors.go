// SPDX-License-Identifier: MIT

package aperture

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite indicates a NaN or ±Inf center, width or radius.
	// Every finite value, including negative and degenerate ones, is accepted.
	ErrNonFinite = errors.New("aperture: non-finite parameter")

	// ErrUnknownKind indicates a Spec whose Kind is not horizontal, vertical or circular.
	ErrUnknownKind = errors.New("aperture: unknown kind")

	// ErrMissingParam indicates a band Spec without center or width.
	ErrMissingParam = errors.New("aperture: missing parameter")
)

// apertureErrorf wraps err with the call-site tag.
func apertureErrorf(tag string, err error) error {
	return fmt.Errorf("aperture.%s: %w", tag, err)
}
