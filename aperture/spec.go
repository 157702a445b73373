// SPDX-License-Identifier: MIT

package aperture

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/holomask/matrix"
)

// Kind names an aperture shape in a Spec.
type Kind string

const (
	KindHorizontal Kind = "horizontal"
	KindVertical   Kind = "vertical"
	KindCircular   Kind = "circular"
)

// Point is a disk center in array-index units: X is the column, Y the row.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Spec describes one aperture as data.
//
// Bands (horizontal, vertical) require Center and Width. Circular uses
// CenterXY and Radius when present and the defaults of Circular otherwise.
//
//	- kind: horizontal
//	  center: 5
//	  width: 4
//	- kind: circular
//	  center_xy: {x: 5, y: 5}
//	  radius: 3
type Spec struct {
	Kind     Kind     `yaml:"kind"`
	Center   *float64 `yaml:"center,omitempty"`
	Width    *float64 `yaml:"width,omitempty"`
	CenterXY *Point   `yaml:"center_xy,omitempty"`
	Radius   *float64 `yaml:"radius,omitempty"`
}

// ParseSpecs decodes a YAML sequence of Spec values and validates each one.
// Unknown fields are rejected. Empty input yields no specs.
func ParseSpecs(data []byte) ([]Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var specs []Spec
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, apertureErrorf("ParseSpecs", err)
	}
	for i := range specs {
		if err := specs[i].Validate(); err != nil {
			return nil, fmt.Errorf("aperture.ParseSpecs: spec %d: %w", i, err)
		}
	}

	return specs, nil
}

// Validate checks that the Spec names a known kind and carries the
// parameters that kind needs. Parameter values are checked by Apply.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindHorizontal, KindVertical:
		if s.Center == nil {
			return fmt.Errorf("%s: center: %w", s.Kind, ErrMissingParam)
		}
		if s.Width == nil {
			return fmt.Errorf("%s: width: %w", s.Kind, ErrMissingParam)
		}
	case KindCircular:
	default:
		return fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}

	return nil
}

// Apply runs the aperture described by s on h.
func (s Spec) Apply(h matrix.Matrix) (matrix.Matrix, error) {
	if err := s.Validate(); err != nil {
		return nil, apertureErrorf("Spec.Apply", err)
	}

	switch s.Kind {
	case KindHorizontal:
		return Horizontal(h, *s.Center, *s.Width)
	case KindVertical:
		return Vertical(h, *s.Center, *s.Width)
	default:
		var opts []Option
		if s.CenterXY != nil {
			opts = append(opts, WithCenter(s.CenterXY.X, s.CenterXY.Y))
		}
		if s.Radius != nil {
			opts = append(opts, WithRadius(*s.Radius))
		}
		return Circular(h, opts...)
	}
}

// ApplyAll applies specs in order, each to the previous result.
// With no specs it returns a clone of h, so the result never aliases the input.
func ApplyAll(h matrix.Matrix, specs ...Spec) (matrix.Matrix, error) {
	out, err := matrix.CloneMatrix(h)
	if err != nil {
		return nil, apertureErrorf("ApplyAll", err)
	}
	for i, s := range specs {
		if out, err = s.Apply(out); err != nil {
			return nil, fmt.Errorf("aperture.ApplyAll: spec %d: %w", i, err)
		}
	}

	return out, nil
}
