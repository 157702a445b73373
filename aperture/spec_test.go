// SPDX-License-Identifier: MIT
package aperture_test

import (
	"testing"

	"github.com/katalvlaran/holomask/aperture"
	"github.com/katalvlaran/holomask/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stackYAML = `
- kind: horizontal
  center: 5
  width: 4
- kind: vertical
  center: 1
  width: 4
- kind: circular
  center_xy: {x: 2, y: 5}
  radius: 2
`

func TestParseSpecs(t *testing.T) {
	t.Parallel()

	specs, err := aperture.ParseSpecs([]byte(stackYAML))
	require.NoError(t, err)
	require.Len(t, specs, 3)

	assert.Equal(t, aperture.KindHorizontal, specs[0].Kind)
	require.NotNil(t, specs[0].Center)
	require.NotNil(t, specs[0].Width)
	assert.Equal(t, 5.0, *specs[0].Center)
	assert.Equal(t, 4.0, *specs[0].Width)

	assert.Equal(t, aperture.KindVertical, specs[1].Kind)

	assert.Equal(t, aperture.KindCircular, specs[2].Kind)
	require.NotNil(t, specs[2].CenterXY)
	assert.Equal(t, aperture.Point{X: 2, Y: 5}, *specs[2].CenterXY)
	require.NotNil(t, specs[2].Radius)
	assert.Equal(t, 2.0, *specs[2].Radius)
}

func TestParseSpecs_Errors(t *testing.T) {
	t.Parallel()

	specs, err := aperture.ParseSpecs(nil)
	require.NoError(t, err)
	assert.Empty(t, specs)

	_, err = aperture.ParseSpecs([]byte("- kind: triangular\n"))
	assert.ErrorIs(t, err, aperture.ErrUnknownKind)

	_, err = aperture.ParseSpecs([]byte("- kind: horizontal\n  center: 3\n"))
	assert.ErrorIs(t, err, aperture.ErrMissingParam)

	_, err = aperture.ParseSpecs([]byte("- kind: vertical\n  width: 3\n"))
	assert.ErrorIs(t, err, aperture.ErrMissingParam)

	_, err = aperture.ParseSpecs([]byte("- kind: circular\n  radios: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = aperture.ParseSpecs([]byte("kind: circular\n"))
	assert.Error(t, err, "top level must be a sequence")
}

// TestApplyAll_MatchesComposition checks a stack equals the hand-written chain.
func TestApplyAll_MatchesComposition(t *testing.T) {
	t.Parallel()

	specs, err := aperture.ParseSpecs([]byte(stackYAML))
	require.NoError(t, err)

	holo := counting(t, 10, 10)
	got, err := aperture.ApplyAll(holo, specs...)
	require.NoError(t, err)

	want, err := aperture.Horizontal(holo, 5, 4)
	require.NoError(t, err)
	want, err = aperture.Vertical(want, 1, 4)
	require.NoError(t, err)
	want, err = aperture.Circular(want, aperture.WithCenter(2, 5), aperture.WithRadius(2))
	require.NoError(t, err)

	ok, err := matrix.AllClose(got, want, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApplyAll_NoSpecsClones(t *testing.T) {
	t.Parallel()

	holo := ones(t, 2, 2)
	out, err := aperture.ApplyAll(holo)
	require.NoError(t, err)
	require.NoError(t, out.Set(0, 0, 7))

	v, err := holo.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = aperture.ApplyAll(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSpecApply(t *testing.T) {
	t.Parallel()

	holo := ones(t, 10, 10)
	c, w := 1.0, 4.0

	out, err := aperture.Spec{Kind: aperture.KindHorizontal, Center: &c, Width: &w}.Apply(holo)
	require.NoError(t, err)
	assert.Equal(t, span(0, 4), keptRows(t, out))

	// Circular without parameters uses the defaults.
	out, err = aperture.Spec{Kind: aperture.KindCircular}.Apply(holo)
	require.NoError(t, err)
	def, err := aperture.Circular(holo)
	require.NoError(t, err)
	assert.Equal(t, dump(t, def), dump(t, out))

	_, err = aperture.Spec{Kind: "hexagonal"}.Apply(holo)
	assert.ErrorIs(t, err, aperture.ErrUnknownKind)

	_, err = aperture.ApplyAll(holo, aperture.Spec{Kind: aperture.KindVertical, Center: &c})
	assert.ErrorIs(t, err, aperture.ErrMissingParam)
}
