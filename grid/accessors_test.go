// SPDX-License-Identifier: MIT
// Package grid_test covers bounds-checked point access.

package grid_test

import (
	"testing"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/stretchr/testify/require"
)

// TestZMatchesData verifies Z(j,i) == Data(j,i).Z at every coordinate.
func TestZMatchesData(t *testing.T) {
	hf := randomField(t, 5, 7, 1337)
	for i := 0; i < hf.SizeI(); i++ {
		for j := 0; j < hf.SizeJ(); j++ {
			v, err := hf.Data(j, i)
			require.NoError(t, err)
			z, err := hf.Z(j, i)
			require.NoError(t, err)
			require.Equal(t, v.Z, z)
		}
	}
}

// TestAccessOutOfRange ensures every accessor returns ErrOutOfRange instead of panicking.
func TestAccessOutOfRange(t *testing.T) {
	hf := mustField(t, 2, 3, 1, 2, 3, 4, 5, 6) // sizeI=2, sizeJ=3

	cases := [][2]int{
		{-1, 0}, // negative j
		{0, -1}, // negative i
		{3, 0},  // j == sizeJ
		{0, 2},  // i == sizeI
	}
	for _, c := range cases {
		_, err := hf.Data(c[0], c[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)

		_, err = hf.MutableData(c[0], c[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)

		_, err = hf.Z(c[0], c[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)

		err = hf.SetZ(c[0], c[1], 1)
		require.ErrorIs(t, err, grid.ErrOutOfRange)
	}

	// j indexes columns: (2, 1) is valid even though 2 >= sizeI.
	z, err := hf.Z(2, 1)
	require.NoError(t, err)
	require.Equal(t, float32(6), z)
}

// TestErrorContext checks the wrapped message names the method and indices.
func TestErrorContext(t *testing.T) {
	hf := square2(t)
	_, err := hf.Z(5, 1)
	require.EqualError(t, err, "HeightField.Z(5,1): grid: index out of range")
}

// TestMutableDataWritesThrough verifies in-place edits through the pointer and SetZ.
func TestMutableDataWritesThrough(t *testing.T) {
	hf := square2(t)

	v, err := hf.MutableData(1, 0)
	require.NoError(t, err)
	v.Z = 42 // write through the pointer

	z, err := hf.Z(1, 0)
	require.NoError(t, err)
	require.Equal(t, float32(42), z)

	require.NoError(t, hf.SetZ(0, 1, -7))
	d, err := hf.Data(0, 1)
	require.NoError(t, err)
	require.Equal(t, float32(-7), d.Z)

	d.Z = 100 // Data returns a copy
	z, _ = hf.Z(0, 1)
	require.Equal(t, float32(-7), z)
}

// TestCloneIndependence ensures Clone shares no storage.
func TestCloneIndependence(t *testing.T) {
	hf := square2(t)
	clone := hf.Clone()
	require.NoError(t, clone.SetZ(0, 0, 9))

	orig, _ := hf.Z(0, 0)
	cz, _ := clone.Z(0, 0)
	require.Equal(t, float32(0), orig)
	require.Equal(t, float32(9), cz)
	require.Equal(t, hf.SizeI(), clone.SizeI())
	require.Equal(t, hf.SizeJ(), clone.SizeJ())
}

// TestVerticesAndHeightsAreCopies checks the flat exports.
func TestVerticesAndHeightsAreCopies(t *testing.T) {
	hf := square2(t)

	heights := hf.Heights()
	require.Equal(t, []float32{0, 1, 2, 3}, heights)
	heights[0] = 50

	vs := hf.Vertices()
	require.Len(t, vs, 4)
	vs[1].Z = 50

	z0, _ := hf.Z(0, 0)
	z1, _ := hf.Z(1, 0)
	require.Equal(t, float32(0), z0)
	require.Equal(t, float32(1), z1)

	empty, err := grid.New(0, 0)
	require.NoError(t, err)
	require.Nil(t, empty.Vertices())
	require.Nil(t, empty.Heights())
}

// TestStringOutput checks the debug formatting.
func TestStringOutput(t *testing.T) {
	hf := mustField(t, 2, 2, 0, 1.5, 2, -3)
	require.Equal(t, "[0, 1.5]\n[2, -3]\n", hf.String())
}
