// SPDX-License-Identifier: MIT
// Package grid_test contains shared fixtures for the grid tests.

package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/stretchr/testify/require"
)

// mustField builds a sizeI×sizeJ grid from row-major heights or fails the test.
func mustField(tb testing.TB, sizeI, sizeJ int, heights ...float32) *grid.HeightField {
	tb.Helper()
	hf, err := grid.NewFromHeights(sizeI, sizeJ, heights)
	require.NoError(tb, err)

	return hf
}

// square2 is the 2×2 fixture [0,1;2,3]: row i=0 holds 0,1 and row i=1 holds 2,3.
func square2(tb testing.TB) *grid.HeightField {
	tb.Helper()

	return mustField(tb, 2, 2, 0, 1, 2, 3)
}

// randomField fills a sizeI×sizeJ grid with deterministic pseudo-random heights.
func randomField(tb testing.TB, sizeI, sizeJ int, seed int64) *grid.HeightField {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	heights := make([]float32, sizeI*sizeJ)
	for k := range heights {
		heights[k] = rng.Float32()*200 - 100 // spread over [-100, 100)
	}

	return mustField(tb, sizeI, sizeJ, heights...)
}
