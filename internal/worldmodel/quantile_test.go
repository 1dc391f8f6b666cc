package worldmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantileThresholdNoMask(t *testing.T) {
	g := NewFloatGrid(5, 1)
	for i, v := range []float32{1, 2, 3, 4, 5} {
		g.Set(i, 0, v)
	}
	// f=0.2 selects the value at or above the 80th percentile.
	got := QuantileThreshold(g, nil, 0.2)
	require.Equal(t, float32(4), got)
}

func TestQuantileThresholdExcludesOcean(t *testing.T) {
	g := NewFloatGrid(4, 1)
	for i, v := range []float32{10, 1, 2, 3} {
		g.Set(i, 0, v)
	}
	ocean := NewBoolGrid(4, 1)
	ocean.Set(0, 0, true) // exclude the 10

	got := QuantileThreshold(g, ocean, 1.0/3)
	require.Equal(t, float32(2), got)
}

func TestQuantileThresholdMismatchedMaskIgnored(t *testing.T) {
	g := NewFloatGrid(2, 1)
	g.Set(0, 0, 1)
	g.Set(1, 0, 2)
	mismatched := NewBoolGrid(3, 3)
	got := QuantileThreshold(g, mismatched, 0.5)
	require.Equal(t, float32(1), got)
}

func TestQuantileThresholdEmptyGridAfterMask(t *testing.T) {
	g := NewFloatGrid(2, 1)
	ocean := NewBoolGrid(2, 1)
	ocean.Set(0, 0, true)
	ocean.Set(1, 0, true)
	require.Equal(t, float32(0), QuantileThreshold(g, ocean, 0.5))
}
