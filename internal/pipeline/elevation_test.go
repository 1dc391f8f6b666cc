package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/worldmodel"
)

func TestAddElevationNoiseIsDeterministic(t *testing.T) {
	build := func() *worldmodel.World {
		w := worldmodel.New("t", 12, 8, 1, worldmodel.Params{})
		w.Elevation = worldmodel.NewFloatGrid(12, 8)
		AddElevationNoise(w, 5)
		return w
	}
	a, b := build(), build()
	require.Equal(t, a.Elevation.Raw(), b.Elevation.Raw())
}

func TestAddElevationNoiseAddsToExistingBase(t *testing.T) {
	w := worldmodel.New("t", 6, 6, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			w.Elevation.Set(x, y, 5)
		}
	}
	AddElevationNoise(w, 5)

	// Noise amplitude is capped at 0.3, so every cell stays near its base.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			require.InDelta(t, 5, w.Elevation.Get(x, y), 0.31)
		}
	}
}

func TestFadeBordersPullsEdgeTowardOceanLevel(t *testing.T) {
	w := worldmodel.New("t", 10, 10, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			w.Elevation.Set(x, y, 5)
		}
	}

	FadeBorders(w, 3, 1.0)

	require.Equal(t, float32(1.0), w.Elevation.Get(0, 0)) // on the border: full pull to ocean level
	require.Equal(t, float32(5.0), w.Elevation.Get(5, 5))  // far from any edge: untouched
	mid := w.Elevation.Get(1, 5)
	require.Greater(t, mid, float32(1.0))
	require.Less(t, mid, float32(5.0))
}

func TestFadeBordersNoopWhenMarginNonPositive(t *testing.T) {
	w := worldmodel.New("t", 4, 4, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(4, 4)
	w.Elevation.Set(0, 0, 7)

	FadeBorders(w, 0, 1.0)
	require.Equal(t, float32(7), w.Elevation.Get(0, 0))
}
