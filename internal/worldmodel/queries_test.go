package worldmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpTentFixture(t *testing.T) {
	points := [][2]float64{{-0.5, 0}, {0, 1}, {0.5, 0}}

	require.Equal(t, 0.0, Interp(points, -0.55))
	require.Equal(t, 0.0, Interp(points, 0.55))
	require.Equal(t, 1.0, Interp(points, 0))
	require.InDelta(t, 0.8, Interp(points, -0.1), 1e-9)
}

func TestInterpEmpty(t *testing.T) {
	require.Equal(t, 0.0, Interp(nil, 5))
}

func TestTilesAroundClipsAtBorder(t *testing.T) {
	w := New("t", 3, 3, 1, Params{})
	got := w.TilesAround(0, 0)
	require.ElementsMatch(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)
}

func TestTilesAroundInterior(t *testing.T) {
	w := New("t", 5, 5, 1, Params{})
	got := w.TilesAround(2, 2)
	require.Len(t, got, 9)
}

func TestAroundToroidalWrapsAndExcludesCenter(t *testing.T) {
	w := New("t", 4, 4, 1, Params{})
	got := w.AroundToroidal(0, 0)
	require.Len(t, got, 8)
	require.Contains(t, got, Point{X: 3, Y: 3})
	require.Contains(t, got, Point{X: 3, Y: 0})
	require.Contains(t, got, Point{X: 0, Y: 3})
	require.NotContains(t, got, Point{X: 0, Y: 0})
}

func TestRandomLandOnlyPicksLand(t *testing.T) {
	w := New("t", 100, 90, 1, Params{})
	w.Ocean = NewBoolGrid(100, 90)
	for y := 0; y < 90; y++ {
		for x := 0; x < 100; x++ {
			w.Ocean.Set(x, y, y >= x)
		}
	}

	picks := w.RandomLand(1000, 0)
	require.Len(t, picks, 1000)
	for _, p := range picks {
		require.False(t, w.IsOcean(p.X, p.Y))
	}
}

func TestRandomLandEmptyWhenAllOcean(t *testing.T) {
	w := New("t", 2, 2, 1, Params{})
	w.Ocean = NewBoolGrid(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			w.Ocean.Set(x, y, true)
		}
	}
	require.Nil(t, w.RandomLand(10, 1))
}

func TestRandomLandDeterministic(t *testing.T) {
	w := New("t", 6, 6, 1, Params{})
	w.Ocean = NewBoolGrid(6, 6)

	a := w.RandomLand(20, 42)
	b := w.RandomLand(20, 42)
	require.Equal(t, a, b)
}

func TestBandLookupsFallThroughToCatchAll(t *testing.T) {
	w := New("t", 1, 1, 1, Params{})
	w.Temperature = NewFloatGrid(1, 1)
	w.Temperature.Set(0, 0, 1000)
	require.Equal(t, TemperatureTropical, w.TemperatureBand(0, 0))

	w.Humidity = NewFloatGrid(1, 1)
	w.Humidity.Set(0, 0, 1000)
	require.Equal(t, HumiditySuperhumid, w.HumidityBand(0, 0))
}

func TestIsMountainExcludesOcean(t *testing.T) {
	w := New("t", 1, 1, 1, Params{})
	w.Ocean = NewBoolGrid(1, 1)
	w.Ocean.Set(0, 0, true)
	w.Elevation = NewFloatGrid(1, 1)
	w.Elevation.Set(0, 0, 100)
	w.Thresholds.SetElevation(ElevationMountain, 0.5)

	require.False(t, w.IsMountain(0, 0))
}
