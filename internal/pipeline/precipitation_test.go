package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/worldmodel"
)

func TestMinMaxNormalizeRescalesToUnitRange(t *testing.T) {
	g := worldmodel.NewFloatGrid(3, 1)
	g.Set(0, 0, -5)
	g.Set(1, 0, 0)
	g.Set(2, 0, 5)

	out := minMaxNormalize(g)
	require.Equal(t, float32(0), out.Get(0, 0))
	require.Equal(t, float32(0.5), out.Get(1, 0))
	require.Equal(t, float32(1), out.Get(2, 0))
	// Source is untouched.
	require.Equal(t, float32(-5), g.Get(0, 0))
}

func TestMinMaxNormalizeFlatGridIsZero(t *testing.T) {
	g := worldmodel.NewFloatGrid(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			g.Set(x, y, 3)
		}
	}
	out := minMaxNormalize(g)
	require.Equal(t, float32(0), out.Get(0, 0))
	require.Equal(t, float32(0), out.Get(1, 1))
}

func TestRenormalizeSignedRescalesInPlace(t *testing.T) {
	g := worldmodel.NewFloatGrid(3, 1)
	g.Set(0, 0, 0)
	g.Set(1, 0, 5)
	g.Set(2, 0, 10)

	renormalizeSigned(g)
	require.Equal(t, float32(-1), g.Get(0, 0))
	require.Equal(t, float32(0), g.Get(1, 0))
	require.Equal(t, float32(1), g.Get(2, 0))
}

func TestBuildPrecipitationStaysWithinSignedRange(t *testing.T) {
	w := worldmodel.New("t", 12, 8, 1, worldmodel.Params{})
	w.Temperature = worldmodel.NewFloatGrid(12, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			w.Temperature.Set(x, y, float32(x+y))
		}
	}

	BuildPrecipitation(w, 3, 1.25, 0.2)

	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			v := w.Precipitation.Get(x, y)
			require.GreaterOrEqual(t, v, float32(-1))
			require.LessOrEqual(t, v, float32(1))
		}
	}
}
