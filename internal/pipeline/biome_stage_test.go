package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/worldmodel"
)

func TestBuildBiomesOceanSplitsByDepth(t *testing.T) {
	w := worldmodel.New("t", 2, 1, 1, worldmodel.Params{})
	w.Ocean = worldmodel.NewBoolGrid(2, 1)
	w.Ocean.Set(0, 0, true)
	w.Ocean.Set(1, 0, true)
	w.SeaDepth = worldmodel.NewFloatGrid(2, 1)
	w.SeaDepth.Set(0, 0, 0.1) // shallow
	w.SeaDepth.Set(1, 0, 0.9) // deep
	w.Temperature = worldmodel.NewFloatGrid(2, 1)
	w.Humidity = worldmodel.NewFloatGrid(2, 1)

	BuildBiomes(w)

	require.Equal(t, worldmodel.BiomeSea, w.Biomes.Get(0, 0))
	require.Equal(t, worldmodel.BiomeOcean, w.Biomes.Get(1, 0))
}

func TestBuildBiomesLandUsesHoldridge(t *testing.T) {
	w := worldmodel.New("t", 1, 1, 1, worldmodel.Params{})
	w.Ocean = worldmodel.NewBoolGrid(1, 1)
	w.Temperature = worldmodel.NewFloatGrid(1, 1)
	w.Humidity = worldmodel.NewFloatGrid(1, 1)
	w.Temperature.Set(0, 0, 1000) // falls through to Tropical
	w.Humidity.Set(0, 0, 1000)    // falls through to Superhumid

	BuildBiomes(w)

	require.Equal(t, worldmodel.BiomeTropicalRainForest, w.Biomes.Get(0, 0))
}

func TestBuildHumidityFormula(t *testing.T) {
	w := worldmodel.New("t", 1, 1, 1, worldmodel.Params{})
	w.Ocean = worldmodel.NewBoolGrid(1, 1)
	w.Precipitation = worldmodel.NewFloatGrid(1, 1)
	w.Irrigation = worldmodel.NewFloatGrid(1, 1)
	w.Precipitation.Set(0, 0, 1.0)
	w.Irrigation.Set(0, 0, 0.2)

	BuildHumidity(w)

	require.InDelta(t, (1.0-3*0.2)/4, w.Humidity.Get(0, 0), 1e-6)
}
