package worldmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHoldridgeBiomeCoversEveryBandPair(t *testing.T) {
	for t1 := TemperaturePolar; t1 <= TemperatureTropical; t1++ {
		for h := HumiditySuperarid; h <= HumiditySuperhumid; h++ {
			b := HoldridgeBiome(t1, h)
			require.NotEmpty(t, b)
			require.NotEqual(t, BiomeBareRock, b)
		}
	}
}

func TestHoldridgeBiomeOutOfRangeFallsBackToBareRock(t *testing.T) {
	require.Equal(t, BiomeBareRock, HoldridgeBiome(-1, 0))
	require.Equal(t, BiomeBareRock, HoldridgeBiome(0, humidityBandCount+5))
}

func TestHoldridgeBiomeMatchesKnownRowAssignments(t *testing.T) {
	cases := []struct {
		t    TemperatureBand
		h    HumidityBand
		want Biome
	}{
		{TemperaturePolar, HumiditySuperarid, BiomePolarDesert},
		{TemperaturePolar, HumidityPerarid, BiomeIce},
		{TemperaturePolar, HumiditySuperhumid, BiomeIce},
		{TemperatureAlpine, HumiditySuperarid, BiomeSubpolarDryTundra},
		{TemperatureAlpine, HumidityPerarid, BiomeSubpolarMoistTundra},
		{TemperatureAlpine, HumidityArid, BiomeSubpolarWetTundra},
		{TemperatureAlpine, HumiditySemiarid, BiomeSubpolarRainTundra},
		{TemperatureAlpine, HumiditySuperhumid, BiomeSubpolarRainTundra},
		{TemperatureBoreal, HumiditySuperarid, BiomeBorealDesert},
		{TemperatureBoreal, HumidityPerarid, BiomeBorealDryScrub},
		{TemperatureBoreal, HumidityArid, BiomeBorealMoistForest},
		{TemperatureBoreal, HumiditySemiarid, BiomeBorealWetForest},
		{TemperatureBoreal, HumiditySubhumid, BiomeBorealRainForest},
		{TemperatureCool, HumiditySemiarid, BiomeCoolTemperateMoistForest},
		{TemperatureCool, HumiditySubhumid, BiomeCoolTemperateWetForest},
		{TemperatureCool, HumidityHumid, BiomeCoolTemperateRainForest},
	}
	for _, c := range cases {
		require.Equal(t, c.want, HoldridgeBiome(c.t, c.h), "t=%v h=%v", c.t, c.h)
	}
}

func TestBiomeGroupKnownAndUnknown(t *testing.T) {
	require.Equal(t, GroupJungle, BiomeTropicalRainForest.Group())
	require.Equal(t, GroupNone, BiomeOcean.Group())
	require.Equal(t, GroupNone, Biome("not-a-real-biome").Group())
	require.Equal(t, GroupIceland, BiomeIce.Group())
	require.Equal(t, GroupColdParklands, BiomeSubpolarDryTundra.Group())
	require.Equal(t, GroupTundra, BiomeSubpolarMoistTundra.Group())
	require.Equal(t, GroupChaparral, BiomeWarmTemperateDryForest.Group())
	require.Equal(t, GroupSavanna, BiomeSubtropicalThornWoodland.Group())
	require.Equal(t, GroupSavanna, BiomeTropicalVeryDryForest.Group())
}
