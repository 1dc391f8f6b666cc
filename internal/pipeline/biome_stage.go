package pipeline

import "worldcore/internal/worldmodel"

// seaDepthSeaCutoff separates the two ocean biomes: cells shallower than
// this sea-depth fraction read as the coastal Sea biome, deeper cells as
// Ocean.
const seaDepthSeaCutoff = 0.3

// BuildBiomes classifies land cells by the Holdridge temperature x humidity
// lookup, and ocean cells as Ocean or Sea depending on sea depth.
func BuildBiomes(w *worldmodel.World) {
	w.Biomes = worldmodel.NewBiomeGrid(w.Width, w.Height)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if w.IsOcean(x, y) {
				if w.SeaDepth.Get(x, y) < seaDepthSeaCutoff {
					w.Biomes.Set(x, y, worldmodel.BiomeSea)
				} else {
					w.Biomes.Set(x, y, worldmodel.BiomeOcean)
				}
				continue
			}
			biome := worldmodel.HoldridgeBiome(w.TemperatureBand(x, y), w.HumidityBand(x, y))
			w.Biomes.Set(x, y, biome)
		}
	}
}
