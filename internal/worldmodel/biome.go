package worldmodel

// Biome is the categorical classification assigned to every cell: Ocean or
// Sea on ocean cells, one of the Holdridge-derived land biomes or BareRock
// otherwise.
type Biome string

const (
	BiomeOcean    Biome = "Ocean"
	BiomeSea      Biome = "Sea"
	BiomeBareRock Biome = "BareRock"

	BiomePolarDesert Biome = "PolarDesert"
	BiomeIce         Biome = "Ice"

	BiomeSubpolarDryTundra   Biome = "SubpolarDryTundra"
	BiomeSubpolarMoistTundra Biome = "SubpolarMoistTundra"
	BiomeSubpolarWetTundra   Biome = "SubpolarWetTundra"
	BiomeSubpolarRainTundra  Biome = "SubpolarRainTundra"

	BiomeBorealDesert      Biome = "BorealDesert"
	BiomeBorealDryScrub    Biome = "BorealDryScrub"
	BiomeBorealMoistForest Biome = "BorealMoistForest"
	BiomeBorealWetForest   Biome = "BorealWetForest"
	BiomeBorealRainForest  Biome = "BorealRainForest"

	BiomeCoolTemperateDesert      Biome = "CoolTemperateDesert"
	BiomeCoolTemperateDesertScrub Biome = "CoolTemperateDesertScrub"
	BiomeCoolTemperateSteppe      Biome = "CoolTemperateSteppe"
	BiomeCoolTemperateMoistForest Biome = "CoolTemperateMoistForest"
	BiomeCoolTemperateWetForest   Biome = "CoolTemperateWetForest"
	BiomeCoolTemperateRainForest  Biome = "CoolTemperateRainForest"

	BiomeWarmTemperateDesert      Biome = "WarmTemperateDesert"
	BiomeWarmTemperateDesertScrub Biome = "WarmTemperateDesertScrub"
	BiomeWarmTemperateThornScrub  Biome = "WarmTemperateThornScrub"
	BiomeWarmTemperateDryForest   Biome = "WarmTemperateDryForest"
	BiomeWarmTemperateMoistForest Biome = "WarmTemperateMoistForest"
	BiomeWarmTemperateWetForest   Biome = "WarmTemperateWetForest"
	BiomeWarmTemperateRainForest  Biome = "WarmTemperateRainForest"

	BiomeSubtropicalDesert        Biome = "SubtropicalDesert"
	BiomeSubtropicalDesertScrub   Biome = "SubtropicalDesertScrub"
	BiomeSubtropicalThornWoodland Biome = "SubtropicalThornWoodland"
	BiomeSubtropicalDryForest     Biome = "SubtropicalDryForest"
	BiomeSubtropicalMoistForest   Biome = "SubtropicalMoistForest"
	BiomeSubtropicalWetForest     Biome = "SubtropicalWetForest"
	BiomeSubtropicalRainForest    Biome = "SubtropicalRainForest"

	BiomeTropicalDesert         Biome = "TropicalDesert"
	BiomeTropicalDesertScrub    Biome = "TropicalDesertScrub"
	BiomeTropicalThornWoodland  Biome = "TropicalThornWoodland"
	BiomeTropicalVeryDryForest  Biome = "TropicalVeryDryForest"
	BiomeTropicalDryForest      Biome = "TropicalDryForest"
	BiomeTropicalMoistForest    Biome = "TropicalMoistForest"
	BiomeTropicalWetForest      Biome = "TropicalWetForest"
	BiomeTropicalRainForest     Biome = "TropicalRainForest"
)

// holdridge is the fixed 7x8 temperature x humidity lookup table. Rows are
// indexed by TemperatureBand, columns by HumidityBand, both in their
// natural enum order.
var holdridge = [temperatureBandCount][humidityBandCount]Biome{
	TemperaturePolar: {
		BiomePolarDesert, BiomeIce, BiomeIce, BiomeIce,
		BiomeIce, BiomeIce, BiomeIce, BiomeIce,
	},
	TemperatureAlpine: {
		BiomeSubpolarDryTundra, BiomeSubpolarMoistTundra, BiomeSubpolarWetTundra, BiomeSubpolarRainTundra,
		BiomeSubpolarRainTundra, BiomeSubpolarRainTundra, BiomeSubpolarRainTundra, BiomeSubpolarRainTundra,
	},
	TemperatureBoreal: {
		BiomeBorealDesert, BiomeBorealDryScrub, BiomeBorealMoistForest, BiomeBorealWetForest,
		BiomeBorealRainForest, BiomeBorealRainForest, BiomeBorealRainForest, BiomeBorealRainForest,
	},
	TemperatureCool: {
		BiomeCoolTemperateDesert, BiomeCoolTemperateDesertScrub, BiomeCoolTemperateSteppe, BiomeCoolTemperateMoistForest,
		BiomeCoolTemperateWetForest, BiomeCoolTemperateRainForest, BiomeCoolTemperateRainForest, BiomeCoolTemperateRainForest,
	},
	TemperatureWarm: {
		BiomeWarmTemperateDesert, BiomeWarmTemperateDesertScrub, BiomeWarmTemperateThornScrub, BiomeWarmTemperateDryForest,
		BiomeWarmTemperateMoistForest, BiomeWarmTemperateWetForest, BiomeWarmTemperateRainForest, BiomeWarmTemperateRainForest,
	},
	TemperatureSubtropical: {
		BiomeSubtropicalDesert, BiomeSubtropicalDesertScrub, BiomeSubtropicalThornWoodland, BiomeSubtropicalDryForest,
		BiomeSubtropicalMoistForest, BiomeSubtropicalWetForest, BiomeSubtropicalRainForest, BiomeSubtropicalRainForest,
	},
	TemperatureTropical: {
		BiomeTropicalDesert, BiomeTropicalDesertScrub, BiomeTropicalThornWoodland, BiomeTropicalVeryDryForest,
		BiomeTropicalDryForest, BiomeTropicalMoistForest, BiomeTropicalWetForest, BiomeTropicalRainForest,
	},
}

// HoldridgeBiome looks up the land biome for a (temperature, humidity) band
// pair. Both bands are always in range because TemperatureBand/HumidityBand
// lookups always fall through to their last variant.
func HoldridgeBiome(t TemperatureBand, h HumidityBand) Biome {
	if t < 0 || int(t) >= len(holdridge) || h < 0 || int(h) >= len(holdridge[0]) {
		return BiomeBareRock
	}
	return holdridge[t][h]
}

// BiomeGroup is the coarse, rendering-oriented classification of a Biome.
type BiomeGroup string

const (
	GroupBorealForest        BiomeGroup = "BorealForest"
	GroupCoolTemperateForest BiomeGroup = "CoolTemperateForest"
	GroupWarmTemperateForest BiomeGroup = "WarmTemperateForest"
	GroupTropicalDryForest   BiomeGroup = "TropicalDryForest"
	GroupTundra              BiomeGroup = "Tundra"
	GroupIceland             BiomeGroup = "Iceland"
	GroupJungle              BiomeGroup = "Jungle"
	GroupSavanna             BiomeGroup = "Savanna"
	GroupHotDesert           BiomeGroup = "HotDesert"
	GroupColdParklands       BiomeGroup = "ColdParklands"
	GroupSteppe              BiomeGroup = "Steppe"
	GroupCoolDesert          BiomeGroup = "CoolDesert"
	GroupChaparral           BiomeGroup = "Chaparral"
	GroupNone                BiomeGroup = "None"
)

// biomeGroups maps every biome variant (land biomes, BareRock, Ocean, Sea)
// to its coarse group. Any biome absent from this table reports GroupNone.
var biomeGroups = map[Biome]BiomeGroup{
	BiomePolarDesert: GroupIceland,
	BiomeIce:         GroupIceland,

	BiomeSubpolarDryTundra:   GroupColdParklands,
	BiomeSubpolarMoistTundra: GroupTundra,
	BiomeSubpolarWetTundra:   GroupTundra,
	BiomeSubpolarRainTundra:  GroupTundra,

	BiomeBorealDesert:      GroupColdParklands,
	BiomeBorealDryScrub:    GroupColdParklands,
	BiomeBorealMoistForest: GroupBorealForest,
	BiomeBorealWetForest:   GroupBorealForest,
	BiomeBorealRainForest:  GroupBorealForest,

	BiomeCoolTemperateDesert:      GroupCoolDesert,
	BiomeCoolTemperateDesertScrub: GroupCoolDesert,
	BiomeCoolTemperateSteppe:      GroupSteppe,
	BiomeCoolTemperateMoistForest: GroupCoolTemperateForest,
	BiomeCoolTemperateWetForest:   GroupCoolTemperateForest,
	BiomeCoolTemperateRainForest:  GroupCoolTemperateForest,

	BiomeWarmTemperateDesert:      GroupHotDesert,
	BiomeWarmTemperateDesertScrub: GroupHotDesert,
	BiomeWarmTemperateThornScrub:  GroupChaparral,
	BiomeWarmTemperateDryForest:   GroupChaparral,
	BiomeWarmTemperateMoistForest: GroupWarmTemperateForest,
	BiomeWarmTemperateWetForest:   GroupWarmTemperateForest,
	BiomeWarmTemperateRainForest:  GroupWarmTemperateForest,

	BiomeSubtropicalDesert:        GroupHotDesert,
	BiomeSubtropicalDesertScrub:   GroupHotDesert,
	BiomeSubtropicalThornWoodland: GroupSavanna,
	BiomeSubtropicalDryForest:     GroupTropicalDryForest,
	BiomeSubtropicalMoistForest:   GroupJungle,
	BiomeSubtropicalWetForest:     GroupJungle,
	BiomeSubtropicalRainForest:    GroupJungle,

	BiomeTropicalDesert:        GroupHotDesert,
	BiomeTropicalDesertScrub:   GroupHotDesert,
	BiomeTropicalThornWoodland: GroupSavanna,
	BiomeTropicalVeryDryForest: GroupSavanna,
	BiomeTropicalDryForest:     GroupTropicalDryForest,
	BiomeTropicalMoistForest:   GroupJungle,
	BiomeTropicalWetForest:     GroupJungle,
	BiomeTropicalRainForest:    GroupJungle,

	BiomeBareRock: GroupNone,
	BiomeOcean:    GroupNone,
	BiomeSea:      GroupNone,
}

// Group returns the coarse biome group for b, or GroupNone if b is absent
// from the table (the fallback the spec reserves for any cell failing every
// band check).
func (b Biome) Group() BiomeGroup {
	if g, ok := biomeGroups[b]; ok {
		return g
	}
	return GroupNone
}
