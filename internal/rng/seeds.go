// Package rng derives the deterministic per-stage sub-seeds the pipeline
// depends on for reproducibility, plus two small helpers over math/rand:
// a half-width-at-half-maximum normal draw and a clamp.
package rng

import "math/rand"

// StageSeeds holds the nine sub-seeds drawn, in a fixed order, from the
// world seed. The order of the fields mirrors the order the values must be
// drawn in; never reorder the Draw calls in NewStageSeeds.
type StageSeeds struct {
	Precipitation int64
	Erosion       int64
	Watermap      int64
	Irrigation    int64
	Temperature   int64
	Humidity      int64
	Permeability  int64
	Biome         int64
	Icecap        int64
}

// NewStageSeeds draws the nine stage sub-seeds from a PRNG seeded by
// worldSeed, in the fixed order Precipitation, Erosion, Watermap,
// Irrigation, Temperature, Humidity, Permeability, Biome, Icecap.
func NewStageSeeds(worldSeed uint32) StageSeeds {
	src := rand.New(rand.NewSource(int64(worldSeed)))
	return StageSeeds{
		Precipitation: int64(src.Uint32()),
		Erosion:       int64(src.Uint32()),
		Watermap:      int64(src.Uint32()),
		Irrigation:    int64(src.Uint32()),
		Temperature:   int64(src.Uint32()),
		Humidity:      int64(src.Uint32()),
		Permeability:  int64(src.Uint32()),
		Biome:         int64(src.Uint32()),
		Icecap:        int64(src.Uint32()),
	}
}

// PrePipelineSeeds are the two draws consumed before the stage fan-out, from
// a freshly seeded PRNG at generation start: elevation noise, then
// post-plate noise.
type PrePipelineSeeds struct {
	ElevationNoise int64
	PostPlateNoise int64
}

// NewPrePipelineSeeds draws the two pre-pipeline seeds in fixed order.
func NewPrePipelineSeeds(worldSeed uint32) PrePipelineSeeds {
	src := rand.New(rand.NewSource(int64(worldSeed)))
	return PrePipelineSeeds{
		ElevationNoise: int64(src.Uint32()),
		PostPlateNoise: int64(src.Uint32()),
	}
}

// NormalHWHM draws a single Normal(mean, hwhm/sqrt(2 ln 2)) sample.
func NormalHWHM(src *rand.Rand, mean, hwhm float64) float64 {
	const sqrt2ln2 = 1.1774100226
	sigma := hwhm / sqrt2ln2
	return mean + src.NormFloat64()*sigma
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
