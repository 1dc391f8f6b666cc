package worldmodel

import "math/rand"

// IsOcean returns the ocean layer bit at (x, y).
func (w *World) IsOcean(x, y int) bool {
	return w.Ocean != nil && w.Ocean.Get(x, y)
}

// IsMountain reports land whose elevation exceeds the mountain threshold.
func (w *World) IsMountain(x, y int) bool {
	if w.IsOcean(x, y) {
		return false
	}
	return w.Elevation.Get(x, y) > w.Thresholds.Elevation(ElevationMountain)
}

// TemperatureBand returns the first band whose threshold strictly exceeds
// the cell's temperature, iterating Polar..Tropical; Tropical is the
// unconditional catch-all.
func (w *World) TemperatureBand(x, y int) TemperatureBand {
	t := w.Temperature.Get(x, y)
	for b := TemperaturePolar; b < temperatureBandCount; b++ {
		if t < w.Thresholds.Temperature(b) {
			return b
		}
	}
	return TemperatureTropical
}

// HumidityBand returns the first band whose threshold strictly exceeds the
// cell's humidity, iterating Superarid..Superhumid.
func (w *World) HumidityBand(x, y int) HumidityBand {
	h := w.Humidity.Get(x, y)
	for b := HumiditySuperarid; b < humidityBandCount; b++ {
		if h < w.Thresholds.Humidity(b) {
			return b
		}
	}
	return HumiditySuperhumid
}

// PrecipitationBand returns the first band whose threshold strictly exceeds
// the cell's precipitation.
func (w *World) PrecipitationBand(x, y int) PrecipitationBand {
	p := w.Precipitation.Get(x, y)
	for b := PrecipitationLow; b < precipitationBandCount; b++ {
		if p < w.Thresholds.Precipitation(b) {
			return b
		}
	}
	return PrecipitationHigh
}

// PermeabilityBand returns the first band whose threshold strictly exceeds
// the cell's permeability.
func (w *World) PermeabilityBand(x, y int) PermeabilityBand {
	p := w.Permeability.Get(x, y)
	for b := PermeabilityLow; b < permeabilityBandCount; b++ {
		if p < w.Thresholds.Permeability(b) {
			return b
		}
	}
	return PermeabilityHigh
}

// WaterBandAt returns the first band whose threshold strictly exceeds the
// cell's water-map value.
func (w *World) WaterBandAt(x, y int) WaterBand {
	v := w.WaterMap.Get(x, y)
	for b := WaterCreek; b < waterBandCount; b++ {
		if v < w.Thresholds.Water(b) {
			return b
		}
	}
	return WaterMainRiver
}

// BiomeGroup looks up the coarse group for the biome at (x, y).
func (w *World) BiomeGroup(x, y int) BiomeGroup {
	return w.Biomes.Get(x, y).Group()
}

// RandomLand enumerates land cells in row-major order, then draws n
// independent uniform indices with a PRNG seeded by seed, returning that
// many land coordinates (with replacement). Returns an empty slice if there
// is no land.
func (w *World) RandomLand(n int, seed int64) []Point {
	var land []Point
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsOcean(x, y) {
				land = append(land, Point{X: x, Y: y})
			}
		}
	}
	if len(land) == 0 {
		return nil
	}
	src := rand.New(rand.NewSource(seed))
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = land[src.Intn(len(land))]
	}
	return out
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// TilesAround yields the 3x3 Chebyshev neighborhood of (x, y), clipped to
// grid bounds, non-wrapping. The center cell is included.
func (w *World) TilesAround(x, y int) []Point {
	var out []Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if w.Contains(nx, ny) {
				out = append(out, Point{X: nx, Y: ny})
			}
		}
	}
	return out
}

// AroundToroidal yields the 8-neighbor set of (x, y) with wrap semantics on
// both axes (the center cell is excluded).
func (w *World) AroundToroidal(x, y int) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w.Width + w.Width) % w.Width
			ny := ((y+dy)%w.Height + w.Height) % w.Height
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	return out
}

// Interp performs piecewise-linear interpolation over a set of (x, y)
// control points sorted by x, clamping outside the range to the edge
// values. Used by the tent-shaped latitude factor and the icecap freeze
// probability curve.
func Interp(points [][2]float64, x float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0][0] {
		return points[0][1]
	}
	last := points[len(points)-1]
	if x >= last[0] {
		return last[1]
	}
	for i := 0; i < len(points)-1; i++ {
		x0, y0 := points[i][0], points[i][1]
		x1, y1 := points[i+1][0], points[i+1][1]
		if x >= x0 && x <= x1 {
			if x1 == x0 {
				return y0
			}
			t := (x - x0) / (x1 - x0)
			return y0 + t*(y1-y0)
		}
	}
	return last[1]
}
