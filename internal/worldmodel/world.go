// Package worldmodel owns the World aggregate: grid layers, threshold
// tables, and the derived queries every pipeline stage and consumer share.
package worldmodel

import "github.com/google/uuid"

// GenerationLevel gates how far the pipeline runs.
type GenerationLevel int

const (
	PlatesOnly GenerationLevel = iota
	Precipitations
	Full
)

func (l GenerationLevel) String() string {
	switch l {
	case PlatesOnly:
		return "plates"
	case Precipitations:
		return "precipitations"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Params are the generation parameters fixed for a world's lifetime.
type Params struct {
	PlateCount  int
	OceanLevel  float64
	Level       GenerationLevel
	GammaValue  float64
	GammaOffset float64
}

// World is the root aggregate: grid layers populated monotonically by
// pipeline stages, plus the threshold tables those stages compute and later
// stages consume. No layer is ever cleared once written.
type World struct {
	ID     uuid.UUID
	Name   string
	Width  int
	Height int
	Seed   uint32
	Params Params

	TemperatureBreakpoints [6]float64
	HumidityBreakpoints    [7]float64

	Thresholds *Thresholds

	Elevation     *FloatGrid
	Plates        *Uint16Grid
	Ocean         *BoolGrid
	SeaDepth      *FloatGrid
	Temperature   *FloatGrid
	Precipitation *FloatGrid
	Permeability  *FloatGrid
	Irrigation    *FloatGrid
	WaterMap      *FloatGrid
	RiverMap      *FloatGrid
	LakeMap       *FloatGrid
	Humidity      *FloatGrid
	Icecap        *FloatGrid
	Biomes        *BiomeGrid

	// FlowDirection is internal hydrology state (direction of steepest
	// 4-neighbor descent per cell); exposed so the hydrology package can
	// populate it without worldmodel depending on hydrology.
	FlowDirection []Direction
}

// Direction is one of the four cardinal flow directions, or Center for a
// local minimum with no lower 4-neighbor.
type Direction int

const (
	Center Direction = iota
	North
	East
	South
	West
)

// New creates an empty world: dimensions and identity fixed, no layers
// allocated yet. Stages allocate their own layers at first write.
func New(name string, width, height int, seed uint32, params Params) *World {
	return &World{
		ID:     uuid.New(),
		Name:   name,
		Width:  width,
		Height: height,
		Seed:   seed,
		Params: params,

		TemperatureBreakpoints: [6]float64{0.126, 0.235, 0.406, 0.561, 0.634, 0.876},
		HumidityBreakpoints:    [7]float64{0.059, 0.222, 0.493, 0.764, 0.927, 0.986, 0.998},

		Thresholds: NewThresholds(),
	}
}

// Contains reports whether (x, y) lies within the grid bounds.
func (w *World) Contains(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// HasElevation through HasBiomes are "present" predicates: earlier stages
// must have run for the corresponding layer to be populated.
func (w *World) HasElevation() bool     { return w.Elevation != nil }
func (w *World) HasPlates() bool        { return w.Plates != nil }
func (w *World) HasOcean() bool         { return w.Ocean != nil }
func (w *World) HasSeaDepth() bool      { return w.SeaDepth != nil }
func (w *World) HasTemperature() bool   { return w.Temperature != nil }
func (w *World) HasPrecipitation() bool { return w.Precipitation != nil }
func (w *World) HasErosion() bool       { return w.RiverMap != nil }
func (w *World) HasWaterMap() bool      { return w.WaterMap != nil }
func (w *World) HasIrrigation() bool    { return w.Irrigation != nil }
func (w *World) HasHumidity() bool      { return w.Humidity != nil }
func (w *World) HasPermeability() bool  { return w.Permeability != nil }
func (w *World) HasBiomes() bool        { return w.Biomes != nil }
func (w *World) HasIcecap() bool        { return w.Icecap != nil }
