// Package tectonic defines the external plate-driver boundary the
// generation pipeline treats as a black box, plus a deterministic in-process
// implementation so the pipeline runs without a separate process.
package tectonic

import "worldcore/internal/apperrors"

// Params configures a driver run. Field names and defaults mirror the
// persisted-world defaults the rest of the pipeline is built to reproduce.
type Params struct {
	Seed           uint32
	Width          int
	Height         int
	SeaLevel       float64
	ErosionPeriod  int
	FoldingRatio   float64
	AggrOverlapAbs float64
	AggrOverlapRel float64
	CycleCount     int
	NumPlates      int

	// NoiseSeed is the pre-pipeline "post-plate noise" draw; it seeds the
	// variation noise layered over the plate-derived base elevation so that
	// draw order (not the plate seed itself) governs its determinism.
	NoiseSeed int64
}

// Handle identifies one in-flight driver run.
type Handle interface {
	// Step advances the simulation by one iteration. Idempotent once finished.
	Step()
	// IsFinished reports whether further Step calls would have no effect.
	IsFinished() bool
	// Heightmap returns the row-major elevation grid, width*height long.
	Heightmap() []float32
	// PlatesMap returns the row-major plate-index grid, width*height long.
	PlatesMap() []uint16
	// Destroy releases any resources held by the handle.
	Destroy()
}

// Driver creates plate-simulation runs. DefaultDriver is the production
// implementation; tests substitute a fixture driver through the same
// interface, the way this codebase's generator services swap their
// dependency-injected generators.
type Driver interface {
	Create(p Params) (Handle, error)
}

// RunToCompletion drives handle to completion and returns its final maps.
// This is the single call-site the pipeline's tectonic-ingest stage needs;
// everything else about plate simulation stays behind the Driver interface.
func RunToCompletion(d Driver, p Params) (elevation []float32, plates []uint16, err error) {
	h, err := d.Create(p)
	if err != nil {
		return nil, nil, apperrors.WrapTectonicDriver(err)
	}
	defer h.Destroy()

	const maxIterations = 100_000
	for i := 0; !h.IsFinished(); i++ {
		if i >= maxIterations {
			return nil, nil, apperrors.WrapTectonicDriver(errIterationCap)
		}
		h.Step()
	}
	return h.Heightmap(), h.PlatesMap(), nil
}

var errIterationCap = driverError("tectonic driver did not converge")

type driverError string

func (e driverError) Error() string { return string(e) }
