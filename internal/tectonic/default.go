package tectonic

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// plateKind distinguishes the two base-elevation regimes a plate can have.
type plateKind int

const (
	plateOceanic plateKind = iota
	plateContinental
)

type plateSeed struct {
	x, y float64
	kind plateKind
	vx, vy float64 // drift vector, used to bias boundary folding
}

// DefaultDriver is the production Driver: a deterministic, in-process
// Voronoi-plate heightmap synthesizer. It never blocks on external state,
// so RunToCompletion finishes in a single Step.
type DefaultDriver struct{}

func (DefaultDriver) Create(p Params) (Handle, error) {
	h := &defaultHandle{params: p}
	h.build()
	return h, nil
}

type defaultHandle struct {
	params    Params
	elevation []float32
	plates    []uint16
	done      bool
}

func (h *defaultHandle) Step() {
	// The whole run is computed eagerly in build(); Step is a no-op once
	// finished, matching the idempotent contract external drivers promise.
	h.done = true
}

func (h *defaultHandle) IsFinished() bool { return h.done }

func (h *defaultHandle) Heightmap() []float32 { return h.elevation }

func (h *defaultHandle) PlatesMap() []uint16 { return h.plates }

func (h *defaultHandle) Destroy() {}

func (h *defaultHandle) build() {
	p := h.params
	w, ht := p.Width, p.Height
	src := rand.New(rand.NewSource(int64(p.Seed)))

	seeds := make([]plateSeed, p.NumPlates)
	for i := range seeds {
		kind := plateOceanic
		if src.Float64() < 0.4 {
			kind = plateContinental
		}
		angle := src.Float64() * 2 * math.Pi
		seeds[i] = plateSeed{
			x:    src.Float64() * float64(w),
			y:    src.Float64() * float64(ht),
			kind: kind,
			vx:   math.Cos(angle),
			vy:   math.Sin(angle),
		}
	}

	noiseGen := perlin.NewPerlin(2, 2, 3, p.NoiseSeed)

	elevation := make([]float32, w*ht)
	plates := make([]uint16, w*ht)

	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nearest, second, dNearest, dSecond := nearestTwoPlates(seeds, float64(x), float64(y))
			plates[idx] = uint16(nearest)

			base := 0.5
			if seeds[nearest].kind == plateContinental {
				base = 1.1
			}

			// Boundary folding: plates colliding head-on raise elevation,
			// plates converging obliquely or diverging barely change it.
			boundaryInfluence := 0.0
			if dSecond-dNearest < 3.0 {
				toward := dot(seeds[nearest].vx, seeds[nearest].vy, seeds[second].x-seeds[nearest].x, seeds[second].y-seeds[nearest].y)
				fold := p.FoldingRatio * float64(p.CycleCount) * 10
				if toward > 0 {
					boundaryInfluence = fold * (3.0 - (dSecond - dNearest)) / 3.0
				}
			}

			nx, ny := float64(x)/float64(w)*4, float64(y)/float64(ht)*4
			variation := noiseGen.Noise2D(nx, ny)*0.3 + noiseGen.Noise2D(nx*3, ny*3)*0.1

			elevation[idx] = float32(base + boundaryInfluence + variation)
		}
	}

	h.elevation = elevation
	h.plates = plates
}

func nearestTwoPlates(seeds []plateSeed, x, y float64) (nearest, second int, dNearest, dSecond float64) {
	dNearest, dSecond = math.Inf(1), math.Inf(1)
	nearest, second = 0, 0
	for i, s := range seeds {
		dx, dy := s.x-x, s.y-y
		d := math.Sqrt(dx*dx + dy*dy)
		if d < dNearest {
			second, dSecond = nearest, dNearest
			nearest, dNearest = i, d
		} else if d < dSecond {
			second, dSecond = i, d
		}
	}
	return
}

func dot(ax, ay, bx, by float64) float64 {
	nb := math.Sqrt(bx*bx + by*by)
	if nb == 0 {
		return 0
	}
	return (ax*bx + ay*by) / nb
}
