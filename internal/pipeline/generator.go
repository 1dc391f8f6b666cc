package pipeline

import (
	"context"

	"worldcore/internal/hydrology"
	"worldcore/internal/logging"
	"worldcore/internal/metrics"
	"worldcore/internal/rng"
	"worldcore/internal/tectonic"
	"worldcore/internal/worldmodel"
)

// Generator runs the full generation pipeline over a world, gated by the
// world's requested GenerationLevel.
type Generator struct {
	driver  tectonic.Driver
	metrics *metrics.Metrics
}

// Option configures a Generator.
type Option func(*Generator)

// WithDriver overrides the tectonic driver, the way this codebase's other
// generator services accept dependency-injected collaborators. Defaults to
// tectonic.DefaultDriver{}.
func WithDriver(d tectonic.Driver) Option {
	return func(g *Generator) { g.driver = d }
}

// WithMetrics attaches a prometheus collector set. Stage durations and
// completed-world counts are recorded against it. Omitting this option
// leaves metrics collection a no-op.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator builds a Generator with tectonic.DefaultDriver{} unless
// overridden by WithDriver.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{driver: tectonic.DefaultDriver{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateParams are the inputs a single Generate call needs.
type GenerateParams struct {
	Name        string
	Width       int
	Height      int
	Seed        uint32
	PlateCount  int
	OceanLevel  float64
	Level       worldmodel.GenerationLevel
	GammaValue  float64
	GammaOffset float64
	FadeBorders bool

	Tectonic tectonic.Params // Width/Height/Seed/SeaLevel/NumPlates overwritten from the fields above
}

// Generate runs every stage the requested level covers and returns the
// populated world. ctx is checked between the major phases (before
// tectonic ingest, ocean initialization, temperature and hydrology), not
// before every stage; cancellation aborts with the context's error.
func (g *Generator) Generate(ctx context.Context, p GenerateParams) (*worldmodel.World, error) {
	world := worldmodel.New(p.Name, p.Width, p.Height, p.Seed, worldmodel.Params{
		PlateCount:  p.PlateCount,
		OceanLevel:  p.OceanLevel,
		Level:       p.Level,
		GammaValue:  p.GammaValue,
		GammaOffset: p.GammaOffset,
	})
	ctx = logging.WithRun(ctx, world.ID)

	if g.metrics != nil {
		g.metrics.ActiveRuns.Inc()
		defer g.metrics.ActiveRuns.Dec()
	}

	pre := rng.NewPrePipelineSeeds(p.Seed)
	stages := rng.NewStageSeeds(p.Seed)

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	if err := g.ingestTectonics(world, p, pre); err != nil {
		return nil, err
	}

	CenterLand(world)
	AddElevationNoise(world, pre.ElevationNoise)
	if p.FadeBorders {
		FadeBorders(world, world.Width/20+1, p.OceanLevel)
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	InitOcean(world, p.OceanLevel)

	if world.Params.Level == worldmodel.PlatesOnly {
		g.countGenerated(world.Params.Level)
		return world, nil
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	done := g.timer(ctx, "temperature")
	BuildTemperature(world, stages.Temperature)
	done()

	done = g.timer(ctx, "precipitation")
	BuildPrecipitation(world, stages.Precipitation, p.GammaValue, p.GammaOffset)
	done()

	if world.Params.Level == worldmodel.Precipitations {
		g.countGenerated(world.Params.Level)
		return world, nil
	}

	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	g.runHydrology(ctx, world, stages)

	done = g.timer(ctx, "humidity")
	BuildHumidity(world)
	done()

	done = g.timer(ctx, "permeability")
	BuildPermeability(world, stages.Permeability)
	done()

	done = g.timer(ctx, "biome")
	BuildBiomes(world)
	done()

	done = g.timer(ctx, "icecap")
	BuildIcecap(world, stages.Icecap)
	done()

	g.countGenerated(world.Params.Level)
	return world, nil
}

// timer starts both the structured-log stage timer and, if metrics are
// wired in, the matching prometheus observation.
func (g *Generator) timer(ctx context.Context, stage string) func() {
	logDone := logging.StageTimer(ctx, stage)
	metricDone := g.metrics.StageTimer(stage)
	return func() {
		logDone()
		metricDone()
	}
}

func (g *Generator) countGenerated(level worldmodel.GenerationLevel) {
	if g.metrics != nil {
		g.metrics.WorldsGenerated.WithLabelValues(level.String()).Inc()
	}
}

func (g *Generator) ingestTectonics(world *worldmodel.World, p GenerateParams, pre rng.PrePipelineSeeds) error {
	tp := p.Tectonic
	tp.Seed = p.Seed
	tp.Width = p.Width
	tp.Height = p.Height
	tp.SeaLevel = p.OceanLevel
	tp.NumPlates = p.PlateCount
	tp.NoiseSeed = pre.PostPlateNoise

	elevation, plates, err := tectonic.RunToCompletion(g.driver, tp)
	if err != nil {
		return err
	}

	world.Elevation = worldmodel.NewFloatGrid(p.Width, p.Height)
	copy(world.Elevation.Raw(), elevation)

	world.Plates = worldmodel.NewUint16Grid(p.Width, p.Height)
	copy(world.Plates.Raw(), plates)

	return nil
}

func (g *Generator) runHydrology(ctx context.Context, world *worldmodel.World, stages rng.StageSeeds) {
	world.RiverMap = worldmodel.NewFloatGrid(world.Width, world.Height)
	world.LakeMap = worldmodel.NewFloatGrid(world.Width, world.Height)
	world.WaterMap = worldmodel.NewFloatGrid(world.Width, world.Height)
	world.Irrigation = worldmodel.NewFloatGrid(world.Width, world.Height)

	done := g.timer(ctx, "erosion")
	flow := hydrology.FlowDirection(world)
	world.FlowDirection = flow
	seeds := hydrology.RiverSeeds(world, flow, world.Precipitation)
	rivers := hydrology.TraceRivers(ctx, world, flow, seeds)
	hydrology.FlattenDescent(world, rivers)
	hydrology.CarveValleys(world, rivers)
	hydrology.FillRiverMap(world, rivers, world.Precipitation)
	hydrology.FillLakeMap(world, rivers)
	done()

	done = g.timer(ctx, "watermap")
	hydrology.BuildWaterMap(world, stages.Watermap)
	done()

	done = g.timer(ctx, "irrigation")
	hydrology.BuildIrrigation(world)
	done()
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
