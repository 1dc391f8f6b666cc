// Command worldgen generates a deterministic procedural world from a seed
// and prints a short summary of its layers.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"worldcore/internal/config"
	"worldcore/internal/logging"
	"worldcore/internal/metrics"
	"worldcore/internal/pipeline"
	"worldcore/internal/tectonic"
	"worldcore/internal/worldmodel"
	"worldcore/internal/worldstore"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a YAML config file (overrides defaults)")
	name := fs.String("worldname", "", "world name override")
	seed := fs.Uint("seed", 0, "world seed override")
	width := fs.Int("width", 0, "world width override")
	height := fs.Int("height", 0, "world height override")
	plates := fs.Int("plates", 0, "plate count override")
	step := fs.String("step", "", "generation step override: plates, precipitations, full")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) while generating")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyOverrides(cfg, *name, *seed, *width, *height, *plates, *step)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(*verbose)
	ctx := context.Background()

	store, err := worldstore.Open(ctx, cfg.Database.PostgresURL, cfg.Database.RedisURL)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	m := metrics.NewMetrics()
	registry := prometheus.NewRegistry()
	m.Register(registry)
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logging.LogError(ctx, err, "metrics server stopped")
			}
		}()
	}

	gen := pipeline.NewGenerator(pipeline.WithMetrics(m))
	world, err := gen.Generate(ctx, toGenerateParams(cfg))
	if err != nil {
		return err
	}

	if err := store.SaveMetadata(ctx, world); err != nil {
		return err
	}
	if err := store.CacheThresholds(ctx, world); err != nil {
		return err
	}

	printSummary(world)
	return nil
}

func applyOverrides(cfg *config.Config, name string, seed uint, width, height, plates int, step string) {
	if name != "" {
		cfg.WorldName = name
	}
	if seed != 0 {
		cfg.Seed = uint32(seed)
	}
	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}
	if plates != 0 {
		cfg.Plates = plates
	}
	if step != "" {
		cfg.Step = config.Step(step)
	}
}

func toGenerateParams(cfg *config.Config) pipeline.GenerateParams {
	level := worldmodel.Full
	switch cfg.Step {
	case config.StepPlates:
		level = worldmodel.PlatesOnly
	case config.StepPrecipitations:
		level = worldmodel.Precipitations
	}

	return pipeline.GenerateParams{
		Name:        cfg.WorldName,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Seed:        cfg.Seed,
		PlateCount:  cfg.Plates,
		OceanLevel:  cfg.OceanLevel,
		Level:       level,
		GammaValue:  cfg.GammaValue,
		GammaOffset: cfg.GammaOffset,
		FadeBorders: cfg.FadeBorders,
		Tectonic: tectonicParamsFrom(cfg),
	}
}

func tectonicParamsFrom(cfg *config.Config) tectonic.Params {
	return tectonic.Params{
		ErosionPeriod:  cfg.Tectonic.ErosionPeriod,
		FoldingRatio:   cfg.Tectonic.FoldingRatio,
		AggrOverlapAbs: cfg.Tectonic.AggrOverlapAbs,
		AggrOverlapRel: cfg.Tectonic.AggrOverlapRel,
		CycleCount:     cfg.Tectonic.CycleCount,
	}
}

func printSummary(w *worldmodel.World) {
	fmt.Printf("world %q (%s): %dx%d, seed=%d, level=%s\n", w.Name, w.ID, w.Width, w.Height, w.Seed, w.Params.Level)
	fmt.Printf("  elevation=%v plates=%v ocean=%v sea_depth=%v\n", w.HasElevation(), w.HasPlates(), w.HasOcean(), w.HasSeaDepth())
	fmt.Printf("  temperature=%v precipitation=%v erosion=%v\n", w.HasTemperature(), w.HasPrecipitation(), w.HasErosion())
	fmt.Printf("  watermap=%v irrigation=%v humidity=%v permeability=%v\n", w.HasWaterMap(), w.HasIrrigation(), w.HasHumidity(), w.HasPermeability())
	fmt.Printf("  biomes=%v icecap=%v\n", w.HasBiomes(), w.HasIcecap())
}
