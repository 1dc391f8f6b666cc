// Package worldstore persists world metadata (not the grid layers
// themselves) to Postgres, and caches computed thresholds in Redis for
// fast repeat lookups. Both backends are optional: a Store with an empty
// URL for either skips that half of the work silently.
package worldstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"worldcore/internal/apperrors"
	"worldcore/internal/worldmodel"
)

// Store wraps the two optional persistence backends. Either pool may be
// nil, in which case the corresponding methods are no-ops.
type Store struct {
	pg    *pgxpool.Pool
	cache *redis.Client
}

// Open connects to Postgres and Redis if their URLs are non-empty. A
// backend left at "" is simply skipped, so a generator can run with no
// persistence at all.
func Open(ctx context.Context, postgresURL, redisURL string) (*Store, error) {
	s := &Store{}

	if postgresURL != "" {
		pool, err := pgxpool.New(ctx, postgresURL)
		if err != nil {
			return nil, apperrors.NewConfiguration("postgres connect: %v", err)
		}
		s.pg = pool
	}

	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, apperrors.NewConfiguration("redis url: %v", err)
		}
		s.cache = redis.NewClient(opt)
	}

	return s, nil
}

// Close releases both backends' connections.
func (s *Store) Close() {
	if s.pg != nil {
		s.pg.Close()
	}
	if s.cache != nil {
		s.cache.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS worlds (
	id          uuid PRIMARY KEY,
	name        text NOT NULL,
	width       integer NOT NULL,
	height      integer NOT NULL,
	seed        integer NOT NULL,
	plate_count integer NOT NULL,
	ocean_level double precision NOT NULL,
	step        text NOT NULL,
	created_at  timestamptz NOT NULL DEFAULT now()
)`

// EnsureSchema creates the worlds table if it doesn't already exist. Call
// once at startup; a no-op when Postgres isn't configured.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.pg == nil {
		return nil
	}
	if _, err := s.pg.Exec(ctx, schema); err != nil {
		return apperrors.NewConfiguration("ensure schema: %v", err)
	}
	return nil
}

// SaveMetadata records a completed world's identity and parameters. Grid
// layers are not persisted here; that is the serialization back-end's job.
func (s *Store) SaveMetadata(ctx context.Context, w *worldmodel.World) error {
	if s.pg == nil {
		return nil
	}
	_, err := s.pg.Exec(ctx, `
		INSERT INTO worlds (id, name, width, height, seed, plate_count, ocean_level, step)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		w.ID, w.Name, w.Width, w.Height, w.Seed, w.Params.PlateCount, w.Params.OceanLevel, w.Params.Level.String())
	if err != nil {
		return apperrors.NewConfiguration("save world metadata: %v", err)
	}
	return nil
}

// thresholdSummary is the cached shape: band cut-offs keyed by band name,
// for quick inspection without touching the full grid layers.
// CacheThresholds fills only Elevation and Water; the other four maps are
// left nil and marshal as null.
type thresholdSummary struct {
	Elevation     map[string]float32 `json:"elevation"`
	Temperature   map[string]float32 `json:"temperature"`
	Humidity      map[string]float32 `json:"humidity"`
	Precipitation map[string]float32 `json:"precipitation"`
	Permeability  map[string]float32 `json:"permeability"`
	Water         map[string]float32 `json:"water"`
}

const thresholdTTL = 24 * time.Hour

// CacheThresholds stores a world's elevation and water threshold tables in
// Redis, keyed by world ID, for dashboards that want a cheap summary without
// reading the full layer data. The temperature, humidity, precipitation and
// permeability tables are not cached.
func (s *Store) CacheThresholds(ctx context.Context, w *worldmodel.World) error {
	if s.cache == nil {
		return nil
	}
	summary := thresholdSummary{
		Elevation: map[string]float32{
			"sea":      w.Thresholds.Elevation(worldmodel.ElevationSea),
			"hill":     w.Thresholds.Elevation(worldmodel.ElevationHill),
			"mountain": w.Thresholds.Elevation(worldmodel.ElevationMountain),
		},
		Water: map[string]float32{
			"creek":      w.Thresholds.Water(worldmodel.WaterCreek),
			"river":      w.Thresholds.Water(worldmodel.WaterRiver),
			"main_river": w.Thresholds.Water(worldmodel.WaterMainRiver),
		},
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return apperrors.NewConfiguration("marshal threshold summary: %v", err)
	}
	key := fmt.Sprintf("world:%s:thresholds", w.ID)
	if err := s.cache.Set(ctx, key, data, thresholdTTL).Err(); err != nil {
		return apperrors.NewConfiguration("cache thresholds: %v", err)
	}
	return nil
}
