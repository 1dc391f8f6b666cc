package hydrology

import (
	"math"

	"worldcore/internal/worldmodel"
)

const watermapSamples = 20_000

// BuildWaterMap runs a Monte Carlo droplet simulation: a fixed number of
// land cells are sampled, and from each a droplet carrying that cell's
// precipitation is dropped, either propagating into lower neighbors or
// settling where it lands.
func BuildWaterMap(w *worldmodel.World, seed int64) {
	samples := w.RandomLand(watermapSamples, seed)
	for _, p := range samples {
		q := float64(w.Precipitation.Get(p.X, p.Y))
		if q <= 0 {
			continue
		}
		droplet(w, p, q)
	}

	w.Thresholds.SetWater(worldmodel.WaterCreek, worldmodel.QuantileThreshold(w.WaterMap, w.Ocean, 0.05))
	w.Thresholds.SetWater(worldmodel.WaterRiver, worldmodel.QuantileThreshold(w.WaterMap, w.Ocean, 0.02))
	w.Thresholds.SetWater(worldmodel.WaterMainRiver, worldmodel.QuantileThreshold(w.WaterMap, w.Ocean, 0.007))
}

func combinedHeight(w *worldmodel.World, p worldmodel.Point) float64 {
	return float64(w.Elevation.Get(p.X, p.Y) + w.WaterMap.Get(p.X, p.Y))
}

// droplet deposits q at p if no 8-neighbor sits strictly lower than p
// (comparing elevation plus accumulated water, so a flooded neighbor stops
// being a sink); otherwise it splits q across every lower neighbor in
// proportion to a share weight and recurses into any non-ocean neighbor
// whose share exceeds 0.05.
//
// The share weight truncates the elevation difference to an integer before
// quadrupling it with a left shift, rather than multiplying the float
// difference by 4 directly. Because most cell-to-cell elevation
// differences are well under 1.0, this truncates most weights to zero. The
// exception is any lower neighbor that is a new running minimum by combined
// height at the moment it is visited (always the first lower neighbor
// visited, and always the steepest): if its weight truncates to zero it is
// floored to 1, so a droplet always has somewhere to go when any neighbor is
// lower at all, rather than settling in place.
func droplet(w *worldmodel.World, p worldmodel.Point, q float64) {
	if q < 0 {
		return
	}

	pos := combinedHeight(w, p)
	type lower struct {
		point worldmodel.Point
		dq    int64
	}
	var lowers []lower
	var total int64
	minLower := math.MaxFloat64

	for _, n := range w.TilesAround(p.X, p.Y) {
		if n == p {
			continue
		}
		e := combinedHeight(w, n)
		if e >= pos {
			continue
		}
		dq := int64(pos-e) << 2
		if e < minLower {
			minLower = e
			if dq == 0 {
				dq = 1
			}
		}
		lowers = append(lowers, lower{n, dq})
		total += dq
	}

	if len(lowers) == 0 {
		w.WaterMap.Set(p.X, p.Y, w.WaterMap.Get(p.X, p.Y)+float32(q))
		return
	}

	for _, l := range lowers {
		share := q * float64(l.dq) / float64(total)
		w.WaterMap.Set(l.point.X, l.point.Y, w.WaterMap.Get(l.point.X, l.point.Y)+float32(share))
		if share > 0.05 && !w.IsOcean(l.point.X, l.point.Y) {
			droplet(w, l.point, share)
		}
	}
}
