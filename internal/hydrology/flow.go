package hydrology

import "worldcore/internal/worldmodel"

// FlowDirection computes, for every cell, the 4-neighbor with the strictly
// lowest elevation (Center if none is lower). Non-wrapping.
func FlowDirection(w *worldmodel.World) []worldmodel.Direction {
	dirs := make([]worldmodel.Direction, w.Width*w.Height)
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			dirs[y*w.Width+x] = steepestDescent(w, x, y)
		}
	}
	return dirs
}

func steepestDescent(w *worldmodel.World, x, y int) worldmodel.Direction {
	best := worldmodel.Center
	bestElev := w.Elevation.Get(x, y)

	type candidate struct {
		dir  worldmodel.Direction
		x, y int
	}
	candidates := []candidate{
		{worldmodel.North, x, y - 1},
		{worldmodel.East, x + 1, y},
		{worldmodel.South, x, y + 1},
		{worldmodel.West, x - 1, y},
	}
	for _, c := range candidates {
		if !w.Contains(c.x, c.y) {
			continue
		}
		e := w.Elevation.Get(c.x, c.y)
		if e < bestElev {
			bestElev = e
			best = c.dir
		}
	}
	return best
}

// step moves one cell along dir.
func step(p worldmodel.Point, dir worldmodel.Direction) worldmodel.Point {
	switch dir {
	case worldmodel.North:
		return worldmodel.Point{X: p.X, Y: p.Y - 1}
	case worldmodel.East:
		return worldmodel.Point{X: p.X + 1, Y: p.Y}
	case worldmodel.South:
		return worldmodel.Point{X: p.X, Y: p.Y + 1}
	case worldmodel.West:
		return worldmodel.Point{X: p.X - 1, Y: p.Y}
	default:
		return p
	}
}

// chebyshev is the Chebyshev distance between two points.
func chebyshev(a, b worldmodel.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

const riverThreshold = 0.02
const seedIsolationRadius = 9

// RiverSeeds walks every cell's flow path, accumulating precipitation into a
// flow counter, and returns the mountain cells whose accumulated flow meets
// riverThreshold and which are outside seedIsolationRadius of any earlier
// seed. Traversal is row-major, so seed order (and therefore which cells get
// excluded by the isolation radius) is deterministic.
func RiverSeeds(w *worldmodel.World, flow []worldmodel.Direction, precipitation *worldmodel.FloatGrid) []worldmodel.Point {
	accum := make([]float64, w.Width*w.Height)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			p := worldmodel.Point{X: x, Y: y}
			rain := float64(precipitation.Get(x, y))
			if rain < 0 {
				rain = 0
			}
			visited := make(map[worldmodel.Point]bool)
			for {
				idx := p.Y*w.Width + p.X
				accum[idx] += rain
				if visited[p] {
					break // cyclic flow (shouldn't happen on a DAG, guard anyway)
				}
				visited[p] = true
				dir := flow[idx]
				if dir == worldmodel.Center {
					break
				}
				next := step(p, dir)
				if !w.Contains(next.X, next.Y) {
					break
				}
				p = next
			}
		}
	}

	var seeds []worldmodel.Point
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsMountain(x, y) {
				continue
			}
			if accum[y*w.Width+x] < riverThreshold {
				continue
			}
			candidate := worldmodel.Point{X: x, Y: y}
			isolated := true
			for _, s := range seeds {
				if chebyshev(candidate, s) <= seedIsolationRadius {
					isolated = false
					break
				}
			}
			if isolated {
				seeds = append(seeds, candidate)
			}
		}
	}
	return seeds
}
