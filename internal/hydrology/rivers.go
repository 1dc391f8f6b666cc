package hydrology

import (
	"context"

	"worldcore/internal/logging"
	"worldcore/internal/worldmodel"
)

// River is one traced flow path from a mountain seed to either the sea or a
// lake.
type River struct {
	Path []worldmodel.Point
	Lake bool
}

const maxRadiusSearch = 40

// TraceRivers traces every seed to completion, in seed order, so later
// rivers can merge into earlier ones. Mirrors the "nearby river" merge rule:
// when a river merges into an existing one, every cell of the matched river
// up to the merge point is rewound and copied into the new path. The copied
// cells start at the matched river's own seed, so a merged river's path
// jumps from its last traced cell back to that seed, and those cells are
// duplicated between the two recorded rivers.
func TraceRivers(ctx context.Context, w *worldmodel.World, flow []worldmodel.Direction, seeds []worldmodel.Point) []River {
	var rivers []River
	onRiver := make(map[worldmodel.Point]int) // point -> index into rivers

	for _, seed := range seeds {
		path := []worldmodel.Point{seed}
		current := seed
		lake := false

	trace:
		for {
			if mergeIdx, mergePoint, ok := findMerge(w, current, onRiver); ok {
				rewound := rewindTo(rivers[mergeIdx].Path, mergePoint)
				path = append(path, rewound...)
				break trace
			}

			if w.IsOcean(current.X, current.Y) {
				break trace
			}

			if dir := flow[current.Y*w.Width+current.X]; dir != worldmodel.Center {
				current = step(current, dir)
				path = append(path, current)
				continue trace
			}

			if target, reachable, wrap := findLowerElevation(w, current); reachable {
				var astarPath []worldmodel.Point
				var err error
				if !wrap {
					astarPath, _, err = AStar(w, current, target)
				} else {
					astarPath, err = wrapSplice(w, current, target)
				}
				if err != nil {
					logging.Warn(ctx, "river routing fell back to lake after A* failure", map[string]any{
						"from": current, "to": target, "error": err.Error(),
					})
					lake = true
					break trace
				}
				path = append(path, astarPath...)
				current = path[len(path)-1]
				continue trace
			}

			lake = true
			break trace
		}

		idx := len(rivers)
		rivers = append(rivers, River{Path: path, Lake: lake})
		for _, p := range path {
			if _, exists := onRiver[p]; !exists {
				onRiver[p] = idx
			}
		}
	}

	return rivers
}

// findMerge looks for a 4-neighbor (torus) of current that already belongs
// to a traced river, returning the first such match in N/E/S/W order.
func findMerge(w *worldmodel.World, current worldmodel.Point, onRiver map[worldmodel.Point]int) (riverIdx int, point worldmodel.Point, ok bool) {
	candidates := []worldmodel.Point{
		{X: current.X, Y: wrapCoord(current.Y-1, w.Height)},
		{X: wrapCoord(current.X+1, w.Width), Y: current.Y},
		{X: current.X, Y: wrapCoord(current.Y+1, w.Height)},
		{X: wrapCoord(current.X-1, w.Width), Y: current.Y},
	}
	for _, c := range candidates {
		if idx, exists := onRiver[c]; exists {
			return idx, c, true
		}
	}
	return 0, worldmodel.Point{}, false
}

func wrapCoord(v, n int) int {
	return ((v % n) + n) % n
}

// rewindTo returns the prefix of path up to and including target.
func rewindTo(path []worldmodel.Point, target worldmodel.Point) []worldmodel.Point {
	for i, p := range path {
		if p == target {
			out := make([]worldmodel.Point, i+1)
			copy(out, path[:i+1])
			return out
		}
	}
	return nil
}

// findLowerElevation searches the Chebyshev radius-1 ring around current for
// a strictly lower cell, first without wrap, then with. The spec's reference
// implementation never increments its search radius past the first ring, a
// quirk preserved here rather than widened into a genuine radius-40 search.
func findLowerElevation(w *worldmodel.World, current worldmodel.Point) (target worldmodel.Point, found bool, wrap bool) {
	currentElev := w.Elevation.Get(current.X, current.Y)

	for _, p := range w.TilesAround(current.X, current.Y) {
		if p == current {
			continue
		}
		if w.Elevation.Get(p.X, p.Y) < currentElev {
			return p, true, false
		}
	}

	for _, p := range w.AroundToroidal(current.X, current.Y) {
		if w.Contains(p.X, p.Y) && !needsWrap(w, current, p) {
			continue // already covered by the non-wrap scan above
		}
		if w.Elevation.Get(p.X, p.Y) < currentElev {
			return p, true, true
		}
	}

	_ = maxRadiusSearch // radius is never widened past 1; see doc comment
	return worldmodel.Point{}, false, false
}

func needsWrap(w *worldmodel.World, from, to worldmodel.Point) bool {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return (dx > 1 || dx < -1) || (dy > 1 || dy < -1)
}

// wrapSplice routes from current to target when the shortest path crosses a
// torus seam: A* to an intermediate edge cell, jump the wrap, then A* on to
// the target. The intermediate cells sit halfway along the non-wrapped axis
// and at the edge of the wrapped one.
func wrapSplice(w *worldmodel.World, current, target worldmodel.Point) ([]worldmodel.Point, error) {
	var nearEdge, farEdge worldmodel.Point
	if current.X != target.X && chebyshevWrapAxis(current.X, target.X, w.Width) {
		mid := (current.Y + target.Y) / 2
		if current.X < target.X {
			nearEdge = worldmodel.Point{X: 0, Y: mid}
			farEdge = worldmodel.Point{X: w.Width - 1, Y: mid}
		} else {
			nearEdge = worldmodel.Point{X: w.Width - 1, Y: mid}
			farEdge = worldmodel.Point{X: 0, Y: mid}
		}
	} else {
		mid := (current.X + target.X) / 2
		if current.Y < target.Y {
			nearEdge = worldmodel.Point{X: mid, Y: 0}
			farEdge = worldmodel.Point{X: mid, Y: w.Height - 1}
		} else {
			nearEdge = worldmodel.Point{X: mid, Y: w.Height - 1}
			farEdge = worldmodel.Point{X: mid, Y: 0}
		}
	}

	toEdge, _, err := AStar(w, current, nearEdge)
	if err != nil {
		return nil, err
	}
	fromEdge, _, err := AStar(w, farEdge, target)
	if err != nil {
		return nil, err
	}

	path := append([]worldmodel.Point{}, toEdge...)
	path = append(path, farEdge)
	path = append(path, fromEdge...)
	return path, nil
}

func chebyshevWrapAxis(a, b, size int) bool {
	direct := a - b
	if direct < 0 {
		direct = -direct
	}
	return direct > size/2
}
