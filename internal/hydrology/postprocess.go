package hydrology

import "worldcore/internal/worldmodel"

// CarveValleys lowers the elevation of non-river cells near every traced
// river cell, widening rivers into shallow valleys: curve 0.2 at Chebyshev
// radius 1, curve 0.05 at radius 2. Cells on any river path are left as
// they are. Applied after FlattenDescent so the carve doesn't fight the
// monotonicity pass.
func CarveValleys(w *worldmodel.World, rivers []River) {
	onRiver := make(map[worldmodel.Point]bool)
	for _, r := range rivers {
		for _, p := range r.Path {
			onRiver[p] = true
		}
	}
	for _, r := range rivers {
		for _, p := range r.Path {
			carveAround(w, p, 1, 0.2, onRiver)
			carveAround(w, p, 2, 0.05, onRiver)
		}
	}
}

func carveAround(w *worldmodel.World, center worldmodel.Point, radius int, curve float32, onRiver map[worldmodel.Point]bool) {
	riverElev := w.Elevation.Get(center.X, center.Y)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if chebyshevAbs(dx, dy) != radius {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !w.Contains(x, y) || onRiver[worldmodel.Point{X: x, Y: y}] {
				continue
			}
			cur := w.Elevation.Get(x, y)
			if cur > riverElev {
				lowered := cur - (cur-riverElev)*curve
				w.Elevation.Set(x, y, lowered)
			}
		}
	}
}

func chebyshevAbs(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// FlattenDescent enforces that elevation is non-increasing along each river
// path: a cell whose elevation exceeds its upstream neighbor is pulled down
// to match it. This undoes any local elevation noise the A* detours or wrap
// splices introduced, so river flow never appears to run uphill.
func FlattenDescent(w *worldmodel.World, rivers []River) {
	for _, r := range rivers {
		for i := 1; i < len(r.Path); i++ {
			prev := r.Path[i-1]
			cur := r.Path[i]
			prevElev := w.Elevation.Get(prev.X, prev.Y)
			curElev := w.Elevation.Get(cur.X, cur.Y)
			if curElev > prevElev {
				w.Elevation.Set(cur.X, cur.Y, prevElev)
			}
		}
	}
}

// FillRiverMap seeds the first cell of each river with the water-map value
// already at that location, then walks the rest of the path accumulating
// the previous cell's river-map value plus local precipitation. A cell
// shared by several rivers keeps the sum contributed by each pass over it.
func FillRiverMap(w *worldmodel.World, rivers []River, precipitation *worldmodel.FloatGrid) {
	for _, r := range rivers {
		if len(r.Path) == 0 {
			continue
		}
		first := r.Path[0]
		running := w.WaterMap.Get(first.X, first.Y)
		w.RiverMap.Set(first.X, first.Y, w.RiverMap.Get(first.X, first.Y)+running)

		for i := 1; i < len(r.Path); i++ {
			p := r.Path[i]
			rain := precipitation.Get(p.X, p.Y)
			if rain < 0 {
				rain = 0
			}
			running += rain
			w.RiverMap.Set(p.X, p.Y, w.RiverMap.Get(p.X, p.Y)+running)
		}
	}
}

// FillLakeMap marks every lake-terminated river's final cell with a fixed
// lake value. Rivers that merge into the same lake cell collapse to a
// single entry since the value is not additive.
func FillLakeMap(w *worldmodel.World, rivers []River) {
	const lakeValue = 0.1
	for _, r := range rivers {
		if !r.Lake || len(r.Path) == 0 {
			continue
		}
		end := r.Path[len(r.Path)-1]
		w.LakeMap.Set(end.X, end.Y, lakeValue)
	}
}
