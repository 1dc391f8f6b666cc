package hydrology

import (
	"math"

	"worldcore/internal/worldmodel"
)

const irrigationRadius = 10

// BuildIrrigation spreads each ocean cell's water-map value into nearby
// land, divided by a log-distance kernel: ln(sqrt(dx^2+dy^2)+1)+1.
// Non-wrapping, clipped at the grid edges. Ocean cells themselves are left
// at zero.
func BuildIrrigation(w *worldmodel.World) {
	kernel := buildIrrigationKernel(irrigationRadius)

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsOcean(x, y) {
				continue
			}
			spreadIrrigation(w, kernel, x, y)
		}
	}
}

func buildIrrigationKernel(r int) [][]float32 {
	size := 2*r + 1
	k := make([][]float32, size)
	for i := range k {
		k[i] = make([]float32, size)
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			k[dy+r][dx+r] = float32(math.Log(dist+1) + 1)
		}
	}
	return k
}

func spreadIrrigation(w *worldmodel.World, kernel [][]float32, ox, oy int) {
	source := w.WaterMap.Get(ox, oy)
	for dy := -irrigationRadius; dy <= irrigationRadius; dy++ {
		for dx := -irrigationRadius; dx <= irrigationRadius; dx++ {
			x, y := ox+dx, oy+dy
			if !w.Contains(x, y) || w.IsOcean(x, y) {
				continue
			}
			contribution := source / kernel[dy+irrigationRadius][dx+irrigationRadius]
			w.Irrigation.Set(x, y, w.Irrigation.Get(x, y)+contribution)
		}
	}
}
