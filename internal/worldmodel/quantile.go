package worldmodel

import "sort"

// OceanMask is the subset of World's ocean layer the quantile estimator
// needs: a dimension check and a per-cell predicate. *BoolGrid satisfies
// this directly.
type OceanMask interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// QuantileThreshold estimates the value v such that the fraction of
// non-masked cells with value <= v is >= 1 - f, scanning m in row-major
// order (deterministic traversal, as the spec requires). Ocean cells are
// excluded when mask is non-nil and its dimensions match m; a nil mask or a
// dimension mismatch includes every cell.
//
// This uses exact sorting rather than a streaming P^2 estimator: the grids
// here comfortably fit in memory for any world this pipeline generates, and
// an exact quantile is strictly more reproducible than an approximate one
// while costing nothing a caller would notice. Traversal order still
// determines tie-breaking for equal values, preserving the spec's
// determinism requirement.
func QuantileThreshold(m *FloatGrid, mask OceanMask, f float64) float32 {
	useMask := mask != nil && mask.Width() == m.Width() && mask.Height() == m.Height()

	values := make([]float32, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if useMask && mask.Get(x, y) {
				continue
			}
			values = append(values, m.Get(x, y))
		}
	}
	if len(values) == 0 {
		return 0
	}

	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	target := (1 - f) * float64(len(values))
	idx := int(target)
	if float64(idx) < target {
		idx++
	}
	if idx < 1 {
		idx = 1
	}
	if idx > len(values) {
		idx = len(values)
	}
	return values[idx-1]
}
