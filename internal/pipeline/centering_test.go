package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/worldmodel"
)

func TestCenterLandRotatesLowestRowAndColumnToOrigin(t *testing.T) {
	w := worldmodel.New("t", 4, 3, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			w.Elevation.Set(x, y, 10)
		}
	}
	// Row 1 and column 2 are the lowest-sum row/column.
	for x := 0; x < 4; x++ {
		w.Elevation.Set(x, 1, 1)
	}
	for y := 0; y < 3; y++ {
		w.Elevation.Set(2, y, 1)
	}
	w.Elevation.Set(2, 1, 0) // distinct marker at the intersection

	CenterLand(w)

	require.Equal(t, float32(0), w.Elevation.Get(0, 0))
}

func TestCenterLandAlsoRotatesPlates(t *testing.T) {
	w := worldmodel.New("t", 3, 3, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(3, 3)
	w.Plates = worldmodel.NewUint16Grid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			w.Elevation.Set(x, y, 10)
			w.Plates.Set(x, y, uint16(y*3+x))
		}
	}
	w.Elevation.Set(1, 2, 0) // lowest row=2, lowest col=1

	CenterLand(w)

	require.Equal(t, uint16(2*3+1), w.Plates.Get(0, 0))
}

func TestCenterLandNilPlatesIsNoop(t *testing.T) {
	w := worldmodel.New("t", 2, 2, 1, worldmodel.Params{})
	w.Elevation = worldmodel.NewFloatGrid(2, 2)
	require.NotPanics(t, func() { CenterLand(w) })
	require.Nil(t, w.Plates)
}
