package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/worldmodel"
)

func TestBuildPermeabilityPopulatesGridAndThresholds(t *testing.T) {
	w := worldmodel.New("t", 10, 10, 1, worldmodel.Params{})
	BuildPermeability(w, 5)

	require.NotNil(t, w.Permeability)
	require.Equal(t, 10, w.Permeability.Width())
	require.Equal(t, 10, w.Permeability.Height())

	low := w.Thresholds.Permeability(worldmodel.PermeabilityLow)
	medium := w.Thresholds.Permeability(worldmodel.PermeabilityMedium)
	require.LessOrEqual(t, low, medium)
}

func TestBuildPermeabilityIsDeterministic(t *testing.T) {
	w1 := worldmodel.New("t", 6, 6, 1, worldmodel.Params{})
	w2 := worldmodel.New("t", 6, 6, 1, worldmodel.Params{})
	BuildPermeability(w1, 42)
	BuildPermeability(w2, 42)
	require.Equal(t, w1.Permeability.Raw(), w2.Permeability.Raw())
}
