package noise

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(5)
	b := New(5)
	require.Equal(t, a.Eval2(1.234, 5.678), b.Eval2(1.234, 5.678))
}

func TestNewVariesWithSeed(t *testing.T) {
	a := New(1)
	b := New(2)
	require.NotEqual(t, a.Eval2(1.234, 5.678), b.Eval2(1.234, 5.678))
}

func TestOctave2SingleOctaveMatchesEval2(t *testing.T) {
	g := New(3)
	require.Equal(t, g.Eval2(2, 2), g.Octave2(2, 2, 1, 1))
}

func TestOctave2StaysWithinUnitRange(t *testing.T) {
	g := New(9)
	for i := 0; i < 200; i++ {
		v := g.Octave2(float64(i)*0.37, float64(i)*1.91, 6, 0.05)
		require.GreaterOrEqual(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

func TestOctave2ZeroOctavesIsZero(t *testing.T) {
	g := New(1)
	require.Equal(t, 0.0, g.Octave2(1, 1, 0, 1))
}
