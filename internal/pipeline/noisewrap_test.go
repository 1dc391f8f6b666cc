package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"worldcore/internal/noise"
)

func TestWrapBlendNoiseAtEdgeEqualsShiftedSample(t *testing.T) {
	gen := noise.New(11)
	width, height := 100.0, 50.0
	octaves, freq := 4, 8.0

	got := wrapBlendNoise(gen, 0, 10, width, height, octaves, freq)
	want := gen.Octave2(1, 10.0/height, octaves, freq) // blend=0 at x=0, pure secondary
	require.InDelta(t, want, got, 1e-12)
}

func TestWrapBlendNoiseOutsideBandEqualsPrimarySample(t *testing.T) {
	gen := noise.New(11)
	width, height := 100.0, 50.0
	octaves, freq := 4, 8.0

	x := 30.0 // band is width/4 = 25, so x=30 is outside it
	got := wrapBlendNoise(gen, x, 5, width, height, octaves, freq)
	want := gen.Octave2(x/width, 5.0/height, octaves, freq)
	require.InDelta(t, want, got, 1e-12)
}

func TestWrapBlendNoiseIsContinuousAcrossBandEdge(t *testing.T) {
	gen := noise.New(11)
	width, height := 100.0, 50.0
	octaves, freq := 4, 8.0

	justInside := wrapBlendNoise(gen, 24.999, 5, width, height, octaves, freq)
	justOutside := wrapBlendNoise(gen, 25.0, 5, width, height, octaves, freq)
	require.InDelta(t, justOutside, justInside, 0.05)
}
