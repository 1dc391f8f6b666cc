package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigurationMatchesSentinelByCategory(t *testing.T) {
	err := NewConfiguration("width must be positive, got %d", -1)
	require.True(t, errors.Is(err, ErrConfiguration))
	require.False(t, errors.Is(err, ErrBounds))
	require.Contains(t, err.Error(), "width must be positive, got -1")
}

func TestWrapTectonicDriverPreservesCause(t *testing.T) {
	cause := errors.New("handle exhausted")
	err := WrapTectonicDriver(cause)

	require.True(t, errors.Is(err, ErrTectonicDriver))
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "handle exhausted")
}

func TestCategoriesAreDistinct(t *testing.T) {
	err := NewPathfinding("A* exceeded iteration cap")
	require.False(t, errors.Is(err, ErrBounds))
	require.False(t, errors.Is(err, ErrSerialization))
	require.True(t, errors.Is(err, ErrPathfinding))
}

func TestErrorStringWithoutWrappedCause(t *testing.T) {
	err := NewBounds("index %d out of range", 42)
	require.Equal(t, "bounds: index 42 out of range", err.Error())
}
