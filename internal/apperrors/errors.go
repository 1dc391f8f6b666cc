// Package apperrors defines the error taxonomy shared across the generation
// pipeline: configuration, tectonic-driver, bounds, pathfinding and
// serialization errors, each a distinct, matchable category.
package apperrors

import (
	"errors"
	"fmt"
)

// Category classifies an AppError for callers that need to branch on kind
// without string-matching messages.
type Category string

const (
	CategoryConfiguration Category = "configuration"
	CategoryTectonicDriver Category = "tectonic_driver"
	CategoryBounds         Category = "bounds"
	CategoryPathfinding    Category = "pathfinding"
	CategorySerialization  Category = "serialization"
	CategoryInternal       Category = "internal"
)

// AppError is a categorized error with an optional wrapped cause.
type AppError struct {
	Category Category
	Message  string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is allows errors.Is(err, apperrors.ErrBounds) style category checks via a
// sentinel that only compares Category.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if errors.As(target, &other) {
		return e.Category == other.Category
	}
	return false
}

func newf(cat Category, format string, args ...any) *AppError {
	return &AppError{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// NewConfiguration reports an out-of-range CLI argument or config value.
func NewConfiguration(format string, args ...any) error {
	return newf(CategoryConfiguration, format, args...)
}

// WrapTectonicDriver propagates a tectonic driver failure unchanged, tagged
// fatal.
func WrapTectonicDriver(err error) error {
	return &AppError{Category: CategoryTectonicDriver, Message: "tectonic driver failed", Err: err}
}

// NewBounds reports an out-of-grid index; always a programming bug.
func NewBounds(format string, args ...any) error {
	return newf(CategoryBounds, format, args...)
}

// NewPathfinding reports pathfinder exhaustion (A* iteration cap).
func NewPathfinding(format string, args ...any) error {
	return newf(CategoryPathfinding, format, args...)
}

// NewSerialization reports a malformed persisted record.
func NewSerialization(format string, args ...any) error {
	return newf(CategorySerialization, format, args...)
}

// Sentinels for errors.Is category comparisons.
var (
	ErrConfiguration  = &AppError{Category: CategoryConfiguration}
	ErrTectonicDriver = &AppError{Category: CategoryTectonicDriver}
	ErrBounds         = &AppError{Category: CategoryBounds}
	ErrPathfinding    = &AppError{Category: CategoryPathfinding}
	ErrSerialization  = &AppError{Category: CategorySerialization}
)
