package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned when a table is built for a negative item count.
	ErrInvalidCount = errors.New("item count must not be negative")
	// ErrInvalidGap is returned for a negative or non-finite inter-item gap.
	ErrInvalidGap = errors.New("gap must be a finite non-negative number")
	// ErrNoHeighter is returned when a non-empty table is built without a height source.
	ErrNoHeighter = errors.New("height source is required")
	// ErrInvalidViewport is returned for a negative offset or a non-positive height.
	ErrInvalidViewport = errors.New("invalid viewport")
)

// InvalidHeightError reports a height source that returned a zero, negative
// or non-finite height.
type InvalidHeightError struct {
	Index  int
	Height float64
}

func (e *InvalidHeightError) Error() string {
	return fmt.Sprintf("invalid height %v for item %d: must be a finite positive number", e.Height, e.Index)
}
