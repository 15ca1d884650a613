package search

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLineAtPosition means a probe position held no line. Sources are
	// expected to be densely covered by lines, so this usually indicates
	// runs of empty lines or a corrupt source.
	ErrNoLineAtPosition = errors.New("no line at position")

	// ErrLength means the requested length is negative or exceeds the source.
	ErrLength = errors.New("search length out of range")
)

// PositionError records the probe position a search failed at.
type PositionError struct {
	Pos int64
	Err error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d: %v", e.Pos, e.Err)
}

func (e *PositionError) Unwrap() error { return e.Err }
