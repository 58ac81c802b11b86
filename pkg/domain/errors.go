package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a write targets a position outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// ErrCellNotEmpty is returned when a cell that must be Empty is marked visited or blocked.
var ErrCellNotEmpty = errors.New("cell is not empty")

// ErrUnknownCell is returned when the input contains a character outside the grid alphabet.
var ErrUnknownCell = errors.New("unknown cell character")

// ErrRaggedGrid is returned when input rows have different lengths.
var ErrRaggedGrid = errors.New("grid rows have different lengths")

// ErrEmptyGrid is returned when the input contains no rows.
var ErrEmptyGrid = errors.New("grid is empty")

// ErrNoGuard is returned when the input has no start marker.
var ErrNoGuard = errors.New("no guard start marker")

// ErrMultipleGuards is returned when the input has more than one start marker.
var ErrMultipleGuards = errors.New("more than one guard start marker")

// ErrStepLimit is returned when a run exceeds its iteration cap.
// It means the transition function is broken, never that the guard loops.
var ErrStepLimit = errors.New("step limit exceeded")

// ParseError locates a malformed character in the input.
type ParseError struct {
	Row  int
	Col  int
	Char rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q at row %d, col %d", ErrUnknownCell, e.Char, e.Row, e.Col)
}

// Unwrap allows errors.Is(err, ErrUnknownCell).
func (e *ParseError) Unwrap() error {
	return ErrUnknownCell
}
