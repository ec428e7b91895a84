package maze

import (
	"errors"
	"fmt"
)

var (
	ErrGridClamped      = errors.New("grid dimension below 1")
	ErrStartOutOfBounds = errors.New("starting cell out of bounds or already visited")
	ErrRoomTooLarge     = errors.New("room height or room width is too large")
	ErrRoomTooSmall     = errors.New("room height or room width is below 1")
	ErrRoomForced       = errors.New("room placed over visited cells after retry cap")
	ErrOpeningSide      = errors.New("opening has no side selected")
	ErrOpeningRange     = errors.New("opening index outside side range")
	ErrOpeningNoWall    = errors.New("opening region hits no outer wall")
)

// Severity grades a diagnostic
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic records a non-fatal condition raised during a pass.
// Errors abort only the step named by Step.
type Diagnostic struct {
	Severity Severity
	Step     string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %v", d.Severity, d.Step, d.Err)
}
