package region

import (
	"errors"
	"fmt"
)

// ErrNoRegions is returned when an input contains no region records.
var ErrNoRegions = errors.New("no region records found")

// ParseError is the base type for record parsing errors.
// Line is the 0-based index of the offending line.
type ParseError struct {
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d", e.Line)
}

// FormatError reports a non-empty line that is not a region record.
type FormatError struct {
	ParseError
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d is not in expected format: %q", e.Line, e.Text)
}

// UnknownStateError reports a state label missing from the style map.
type UnknownStateError struct {
	ParseError
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state: %s", e.State)
}
