package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFestival is the root of every festival construction error.
// Match it with errors.Is; match the concrete kinds with errors.As.
var ErrInvalidFestival = errors.New("invalid festival")

// ErrEmptyLineup is returned by ParseLineup for an empty input string.
var ErrEmptyLineup = errors.New("empty lineup string")

// StartAfterEndError is returned when a festival starts after it ends.
type StartAfterEndError struct {
	Start time.Time
	End   time.Time
}

func (e *StartAfterEndError) Error() string {
	return fmt.Sprintf("start date (%s) after end date (%s)", FormatDate(e.Start), FormatDate(e.End))
}

func (e *StartAfterEndError) Unwrap() error {
	return ErrInvalidFestival
}

// LineupDateOutOfRangeError is returned when a lineup date falls outside
// the festival's [Start, End] window.
type LineupDateOutOfRangeError struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

func (e *LineupDateOutOfRangeError) Error() string {
	return fmt.Sprintf("lineup date (%s) not between start (%s) and end (%s) dates",
		FormatDate(e.Date), FormatDate(e.Start), FormatDate(e.End))
}

func (e *LineupDateOutOfRangeError) Unwrap() error {
	return ErrInvalidFestival
}

// InvalidFieldError is returned when a festival field is missing or empty.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidFieldError) Unwrap() error {
	return ErrInvalidFestival
}
