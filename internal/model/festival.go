package model

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Festival is a dated, located event made of one or more lineups.
//
// NewFestival is the only way to build a valid Festival: it rejects a start
// date after the end date, lineups dated outside the festival, and empty
// fields.
//
// Example:
//
//	woodstock, err := NewFestival("Woodstock", "Bethel, NY",
//	    NewDate(1969, time.August, 15), NewDate(1969, time.August, 17),
//	    day1, day2, day3)
//	var outOfRange *LineupDateOutOfRangeError
//	if errors.As(err, &outOfRange) {
//	    // a lineup is not within Aug 15-17
//	}
type Festival struct {
	Name     string
	Location string
	Start    time.Time
	End      time.Time

	lineups []*Lineup
}

// NewFestival validates its inputs and builds a Festival.
//
// Checks run in this order:
//  1. start after end: *StartAfterEndError
//  2. the first lineup (in argument order) dated outside [start, end]:
//     *LineupDateOutOfRangeError
//  3. empty name or location, zero dates, nil lineups: *InvalidFieldError
//
// Every error unwraps to ErrInvalidFestival.
func NewFestival(name, location string, start, end time.Time, lineups ...*Lineup) (*Festival, error) {
	start, end = DateOf(start), DateOf(end)

	if start.After(end) {
		return nil, &StartAfterEndError{Start: start, End: end}
	}

	for i, l := range lineups {
		if l == nil {
			return nil, &InvalidFieldError{Field: "lineups", Reason: "nil lineup at position " + strconv.Itoa(i)}
		}
		if !lineupWithin(l, start, end) {
			return nil, &LineupDateOutOfRangeError{Date: l.Date, Start: start, End: end}
		}
	}

	switch {
	case strings.TrimSpace(name) == "":
		return nil, &InvalidFieldError{Field: "name", Reason: "must not be empty"}
	case strings.TrimSpace(location) == "":
		return nil, &InvalidFieldError{Field: "location", Reason: "must not be empty"}
	case start.IsZero():
		return nil, &InvalidFieldError{Field: "start", Reason: "must be set"}
	case end.IsZero():
		return nil, &InvalidFieldError{Field: "end", Reason: "must be set"}
	}

	return &Festival{
		Name:     name,
		Location: location,
		Start:    start,
		End:      end,
		lineups:  slices.Clone(lineups),
	}, nil
}

// Lineups returns the lineups in the order they were given.
func (f *Festival) Lineups() []*Lineup {
	return slices.Clone(f.lineups)
}

// Performers returns every performer of the festival, lineup by lineup.
func (f *Festival) Performers() []Performer {
	var out []Performer
	for _, l := range f.lineups {
		out = append(out, l.performers...)
	}
	return out
}

// Equal reports whether two festivals have the same fields and equal lineups in order.
func (f *Festival) Equal(other *Festival) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Name == other.Name &&
		f.Location == other.Location &&
		f.Start.Equal(other.Start) &&
		f.End.Equal(other.End) &&
		slices.EqualFunc(f.lineups, other.lineups, (*Lineup).Equal)
}

// String returns the festival header followed by one tab-indented line per lineup:
//
//	Woodstock (Aug 15, 1969 - Aug 17, 1969), Bethel, NY
//		Lineup for Aug 15, 1969: Melanie, Arlo Guthrie
func (f *Festival) String() string {
	var sb strings.Builder
	sb.WriteString(f.Name + " (" + FormatDate(f.Start) + " - " + FormatDate(f.End) + "), " + f.Location)
	for _, l := range f.lineups {
		sb.WriteString("\n\t" + l.String())
	}
	return sb.String()
}

// lineupWithin reports whether start <= l.Date <= end.
func lineupWithin(l *Lineup, start, end time.Time) bool {
	d := DateOf(l.Date)
	return !d.Before(start) && !d.After(end)
}
