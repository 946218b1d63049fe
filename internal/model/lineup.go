package model

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

const (
	lineupPrefix       = "Lineup for "
	lineupSeparator    = ": "
	performerSeparator = ", "
	notSpecified       = "not specified"
)

// firstRockFestival is the opening day of the KFRC Fantasy Fair and Magic
// Mountain Music Festival (June 10-11, 1967, Mount Tamalpais).
var firstRockFestival = NewDate(1967, time.June, 10)

// Lineup is the ordered list of performers scheduled on one date.
//
// A Lineup is not modified after construction. Performers returns a copy,
// and iteration goes through a LineupIterator allocated per request, so
// iterating a Lineup twice always yields its performers twice.
//
// Example:
//
//	day2 := NewLineup(NewDate(1969, time.August, 16),
//	    NewPerformer("Grateful Dead", true),
//	    NewPerformer("The Who", true),
//	)
//	fmt.Println(day2) // "Lineup for Aug 16, 1969: Grateful Dead, The Who"
type Lineup struct {
	// Date is the show date of the lineup.
	Date time.Time

	performers []Performer
}

// NewLineup creates a Lineup for date. A zero date means today.
// The performers are copied; their order is preserved.
func NewLineup(date time.Time, performers ...Performer) *Lineup {
	if date.IsZero() {
		date = Today()
	}
	return &Lineup{
		Date:       DateOf(date),
		performers: slices.Clone(performers),
	}
}

// LineupFromNames creates a Lineup of bands from plain names.
func LineupFromNames(names []string, date time.Time) *Lineup {
	performers := make([]Performer, 0, len(names))
	for _, name := range names {
		performers = append(performers, NewPerformer(name, true))
	}
	return NewLineup(date, performers...)
}

// ParseLineup is the inverse of Lineup.String.
//
// The display string only carries performer names, so every parsed performer
// is a band. Names that contain ", " are split apart.
//
// Example:
//
//	l, err := ParseLineup("Lineup for Aug 16, 1969: Grateful Dead, The Who")
func ParseLineup(s string) (*Lineup, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyLineup
	}

	body, ok := strings.CutPrefix(s, lineupPrefix)
	if !ok {
		return nil, fmt.Errorf("malformed lineup %q: missing %q prefix", s, lineupPrefix)
	}

	// The date itself contains ", " but never ": ".
	dateStr, names, ok := strings.Cut(body, lineupSeparator)
	if !ok {
		return nil, fmt.Errorf("malformed lineup %q: missing %q", s, lineupSeparator)
	}

	date, err := ParseDisplayDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("malformed lineup date %q: %w", dateStr, err)
	}

	if names == notSpecified || names == "" {
		return NewLineup(date), nil
	}
	return LineupFromNames(strings.Split(names, performerSeparator), date), nil
}

// Performers returns a copy of the performers in insertion order.
func (l *Lineup) Performers() []Performer {
	return slices.Clone(l.performers)
}

// Len returns the number of performers.
func (l *Lineup) Len() int {
	return len(l.performers)
}

// Iterator returns a fresh iterator positioned before the first performer.
func (l *Lineup) Iterator() *LineupIterator {
	return &LineupIterator{performers: l.performers}
}

// All yields every performer in order. Each call starts a new iteration.
func (l *Lineup) All() iter.Seq[Performer] {
	return l.Iterator().All()
}

// Equal reports whether both lineups share the date and the same performer
// names in the same order.
func (l *Lineup) Equal(other *Lineup) bool {
	if l == nil || other == nil {
		return l == other
	}
	if !l.Date.Equal(other.Date) {
		return false
	}
	return slices.EqualFunc(l.performers, other.performers, Performer.Equal)
}

// String returns "Lineup for <date>: <name>, <name>", or
// "Lineup for <date>: not specified" when there are no performers.
func (l *Lineup) String() string {
	head := lineupPrefix + FormatDate(l.Date) + lineupSeparator
	if len(l.performers) == 0 {
		return head + notSpecified
	}

	names := make([]string, 0, len(l.performers))
	for _, p := range l.performers {
		names = append(names, p.Name)
	}
	return head + strings.Join(names, performerSeparator)
}

// IsDateValid reports whether d lies strictly between the first rock
// festival (June 10, 1967) and today.
func IsDateValid(d time.Time) bool {
	return IsDateValidAt(d, time.Now())
}

// IsDateValidAt is IsDateValid with an explicit notion of today.
func IsDateValidAt(d, now time.Time) bool {
	d = DateOf(d)
	return d.After(firstRockFestival) && d.Before(DateOf(now))
}

// LineupIterator walks the performers of a Lineup once.
//
// Once exhausted it keeps returning false; ask the Lineup for a new
// iterator to start over.
type LineupIterator struct {
	performers []Performer
	pos        int
}

// Next returns the next performer, or false when the iterator is exhausted.
func (it *LineupIterator) Next() (Performer, bool) {
	if it.pos >= len(it.performers) {
		return Performer{}, false
	}
	p := it.performers[it.pos]
	it.pos++
	return p, true
}

// All yields the remaining performers, advancing the iterator.
func (it *LineupIterator) All() iter.Seq[Performer] {
	return func(yield func(Performer) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
