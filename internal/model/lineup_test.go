package model

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func day2Performers() []Performer {
	return []Performer{
		NewPerformer("Grateful Dead", true),
		NewPerformer("Jefferson Airplane", true),
		NewPerformer("The Who", true),
		NewPerformer("Creedence Clearwater Revival", true),
	}
}

func TestLineup_String(t *testing.T) {
	date := NewDate(1969, time.August, 16)

	l := NewLineup(date, day2Performers()...)
	want := "Lineup for Aug 16, 1969: Grateful Dead, Jefferson Airplane, The Who, Creedence Clearwater Revival"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty := NewLineup(date)
	if got := empty.String(); got != "Lineup for Aug 16, 1969: not specified" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestParseLineup_RoundTrip(t *testing.T) {
	original := NewLineup(NewDate(1969, time.August, 16), day2Performers()...)

	parsed, err := ParseLineup(original.String())
	if err != nil {
		t.Fatalf("ParseLineup() error: %v", err)
	}
	if !parsed.Equal(original) {
		t.Errorf("ParseLineup() = %v, want %v", parsed, original)
	}
}

func TestParseLineup_NotSpecified(t *testing.T) {
	l, err := ParseLineup("Lineup for Aug 15, 1969: not specified")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestParseLineup_Errors(t *testing.T) {
	if _, err := ParseLineup(""); !errors.Is(err, ErrEmptyLineup) {
		t.Errorf("empty input error = %v, want ErrEmptyLineup", err)
	}

	inputs := []string{
		"Schedule for Aug 15, 1969: Melanie",
		"Lineup for Aug 15, 1969 Melanie",
		"Lineup for 15/08/1969: Melanie",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseLineup(in); err == nil {
				t.Errorf("ParseLineup(%q) expected error", in)
			}
		})
	}
}

func TestLineupFromNames(t *testing.T) {
	names := []string{"Grateful Dead", "The Who"}
	l := LineupFromNames(names, NewDate(1969, time.August, 16))

	got := l.Performers()
	if len(got) != 2 || got[0].Name != "Grateful Dead" || got[1].Name != "The Who" {
		t.Errorf("Performers() = %v", got)
	}
	for _, p := range got {
		if !p.IsBand {
			t.Errorf("%s should be a band", p.Name)
		}
	}
}

func TestNewLineup_ZeroDateIsToday(t *testing.T) {
	l := NewLineup(time.Time{})
	if !l.Date.Equal(Today()) {
		t.Errorf("Date = %v, want today", l.Date)
	}
}

func TestLineup_PerformersIsCopy(t *testing.T) {
	input := day2Performers()
	l := NewLineup(NewDate(1969, time.August, 16), input...)

	input[0].Name = "Changed"
	out := l.Performers()
	out[1].Name = "Changed too"

	got := l.Performers()
	if got[0].Name != "Grateful Dead" || got[1].Name != "Jefferson Airplane" {
		t.Errorf("lineup was mutated through a shared slice: %v", got)
	}
}

func TestLineupIterator_Exhaustion(t *testing.T) {
	p1 := NewPerformer("Melanie", false)
	p2 := NewPerformer("Arlo Guthrie", false)
	l := NewLineup(NewDate(1969, time.August, 15), p1, p2)

	it := l.Iterator()
	first := slices.Collect(it.All())
	if len(first) != 2 || first[0] != p1 || first[1] != p2 {
		t.Fatalf("first iteration = %v, want [%v %v]", first, p1, p2)
	}

	second := slices.Collect(it.All())
	if len(second) != 0 {
		t.Errorf("second iteration over the same iterator = %v, want none", second)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() on an exhausted iterator should return false")
	}

	fresh := slices.Collect(l.All())
	if len(fresh) != 2 {
		t.Errorf("fresh iteration = %v, want 2 performers", fresh)
	}
}

func TestLineupIterator_Empty(t *testing.T) {
	l := NewLineup(NewDate(1969, time.August, 15))
	if _, ok := l.Iterator().Next(); ok {
		t.Error("empty lineup iterator should yield nothing")
	}
}

func TestLineupIterator_EarlyBreakResumes(t *testing.T) {
	l := NewLineup(NewDate(1969, time.August, 16), day2Performers()...)
	it := l.Iterator()

	for range it.All() {
		break
	}
	p, ok := it.Next()
	if !ok || p.Name != "Jefferson Airplane" {
		t.Errorf("Next() after break = %v, %v; want Jefferson Airplane", p, ok)
	}
}

func TestIsDateValidAt(t *testing.T) {
	now := NewDate(2024, time.January, 1)
	tests := []struct {
		date time.Time
		want bool
	}{
		{NewDate(1969, time.August, 16), true},
		{NewDate(1967, time.June, 10), false},
		{NewDate(1967, time.June, 11), true},
		{NewDate(1950, time.January, 1), false},
		{now, false},
		{NewDate(2030, time.January, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(ISODateLayout), func(t *testing.T) {
			if got := IsDateValidAt(tt.date, now); got != tt.want {
				t.Errorf("IsDateValidAt(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
