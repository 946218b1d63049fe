package model

import "time"

// DisplayDateLayout is the layout used in display strings, e.g. "Aug 16, 1969".
const DisplayDateLayout = "Jan 02, 2006"

// ISODateLayout is the layout used for persisted dates, e.g. "1969-08-16".
const ISODateLayout = "2006-01-02"

// NewDate returns the calendar date as midnight UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date.
func Today() time.Time {
	return DateOf(time.Now())
}

// FormatDate renders a date as "Aug 15, 1969". The zero time renders as "unknown".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	return t.Format(DisplayDateLayout)
}

// ParseDisplayDate parses the output of FormatDate.
func ParseDisplayDate(s string) (time.Time, error) {
	return time.Parse(DisplayDateLayout, s)
}
