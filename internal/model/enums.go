package model

import (
	"fmt"
	"strings"
)

// Vocals describes the vocal part a performer sings.
// VocalsNone marks a performer who does not sing.
type Vocals int

const (
	VocalsNone Vocals = iota
	LeadVocals
	BackgroundVocals
)

var vocalsNames = map[Vocals]string{
	LeadVocals:       "LEAD_VOCALS",
	BackgroundVocals: "BACKGROUND_VOCALS",
}

// Name returns the upper-case identifier used in JSON, e.g. "LEAD_VOCALS".
// VocalsNone has an empty name.
func (v Vocals) Name() string {
	return vocalsNames[v]
}

// String returns the display form, e.g. "lead vocals".
func (v Vocals) String() string {
	return displayName(v.Name())
}

// MarshalText implements encoding.TextMarshaler.
func (v Vocals) MarshalText() ([]byte, error) {
	return []byte(v.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vocals) UnmarshalText(text []byte) error {
	parsed, err := ParseVocals(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVocals accepts either the identifier ("LEAD_VOCALS") or the display
// form ("lead vocals"). The empty string parses as VocalsNone.
func ParseVocals(s string) (Vocals, error) {
	if s == "" {
		return VocalsNone, nil
	}
	key := identifier(s)
	for v, name := range vocalsNames {
		if name == key {
			return v, nil
		}
	}
	return VocalsNone, fmt.Errorf("unknown vocals %q", s)
}

// Instrument is the instrument a songwriter plays.
// InstrumentNone marks a performer who is not a songwriter.
type Instrument int

const (
	InstrumentNone Instrument = iota
	LeadGuitar
	RhythmGuitar
	BassGuitar
	AcousticGuitar
	Keyboards
	Drums
	Harmonica
)

var instrumentNames = map[Instrument]string{
	LeadGuitar:     "LEAD_GUITAR",
	RhythmGuitar:   "RHYTHM_GUITAR",
	BassGuitar:     "BASS_GUITAR",
	AcousticGuitar: "ACOUSTIC_GUITAR",
	Keyboards:      "KEYBOARDS",
	Drums:          "DRUMS",
	Harmonica:      "HARMONICA",
}

// Name returns the upper-case identifier used in JSON, e.g. "LEAD_GUITAR".
func (i Instrument) Name() string {
	return instrumentNames[i]
}

// String returns the display form, e.g. "lead guitar".
func (i Instrument) String() string {
	return displayName(i.Name())
}

// MarshalText implements encoding.TextMarshaler.
func (i Instrument) MarshalText() ([]byte, error) {
	return []byte(i.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Instrument) UnmarshalText(text []byte) error {
	parsed, err := ParseInstrument(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ParseInstrument accepts either "LEAD_GUITAR" or "lead guitar".
// The empty string parses as InstrumentNone.
func ParseInstrument(s string) (Instrument, error) {
	if s == "" {
		return InstrumentNone, nil
	}
	key := identifier(s)
	for i, name := range instrumentNames {
		if name == key {
			return i, nil
		}
	}
	return InstrumentNone, fmt.Errorf("unknown instrument %q", s)
}

func displayName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}

func identifier(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}
