package model

import (
	"fmt"
	"strings"
)

// Unknown is the placeholder used for a performer without a name.
const Unknown = "unknown"

const (
	bandSuffix       = "band"
	soloSuffix       = "solo performer"
	songwriterPrefix = "songwriter ("
	singerSongwriter = "singer-songwriter"
)

// Performer is a solo artist or a band appearing in a lineup.
//
// Roles are a capability set rather than separate types:
//   - a singer has Vocals other than VocalsNone
//   - a songwriter has an Instrument other than InstrumentNone and WritesSongs set
//   - a singer-songwriter has both
//
// Performers compare by name only (see Equal).
//
// Example:
//
//	melanie := NewPerformer("Melanie", false)
//	fmt.Println(melanie) // "Melanie (solo performer)"
//
//	roger := NewSinger("Roger Daltrey", LeadVocals, false)
//	fmt.Println(roger) // "Roger Daltrey (solo performer), lead vocals"
type Performer struct {
	// Name is the performer or band name. Never empty; defaults to Unknown.
	Name string

	// IsBand is true for bands and false for solo performers.
	IsBand bool

	// Vocals is the vocal part for singers, VocalsNone otherwise.
	Vocals Vocals

	// Instrument is the instrument for songwriters, InstrumentNone otherwise.
	Instrument Instrument

	// WritesSongs is true for songwriters.
	WritesSongs bool
}

// NewPerformer creates a Performer. An empty name is replaced with Unknown.
func NewPerformer(name string, isBand bool) Performer {
	if strings.TrimSpace(name) == "" {
		name = Unknown
	}
	return Performer{Name: name, IsBand: isBand}
}

// NewSinger creates a performer who sings the given vocal part.
func NewSinger(name string, vocals Vocals, isBand bool) Performer {
	p := NewPerformer(name, isBand)
	p.Vocals = vocals
	return p
}

// NewSongwriter creates a performer who writes songs and plays the given instrument.
func NewSongwriter(name string, instrument Instrument, isBand bool) Performer {
	p := NewPerformer(name, isBand)
	p.Instrument = instrument
	p.WritesSongs = true
	return p
}

// NewSingerSongwriter creates a performer with both the singer and songwriter capabilities.
func NewSingerSongwriter(name string, vocals Vocals, instrument Instrument, isBand bool) Performer {
	p := NewSongwriter(name, instrument, isBand)
	p.Vocals = vocals
	return p
}

// IsSinger reports whether the performer has a vocal part.
func (p Performer) IsSinger() bool {
	return p.Vocals != VocalsNone
}

// IsSongwriter reports whether the performer writes songs.
func (p Performer) IsSongwriter() bool {
	return p.WritesSongs || p.Instrument != InstrumentNone
}

// IsUnknown reports whether the performer carries the Unknown placeholder name.
func (p Performer) IsUnknown() bool {
	return p.Name == "" || p.Name == Unknown
}

// Equal reports whether two performers have the same name.
func (p Performer) Equal(other Performer) bool {
	return p.Name == other.Name
}

// String returns the display form of the performer.
//
// Examples:
//
//	"The Band (band)"
//	"Melanie (solo performer)"
//	"Roger Daltrey (solo performer), lead vocals"
//	"Pete Townshend (solo performer), songwriter (lead guitar)"
//	"Arlo Guthrie (solo performer), lead vocals, songwriter (acoustic guitar), singer-songwriter"
func (p Performer) String() string {
	if p.IsUnknown() {
		return Unknown
	}

	var sb strings.Builder
	sb.WriteString(p.Name)
	if p.IsBand {
		sb.WriteString(" (" + bandSuffix + ")")
	} else {
		sb.WriteString(" (" + soloSuffix + ")")
	}
	if p.IsSinger() {
		sb.WriteString(", " + p.Vocals.String())
	}
	if p.Instrument != InstrumentNone {
		sb.WriteString(", " + songwriterPrefix + p.Instrument.String() + ")")
	}
	if p.IsSinger() && p.Instrument != InstrumentNone {
		sb.WriteString(", " + singerSongwriter)
	}
	return sb.String()
}

// ParsePerformer is the inverse of Performer.String.
//
// A string without a "(band)" or "(solo performer)" marker is taken as a band
// name. The string "unknown" yields an unknown solo performer.
func ParsePerformer(s string) (Performer, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == Unknown {
		return NewPerformer("", false), nil
	}

	name, kind, roles, ok := splitKind(s)
	if !ok {
		open := strings.Index(s, " (")
		if open == -1 {
			return NewPerformer(s, true), nil
		}
		rest := s[open+2:]
		closing := strings.Index(rest, ")")
		if closing == -1 {
			return Performer{}, fmt.Errorf("malformed performer %q: missing ')'", s)
		}
		return Performer{}, fmt.Errorf("malformed performer %q: unknown kind %q", s, rest[:closing])
	}

	p := NewPerformer(name, kind == bandSuffix)
	if roles == "" {
		return p, nil
	}
	for _, role := range strings.Split(roles, ", ") {
		switch {
		case role == singerSongwriter:
		case strings.HasPrefix(role, songwriterPrefix) && strings.HasSuffix(role, ")"):
			instrument, err := ParseInstrument(strings.TrimSuffix(strings.TrimPrefix(role, songwriterPrefix), ")"))
			if err != nil {
				return Performer{}, fmt.Errorf("malformed performer %q: %w", s, err)
			}
			p.Instrument = instrument
			p.WritesSongs = true
		default:
			vocals, err := ParseVocals(role)
			if err != nil {
				return Performer{}, fmt.Errorf("malformed performer %q: %w", s, err)
			}
			p.Vocals = vocals
		}
	}
	return p, nil
}

// splitKind finds the earliest " (band)" or " (solo performer)" marker that is
// followed by nothing or by ", ". Names may contain parentheses of their own.
func splitKind(s string) (name, kind, roles string, ok bool) {
	best := -1
	for _, k := range []string{bandSuffix, soloSuffix} {
		marker := " (" + k + ")"
		for from := 0; ; {
			i := strings.Index(s[from:], marker)
			if i == -1 {
				break
			}
			i += from
			tail := s[i+len(marker):]
			if tail == "" || strings.HasPrefix(tail, ", ") {
				if best == -1 || i < best {
					best, name, kind, roles = i, s[:i], k, strings.TrimPrefix(tail, ", ")
				}
				break
			}
			from = i + len(marker)
		}
	}
	return name, kind, roles, best != -1
}
