package codec

import (
	"fmt"

	"github.com/handiism/woodstock/internal/model"
)

// JSONFestival is the field map stored under the "__Festival__" tag.
type JSONFestival struct {
	Name     string               `json:"name"`
	Location string               `json:"location"`
	Start    *ISODate             `json:"start"`
	End      *ISODate             `json:"end"`
	Lineups  nested[TaggedLineup] `json:"lineups"`
}

// TaggedFestival is a festival wrapped in its type tag.
type TaggedFestival struct {
	Festival *JSONFestival `json:"__Festival__"`
}

// NewJSONFestival converts a model.Festival to its JSON form.
func NewJSONFestival(f *model.Festival) *JSONFestival {
	lineups := f.Lineups()
	jf := &JSONFestival{
		Name:     f.Name,
		Location: f.Location,
		Start:    &ISODate{Time: f.Start},
		End:      &ISODate{Time: f.End},
		Lineups:  make(nested[TaggedLineup], 0, len(lineups)),
	}
	for _, l := range lineups {
		jf.Lineups = append(jf.Lineups, TaggedLineup{Lineup: NewJSONLineup(l)})
	}
	return jf
}

// ToFestival converts JSONFestival to a model.Festival.
//
// The festival is rebuilt through model.NewFestival, so a file with a lineup
// dated outside the festival fails with *model.LineupDateOutOfRangeError.
func (jf *JSONFestival) ToFestival() (*model.Festival, error) {
	lineups := make([]*model.Lineup, 0, len(jf.Lineups))
	for i, tl := range jf.Lineups {
		if tl.Lineup == nil {
			return nil, fmt.Errorf("lineup %d: %w", i, errMissingTag(TagLineup))
		}
		l, err := tl.Lineup.ToLineup()
		if err != nil {
			return nil, fmt.Errorf("lineup %d: %w", i, err)
		}
		lineups = append(lineups, l)
	}

	var start, end ISODate
	if jf.Start != nil {
		start = *jf.Start
	}
	if jf.End != nil {
		end = *jf.End
	}
	return model.NewFestival(jf.Name, jf.Location, start.Time, end.Time, lineups...)
}
