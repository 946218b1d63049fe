package codec

import (
	"errors"
	"fmt"

	"github.com/handiism/woodstock/internal/model"
)

// JSONLineup is the field map stored under the "__Lineup__" tag.
type JSONLineup struct {
	Performers nested[TaggedPerformer] `json:"performers"`
	Date       *ISODate                `json:"date"`
}

// TaggedLineup is a lineup wrapped in its type tag.
type TaggedLineup struct {
	Lineup *JSONLineup `json:"__Lineup__"`
}

// NewJSONLineup converts a model.Lineup to its JSON form.
func NewJSONLineup(l *model.Lineup) *JSONLineup {
	performers := make(nested[TaggedPerformer], 0, l.Len())
	for p := range l.All() {
		performers = append(performers, tagPerformer(p))
	}
	return &JSONLineup{
		Performers: performers,
		Date:       &ISODate{Time: l.Date},
	}
}

// ToLineup converts JSONLineup to a model.Lineup.
func (jl *JSONLineup) ToLineup() (*model.Lineup, error) {
	if jl.Date == nil || jl.Date.IsZero() {
		return nil, errors.New("lineup has no date")
	}

	performers := make([]model.Performer, 0, len(jl.Performers))
	for i, tp := range jl.Performers {
		if tp.Performer == nil {
			return nil, fmt.Errorf("performer %d: %w", i, errMissingTag(TagPerformer))
		}
		performers = append(performers, tp.Performer.ToPerformer())
	}
	return model.NewLineup(jl.Date.Time, performers...), nil
}
