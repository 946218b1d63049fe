package codec

import "github.com/handiism/woodstock/internal/model"

// JSONPerformer is the field map stored under the "__Performer__" tag.
type JSONPerformer struct {
	Name        string           `json:"name"`
	IsBand      bool             `json:"is_band"`
	Vocals      model.Vocals     `json:"vocals,omitempty"`
	Instrument  model.Instrument `json:"instrument,omitempty"`
	WritesSongs bool             `json:"writes_songs,omitempty"`

	// LegacyName is the attribute name older files used for the performer name.
	LegacyName string `json:"_Performer__name,omitempty"`
}

// TaggedPerformer is a performer wrapped in its type tag.
type TaggedPerformer struct {
	Performer *JSONPerformer `json:"__Performer__"`
}

// NewJSONPerformer converts a model.Performer to its JSON form.
func NewJSONPerformer(p model.Performer) *JSONPerformer {
	return &JSONPerformer{
		Name:        p.Name,
		IsBand:      p.IsBand,
		Vocals:      p.Vocals,
		Instrument:  p.Instrument,
		WritesSongs: p.WritesSongs,
	}
}

// ToPerformer converts JSONPerformer to a model.Performer.
func (jp *JSONPerformer) ToPerformer() model.Performer {
	name := jp.Name
	if name == "" {
		name = jp.LegacyName
	}

	p := model.NewPerformer(name, jp.IsBand)
	p.Vocals = jp.Vocals
	p.Instrument = jp.Instrument
	p.WritesSongs = jp.WritesSongs || jp.Instrument != model.InstrumentNone
	return p
}

func tagPerformer(p model.Performer) TaggedPerformer {
	return TaggedPerformer{Performer: NewJSONPerformer(p)}
}
