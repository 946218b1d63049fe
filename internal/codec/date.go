package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/handiism/woodstock/internal/model"
)

// ISODate is a calendar date encoded as "YYYY-MM-DD".
type ISODate struct {
	time.Time
}

// MarshalJSON writes the date as an ISO-8601 calendar date string.
func (d ISODate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(model.ISODateLayout))
}

// UnmarshalJSON parses "1969-08-15". Full RFC 3339 timestamps are accepted
// and truncated to their date.
func (d *ISODate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	formats := []string{
		model.ISODateLayout,
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			d.Time = model.DateOf(t)
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %q", s)
}
