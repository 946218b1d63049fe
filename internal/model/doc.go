// Package model defines the core data structures used throughout woodstock.
//
// # Performer
//
// Performer is a solo artist or a band. Singers and songwriters are
// performers with vocal and instrument capabilities set:
//
//	melanie := model.NewPerformer("Melanie", false)
//	arlo := model.NewSingerSongwriter("Arlo Guthrie", model.LeadVocals, model.AcousticGuitar, false)
//
// # Lineup
//
// Lineup is the ordered list of performers on one date:
//
//	day1 := model.NewLineup(model.NewDate(1969, time.August, 15), melanie, arlo)
//	for p := range day1.All() {
//	    fmt.Println(p.Name)
//	}
//
// # Festival
//
// Festival groups lineups and validates that every lineup falls within its
// start and end dates:
//
//	woodstock, err := model.NewFestival("Woodstock", "Bethel, NY", start, end, day1, day2, day3)
//
// Construction errors (*StartAfterEndError, *LineupDateOutOfRangeError,
// *InvalidFieldError) all wrap ErrInvalidFestival.
//
// # Movie
//
// Movie is one record scraped from a movie list page by the crawler.
//
// # Dates
//
// Dates are time.Time values at midnight UTC. NewDate builds one, DateOf
// truncates, and FormatDate renders the display form "Aug 15, 1969".
package model
