package model

// Woodstock1969 returns the Woodstock festival (Bethel, NY, Aug 15-17, 1969)
// with a few of the performers of each day.
func Woodstock1969() *Festival {
	day1 := NewLineup(NewDate(1969, 8, 15),
		NewPerformer("Melanie", false),
		NewPerformer("Arlo Guthrie", false),
	)
	day2 := NewLineup(NewDate(1969, 8, 16),
		NewPerformer("Grateful Dead", true),
		NewPerformer("Jefferson Airplane", true),
		NewPerformer("The Who", true),
		NewPerformer("Creedence Clearwater Revival", true),
	)
	day3 := NewLineup(NewDate(1969, 8, 17),
		NewPerformer("Crosby, Stills, Nash and Young", true),
		NewPerformer("Jimi Hendrix", false),
		NewPerformer("The Band", true),
	)

	f, err := NewFestival("Woodstock", "Bethel, NY", NewDate(1969, 8, 15), NewDate(1969, 8, 17), day1, day2, day3)
	if err != nil {
		panic(err)
	}
	return f
}
