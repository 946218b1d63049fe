package model

// Movie is one entry scraped from a movie list page.
type Movie struct {
	// Title is the movie title as listed.
	Title string `json:"title"`

	// Link is the absolute URL of the movie page.
	Link string `json:"link"`

	// Year is the release year text, e.g. "1970" or "I 2019".
	Year string `json:"year"`

	// PosterURL is the poster image URL. Empty if the page listed none.
	PosterURL string `json:"poster_url,omitempty"`
}

// HasPoster reports whether a poster URL is known.
func (m Movie) HasPoster() bool {
	return m.PosterURL != ""
}
