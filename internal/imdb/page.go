package imdb

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the site root relative movie links are resolved against.
const DefaultBaseURL = "https://www.imdb.com/"

// PageURL returns start with its "page" query parameter set to page.
//
// Any existing page parameter is replaced; the other parameters keep
// their values.
//
// Example:
//
//	PageURL("https://www.imdb.com/search/keyword/?keywords=rock&page=1&sort=moviemeter,asc", 2)
//	// https://www.imdb.com/search/keyword/?keywords=rock&page=2&sort=moviemeter%2Casc
func PageURL(start string, page int) (string, error) {
	if page < 1 {
		return "", fmt.Errorf("page %d: pages start at 1", page)
	}
	u, err := url.Parse(start)
	if err != nil {
		return "", fmt.Errorf("invalid list url %q: %w", start, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid list url %q: must be absolute", start)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
