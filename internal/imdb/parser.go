package imdb

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/handiism/woodstock/internal/model"
)

const posterClass = "lister-item-image ribbonize"

// Parser extracts movies from IMDb list pages.
//
// Example usage:
//
//	parser := NewParser(DefaultBaseURL)
//
//	doc, _ := client.FetchDocument(ctx, pageURL)
//	for _, m := range parser.ParseListPage(doc) {
//	    fmt.Println(m.Title, m.Year)
//	}
type Parser struct {
	baseURL string
}

// NewParser creates a Parser resolving relative links against baseURL.
// An empty baseURL means DefaultBaseURL.
func NewParser(baseURL string) *Parser {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Parser{baseURL: baseURL}
}

// ParseListPage returns the movies listed on doc, in page order.
//
// For each h3 holding a link:
//   - Title is the link text
//   - Link is the base URL joined with the href (leading slash dropped)
//   - Year is the text of the element after the link, without parentheses
//
// h3 elements without a link (page footers and the like) are skipped.
// Poster URLs come from the "loadlate" attribute of the poster images and
// are paired with movies by position; movies past the last poster get none.
func (p *Parser) ParseListPage(doc *html.Node) []model.Movie {
	var movies []model.Movie
	for _, h3 := range FindAll(doc, "h3", "") {
		a := findFirst(h3, "a")
		if a == nil {
			continue
		}

		m := model.Movie{
			Title: textContent(a),
			Link:  p.baseURL + strings.TrimLeft(attr(a, "href"), "/"),
		}
		if year := nextElementSibling(a); year != nil {
			m.Year = strings.TrimRight(strings.TrimLeft(textContent(year), "("), ")")
		}
		movies = append(movies, m)
	}

	posters := p.posterURLs(doc)
	for i := range movies {
		if i < len(posters) {
			movies[i].PosterURL = posters[i]
		}
	}
	return movies
}

func (p *Parser) posterURLs(doc *html.Node) []string {
	var urls []string
	for _, div := range FindAll(doc, "div", posterClass) {
		a := findFirst(div, "a")
		if a == nil {
			continue
		}
		img := findFirst(a, "img")
		if img == nil {
			continue
		}
		urls = append(urls, attr(img, "loadlate"))
	}
	return urls
}
