// Package imdb scrapes movie records from IMDb multi-page list pages.
//
// The package handles two concerns:
//
//  1. Addressing a specific page of a multi-page list (PageURL)
//  2. Extracting movies from a parsed page (Parser.ParseListPage)
//
// # Page Addressing
//
//	url, err := imdb.PageURL("https://www.imdb.com/search/keyword/?keywords=rock-music&page=1", 3)
//	// https://www.imdb.com/search/keyword/?keywords=rock-music&page=3
//
// # List Parsing
//
// Every movie on a list page sits in an h3 holding the title link followed
// by the release year. Posters live in separate "lister-item-image ribbonize"
// blocks and are matched to titles by position.
//
//	parser := imdb.NewParser("https://www.imdb.com/")
//	movies := parser.ParseListPage(doc)
//	for _, m := range movies {
//	    fmt.Printf("%s (%s) %s\n", m.Title, m.Year, m.Link)
//	}
package imdb
