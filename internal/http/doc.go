// Package http provides the HTTP client the crawler fetches pages with.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Refusing redirects (3xx answers surface as *StatusError)
//   - Parsing fetched pages into golang.org/x/net/html trees
//
// # Basic Usage
//
//	client := http.NewClient("woodstock", time.Minute)
//
//	doc, err := client.FetchDocument(ctx, listURL)
//	poster, err := client.DownloadBytes(ctx, posterURL)
package http
