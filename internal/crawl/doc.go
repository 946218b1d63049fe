// Package crawl coordinates crawling of multi-page movie lists.
//
// The Manager fetches list pages through a Fetcher, parses them with the
// imdb package and optionally saves the movie posters as thumbnails.
//
// # Collecting Movies
//
//	mgr := crawl.NewManager(settings,
//	    crawl.WithLogger(logger),
//	    crawl.WithProgress(func(e crawl.ProgressEvent) {
//	        fmt.Printf("[%s] %s\n", e.Level, e.Message)
//	    }),
//	)
//	movies, err := mgr.Collect(ctx, startURL)
//
// # Walking Pages One By One
//
//	cursor := mgr.Pages(startURL, 3)
//	for page, doc := range cursor.All(ctx) {
//	    ...
//	}
//	if err := cursor.Err(); err != nil {
//	    ...
//	}
//
// # Posters
//
// Poster downloads are retried with exponential backoff: attempt n waits
// retry_cooldown * retry_exponent^n seconds.
//
//	paths, err := mgr.SavePosters(ctx, movies, filepath.Join(dataDir, "posters"))
package crawl
