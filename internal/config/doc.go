// Package config provides configuration management for woodstock.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Locating the data directory used for stored festivals
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Project directory is the working directory, data goes to ./data
//	// One list page crawled, four pages fetched concurrently
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/woodstock.yaml")
//	if err != nil {
//	    // Malformed file or out-of-range values
//	}
//
// Missing files are not an error: Load returns the defaults.
//
// # Configuration Options
//
// Settings includes options for:
//   - Project and data directories
//   - Crawler pages, concurrency, timeouts and retry backoff
//   - Poster thumbnails
//   - Log level
package config
