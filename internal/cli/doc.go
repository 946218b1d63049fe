// Package cli implements the woodstock command line.
//
//	woodstock demo [--save] [--json]
//	woodstock show <name|path>
//	woodstock encode-lineup "<lineup>" [--save NAME]
//	woodstock list
//	woodstock crawl <list-url> [--pages N] [--posters DIR] [--json]
//	woodstock config show | init <path>
//
// Every command accepts --config, --data-dir and --verbose.
package cli
