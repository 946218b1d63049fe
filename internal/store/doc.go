// Package store persists festivals, lineups and performers as tagged JSON
// files in the data directory, one file per entry.
package store
