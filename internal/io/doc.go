// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Atomic file writes
//   - Filename sanitization and slugs for stored entries
//   - Directory creation
//   - Poster image resizing and format conversion
//
// # File Operations
//
//	err := ioutils.WriteFileAtomic("/data/woodstock.json", data)
//	err := ioutils.EnsureDir("/data/posters")
//
// # Names
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // "Song_ Part 1_2"
//	slug := ioutils.Slugify("Woodstock 1969")          // "woodstock-1969"
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	thumb, _ := svc.ResizeImage(ctx, posterData, 300, 300)
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
