// Package streaming serves media files for content items: HLS
// playlists and segments, audio renditions, and original-file
// downloads.
//
// Content rows carry media paths relative to the configured media
// root. Every request resolves the row first, then the path, then the
// file, and each missing link maps to 404 without exposing where on
// disk the file was expected. Segment names are validated before they
// touch the filesystem.
package streaming
