package server

import (
	"path/filepath"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the admin and sync API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MediaRoot is the local directory that stores processed media
	// (HLS playlists and segments, audio files, originals). Content row
	// URL fields are resolved relative to this directory.
	MediaRoot string `mapstructure:"media_root" default:"./storage"`
}

// ResolveMediaPath joins a content URL field with the media root and
// returns the absolute path, or ok=false when the resulting path would
// escape the media root.
func (c Config) ResolveMediaPath(rel string) (string, bool) {
	root, err := filepath.Abs(c.MediaRoot)
	if err != nil {
		return "", false
	}
	p, err := filepath.Abs(filepath.Join(root, rel))
	if err != nil {
		return "", false
	}
	if p != root && !strings.HasPrefix(p, root+string(filepath.Separator)) {
		return "", false
	}
	return p, true
}
