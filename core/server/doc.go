// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings: the HTTP
// port, the API key guarding mutating endpoints, and the media root directory
// that streaming resolves content files against.
//
// ResolveMediaPath is the single place that turns a content row's stored URL
// field into an absolute filesystem path, and it refuses paths that would
// escape the media root.
package server
