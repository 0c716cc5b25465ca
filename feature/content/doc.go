// Package content exposes content item reads, view and download
// counters, and the admin write path. Counters update with a single
// SQL expression so concurrent requests never lose increments.
package content
