// Package inspector serves the byte inspection toolkit over HTTP.
//
// Ownership boundary:
// - HTTP surface for hexdump/escape/clean/frames/host operations
// - sample capture lookup under the configured data dir
// - daemon lifecycle
package inspector
