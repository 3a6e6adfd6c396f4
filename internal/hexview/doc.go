// Package hexview renders arbitrary bytes for human inspection.
//
// Ownership boundary:
// - binary-safe display cleaning
// - offset/hex/text dump rows
package hexview
