// Package wiredump decodes and renders captured frame streams for
// inspection.
//
// Ownership boundary:
// - frame and field wire primitives
// - tolerant capture walking
// - human-readable rendering
//
// Decoding favors showing what is there over rejecting what is wrong:
// unknown magics, types and flags render with fallback names, and a
// damaged payload renders its readable prefix plus a hex dump of the
// rest.
package wiredump
