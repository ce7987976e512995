// Package memory sets Go's soft memory limit from the container limit.
//
// Decoding a large photo allocates width*height*4 bytes at once, so a run
// over a folder of 50MP pictures can climb quickly. Call ConfigureFromEnv
// first thing in main:
//
//	MEMORY_LIMIT=2147483648  container limit in bytes (Downward API)
//	MEMORY_RATIO=0.75        share given to the Go heap (default 0.75)
//
// An explicit GOMEMLIMIT always wins.
package memory
