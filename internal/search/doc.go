// Package search finds a line in a sorted, unindexed text source.
//
// Lines are recovered on demand from any position with Locate, which scans
// outward to the surrounding newlines. Search narrows an offset interval
// over the source with a caller-supplied Comparator and needs O(log n)
// Locate calls. No index is built or kept between calls.
package search
