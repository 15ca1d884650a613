// Package segment picks which of several time-ordered log files holds a
// target key.
//
// Rotated logs split one sorted stream across many files. The package
// binary searches those files by their first and last lines, then the
// caller searches inside the chosen file with package search.
package segment
