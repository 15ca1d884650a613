// Command log-find-time finds the line of a large, time-sorted log file that
// carries a specific timestamp.
//
// It never builds an index. The file is binary searched by byte offset, and
// the line around each probe is recovered by scanning to the surrounding
// newlines, so lookups take a logarithmic number of small reads. Seekable
// zstd archives, UTF-16 files and single-byte charsets are supported. A glob
// pattern first selects the matching file among rotated logs.
//
// Usage:
//
//	log-find-time app.log "%Y-%m-%d %H:%M:%S" " - " "2023-04-01 12:30:45"
//	log-find-time --config=search.ini "logs/app-*.log" "2023-04-01 12:30:45"
package main
