// Package source provides random access to the characters of a text stream.
//
// A Source answers "which character sits at position p" without reading the
// stream sequentially. Two families exist: Memory, a pre-decoded rune buffer
// whose positions are character indexes, and Store, which reads through an
// io.ReaderAt one character at a time and whose positions are byte offsets.
// Store decodes with a Codec, so variable-width encodings such as UTF-8 and
// UTF-16 advance by each character's real width.
//
// Open wraps a file in a Store, transparently reading seekable zstd archives
// through their frame index.
package source
