package source

import (
	"errors"
	"fmt"
	"io"
)

// Store is a Source backed by an io.ReaderAt. Positions are byte offsets
// into r. Every character fetch is one ReadAt of at most the codec's
// maximum width; nothing is cached.
type Store struct {
	r     io.ReaderAt
	size  int64
	codec Codec
}

// NewStore returns a Store over the first size bytes of r.
func NewStore(r io.ReaderAt, size int64, codec Codec) *Store {
	if codec == nil {
		codec = UTF8
	}
	return &Store{r: r, size: size, codec: codec}
}

// Len returns the size in bytes.
func (s *Store) Len() int64 {
	return s.size
}

// Codec returns the codec characters are decoded with.
func (s *Store) Codec() Codec {
	return s.codec
}

func (s *Store) RuneAt(pos int64) (rune, int, error) {
	if pos < 0 || pos >= s.size {
		return 0, 0, io.EOF
	}
	p, err := s.read(pos, min(int64(s.codec.MaxWidth()), s.size-pos))
	if err != nil {
		return 0, 0, err
	}
	r, w := s.codec.DecodeRune(p)
	if w == 0 {
		return 0, 0, io.EOF
	}
	return r, w, nil
}

func (s *Store) RuneBefore(pos int64) (rune, int, error) {
	if pos <= 0 || pos > s.size {
		return 0, 0, io.EOF
	}
	lo := max(0, pos-int64(s.codec.MaxWidth()))
	p, err := s.read(lo, pos-lo)
	if err != nil {
		return 0, 0, err
	}
	r, w := s.codec.DecodeLastRune(p)
	if w == 0 {
		return 0, 0, io.EOF
	}
	return r, w, nil
}

// Align moves pos back onto a code unit boundary and then to the start of
// the character containing it. Positions outside the stream are returned
// unchanged.
func (s *Store) Align(pos int64) (int64, error) {
	if pos < 0 || pos >= s.size {
		return pos, nil
	}
	unit := int64(s.codec.UnitWidth())
	pos -= pos % unit
	maxWidth := int64(s.codec.MaxWidth())
	if maxWidth == unit {
		return pos, nil
	}

	lo := max(0, pos-(maxWidth-unit))
	hi := min(s.size, pos+maxWidth)
	p, err := s.read(lo, hi-lo)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return pos, nil
		}
		return 0, err
	}
	if int(pos-lo) >= len(p) {
		return pos, nil
	}
	return lo + int64(s.codec.RuneStart(p, int(pos-lo))), nil
}

func (s *Store) read(off, n int64) ([]byte, error) {
	buf := make([]byte, n)
	k, err := s.r.ReadAt(buf, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w at offset %d: %w", ErrRead, off, err)
	}
	if k == 0 {
		return nil, io.EOF
	}
	return buf[:k], nil
}
