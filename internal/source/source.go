package source

import (
	"errors"
)

// ErrRead is returned when the backing store fails for a reason other than
// reaching the end of the stream. End of stream is reported as io.EOF.
var ErrRead = errors.New("source read failed")

// Source is a bounded stream of characters addressable by position.
//
// RuneAt returns the character starting at pos and its width in position
// units. RuneBefore returns the character ending just before pos. Both return
// io.EOF when no character exists there.
type Source interface {
	Len() int64
	RuneAt(pos int64) (r rune, width int, err error)
	RuneBefore(pos int64) (r rune, width int, err error)
}

// Aligner is implemented by sources whose characters span several
// positions. Align moves pos back to the first position of the character
// covering it.
type Aligner interface {
	Align(pos int64) (int64, error)
}
