package search

import (
	"errors"
	"io"
	"slices"

	"github.com/minuteman3/log-find-time/internal/source"
)

// Locate returns the line containing pos, without its newline. Found is
// false when pos is outside the source or addresses an empty line.
//
// A position on a newline belongs to the line the newline terminates.
func Locate(src source.Source, pos int64) (line string, found bool, err error) {
	if pos < 0 || pos >= src.Len() {
		return "", false, nil
	}
	if a, ok := src.(source.Aligner); ok {
		if pos, err = a.Align(pos); err != nil {
			return "", false, err
		}
	}

	var fwd []rune
	for i := pos; ; {
		r, w, err := src.RuneAt(i)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", false, err
		}
		if r == '\n' {
			break
		}
		fwd = append(fwd, r)
		i += int64(w)
	}

	var back []rune
	for i := pos; i > 0; {
		r, w, err := src.RuneBefore(i)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", false, err
		}
		if r == '\n' {
			break
		}
		back = append(back, r)
		i -= int64(w)
	}

	if len(fwd) == 0 && len(back) == 0 {
		return "", false, nil
	}
	slices.Reverse(back)
	return string(append(back, fwd...)), true, nil
}
