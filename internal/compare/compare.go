// Package compare builds search comparators that key each line on the text
// before a delimiter.
package compare

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"

	"github.com/minuteman3/log-find-time/internal/search"
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrUnparsableKey = errors.New("unparsable key")
	ErrDelimiter     = errors.New("delimiter must not be empty")
)

// Key returns the text before the first delimiter in line.
func Key(line, delimiter string) (string, error) {
	key, _, ok := strings.Cut(line, delimiter)
	if !ok {
		return "", fmt.Errorf("%w: no %q in %q", ErrMalformedLine, delimiter, line)
	}
	return key, nil
}

// ParseKey parses a timestamp. A format containing '%' is a strftime
// pattern such as "%Y-%m-%d %H:%M:%S"; anything else is a Go reference
// layout such as "2006-01-02 15:04:05".
func ParseKey(value, format string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	if strings.Contains(format, "%") {
		t, err = timefmt.Parse(value, format)
	} else {
		t, err = time.Parse(format, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %q: %v", ErrUnparsableKey, value, format, err)
	}
	return t, nil
}

// ByTime orders lines by the timestamp before delimiter against target.
func ByTime(delimiter, format string, target time.Time) search.Comparator {
	return func(line string) (search.Ordering, error) {
		key, err := Key(line, delimiter)
		if err != nil {
			return 0, err
		}
		t, err := ParseKey(key, format)
		if err != nil {
			return 0, err
		}
		return search.FromCompare(t.Compare(target)), nil
	}
}

// ByTimeString is ByTime with the target given in the same format as the
// line keys. The target is parsed once, here.
func ByTimeString(delimiter, format, target string) (search.Comparator, error) {
	if delimiter == "" {
		return nil, ErrDelimiter
	}
	t, err := ParseKey(target, format)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	return ByTime(delimiter, format, t), nil
}

// ByInt orders lines by the integer before delimiter.
func ByInt(delimiter string, target int64) search.Comparator {
	return func(line string) (search.Ordering, error) {
		key, err := Key(line, delimiter)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUnparsableKey, err)
		}
		return search.FromCompare(cmp.Compare(n, target)), nil
	}
}

// ByString orders lines by the raw key text, byte-wise. ISO 8601
// timestamps sort correctly this way without parsing.
func ByString(delimiter, target string) search.Comparator {
	return func(line string) (search.Ordering, error) {
		key, err := Key(line, delimiter)
		if err != nil {
			return 0, err
		}
		return search.FromCompare(strings.Compare(key, target)), nil
	}
}
