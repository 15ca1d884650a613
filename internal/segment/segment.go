package segment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/minuteman3/log-find-time/internal/logging"
	"github.com/minuteman3/log-find-time/internal/search"
	"github.com/minuteman3/log-find-time/internal/source"
)

// ErrEmptySegment means a segment has no first or last line.
var ErrEmptySegment = errors.New("segment has no lines")

// Segment is one file of a sorted stream.
type Segment struct {
	Name   string
	Source source.Source
}

// Expand returns the files matching a doublestar glob, sorted by name. A
// pattern without glob syntax that names an existing file matches itself.
func Expand(pattern string) ([]string, error) {
	files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
	}
	// Sort files (rotation schemes usually name them in time order, but just to be safe)
	sort.Strings(files)
	return files, nil
}

// Bounds returns the first and last lines of a segment. Blank lines at
// either end of the segment are skipped.
func Bounds(seg Segment) (first, last string, err error) {
	src := seg.Source

	// Step over leading newlines to the first character of the first line.
	head := int64(0)
	for {
		r, w, err := src.RuneAt(head)
		if errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("%s: %w", seg.Name, ErrEmptySegment)
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to read first line of %s: %w", seg.Name, err)
		}
		if r != '\n' {
			break
		}
		head += int64(w)
	}

	// Step back over trailing newlines to the end of the last line.
	tail := src.Len()
	for {
		r, w, err := src.RuneBefore(tail)
		if errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("%s: %w", seg.Name, ErrEmptySegment)
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to read last line of %s: %w", seg.Name, err)
		}
		if r != '\n' {
			break
		}
		tail -= int64(w)
	}

	first, found, err := search.Locate(src, head)
	if err != nil {
		return "", "", fmt.Errorf("failed to read first line of %s: %w", seg.Name, err)
	}
	if !found {
		return "", "", fmt.Errorf("%s: %w", seg.Name, ErrEmptySegment)
	}

	// tail-1 lies inside the last character of the last line.
	last, found, err = search.Locate(src, tail-1)
	if err != nil {
		return "", "", fmt.Errorf("failed to read last line of %s: %w", seg.Name, err)
	}
	if !found {
		return "", "", fmt.Errorf("%s: %w", seg.Name, ErrEmptySegment)
	}
	return first, last, nil
}

// contains reports where the target falls relative to a segment: -1 before
// it, 0 inside it, 1 after it.
func contains(seg Segment, cmp search.Comparator) (int, error) {
	first, last, err := Bounds(seg)
	if err != nil {
		return 0, err
	}
	o, err := cmp(first)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", seg.Name, err)
	}
	if o == search.Greater {
		return -1, nil
	}
	o, err = cmp(last)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", seg.Name, err)
	}
	if o == search.Less {
		return 1, nil
	}
	return 0, nil
}

// Find performs a binary search on segments to find which contains the
// target. exact is true when the target lies between the chosen segment's
// first and last keys. Otherwise index is the closest segment preceding the
// target, or 0 when the target precedes every segment. Empty segments are
// skipped; any other failure aborts the search.
func Find(ctx context.Context, logger *slog.Logger, segments []Segment, cmp search.Comparator) (index int, exact bool, err error) {
	logger = logging.Default(logger).With("component", "segment")
	if len(segments) == 0 {
		return -1, false, nil
	}

	left, right := 0, len(segments)-1
	for left <= right {
		if err := ctx.Err(); err != nil {
			return -1, false, err
		}
		mid := left + (right-left)/2

		// Empty segments carry no keys, so probe the next one along instead.
		probe := mid
		pos, err := contains(segments[probe], cmp)
		for errors.Is(err, ErrEmptySegment) && probe < right {
			logger.Warn("skipping empty segment", "segment", segments[probe].Name)
			probe++
			pos, err = contains(segments[probe], cmp)
		}
		if errors.Is(err, ErrEmptySegment) {
			logger.Warn("skipping empty segment", "segment", segments[probe].Name)
			right = mid - 1
			continue
		}
		if err != nil {
			return -1, false, err
		}

		switch pos {
		case 0:
			logger.Debug("segment selected", "segment", segments[probe].Name)
			return probe, true, nil
		case -1:
			right = mid - 1
		default:
			left = probe + 1
		}
	}

	// No exact match, return the closest segment that's before the target
	if left > 0 {
		return left - 1, false, nil
	}
	return 0, false, nil
}
