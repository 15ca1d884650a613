package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minuteman3/log-find-time/internal/logging"
	"github.com/minuteman3/log-find-time/internal/source"
)

// Ordering is a line's key compared to the target key.
type Ordering int

const (
	Less    Ordering = -1 // line key sorts before the target
	Equal   Ordering = 0
	Greater Ordering = 1 // line key sorts after the target
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// FromCompare maps a cmp.Compare style result onto an Ordering.
func FromCompare(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}

// Comparator orders a line against a target key held by the comparator.
// Lines it cannot parse must produce an error, never an Ordering.
type Comparator func(line string) (Ordering, error)

// Result describes one search.
type Result struct {
	Line        string
	Found       bool
	Comparisons int
}

// Searcher runs line searches. It holds no per-search state and is safe
// for concurrent use.
type Searcher struct {
	logger *slog.Logger
}

// NewSearcher returns a Searcher logging through logger; nil discards.
func NewSearcher(logger *slog.Logger) *Searcher {
	logger = logging.Default(logger)
	return &Searcher{logger: logger.With("component", "search")}
}

// Search looks for a line comparing Equal within the first length
// positions of src.
//
// The interval [base, base+size) halves every step. base moves to the probe
// on Less and stays put otherwise, so this is a partition-point search with
// an early exit on Equal. With duplicate keys it returns whichever equal
// line it probes first, not necessarily the first or last one.
func (s *Searcher) Search(ctx context.Context, src source.Source, length int64, cmp Comparator) (Result, error) {
	var res Result
	if length < 0 || length > src.Len() {
		return res, fmt.Errorf("%w: %d of %d", ErrLength, length, src.Len())
	}
	if length == 0 {
		return res, nil
	}

	start := time.Now()
	s.logger.Debug("search started", "length", length)

	base, size := int64(0), length
	for size > 1 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		half := size / 2
		mid := base + half

		line, found, err := Locate(src, mid)
		if err != nil {
			return res, &PositionError{Pos: mid, Err: err}
		}
		if !found {
			return res, &PositionError{Pos: mid, Err: ErrNoLineAtPosition}
		}

		res.Comparisons++
		ord, err := cmp(line)
		if err != nil {
			return res, err
		}
		// Any negative or positive value counts, not only -1 and 1.
		switch FromCompare(int(ord)) {
		case Less:
			base = mid
		case Equal:
			res.Line, res.Found = line, true
			s.logger.Debug("search matched", "position", mid, "comparisons", res.Comparisons, "elapsed", time.Since(start))
			return res, nil
		}
		size -= half
	}

	s.logger.Debug("search exhausted", "comparisons", res.Comparisons, "elapsed", time.Since(start))
	return res, nil
}

// Search runs a single search with a discarding logger and no cancellation.
func Search(src source.Source, length int64, cmp Comparator) (string, bool, error) {
	res, err := NewSearcher(nil).Search(context.Background(), src, length, cmp)
	return res.Line, res.Found, err
}
