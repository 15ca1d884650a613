package segment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minuteman3/log-find-time/internal/compare"
	"github.com/minuteman3/log-find-time/internal/source"
)

func segments(texts ...string) []Segment {
	segs := make([]Segment, len(texts))
	for i, text := range texts {
		segs[i] = Segment{Name: filepath.Join("logs", string(rune('a'+i))), Source: source.NewMemory(text)}
	}
	return segs
}

func TestFind(t *testing.T) {
	segs := segments(
		"1 - a\n2 - b\n3 - c\n",
		"5 - d\n6 - e\n",
		"8 - f\n9 - g\n10 - h\n",
	)

	tests := []struct {
		name   string
		target int64
		index  int
		exact  bool
	}{
		{name: "inside first", target: 2, index: 0, exact: true},
		{name: "first line of middle", target: 5, index: 1, exact: true},
		{name: "last line of last", target: 10, index: 2, exact: true},
		{name: "gap between segments", target: 7, index: 1},
		{name: "before everything", target: 0, index: 0},
		{name: "after everything", target: 42, index: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, exact, err := Find(context.Background(), nil, segs, compare.ByInt(" - ", tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.exact, exact)
		})
	}
}

func TestFindEdgeCases(t *testing.T) {
	t.Run("no segments", func(t *testing.T) {
		index, exact, err := Find(context.Background(), nil, nil, compare.ByInt(" - ", 1))
		require.NoError(t, err)
		assert.Equal(t, -1, index)
		assert.False(t, exact)
	})

	t.Run("single segment", func(t *testing.T) {
		index, exact, err := Find(context.Background(), nil, segments("1 - a\n2 - b"), compare.ByInt(" - ", 2))
		require.NoError(t, err)
		assert.Equal(t, 0, index)
		assert.True(t, exact)
	})

	t.Run("empty segment skipped", func(t *testing.T) {
		segs := segments("1 - a\n2 - b\n", "", "7 - c\n8 - d\n")
		index, exact, err := Find(context.Background(), nil, segs, compare.ByInt(" - ", 8))
		require.NoError(t, err)
		assert.Equal(t, 2, index)
		assert.True(t, exact)
	})

	t.Run("trailing empty segments", func(t *testing.T) {
		segs := segments("1 - a\n2 - b\n", "", "")
		index, exact, err := Find(context.Background(), nil, segs, compare.ByInt(" - ", 9))
		require.NoError(t, err)
		assert.Equal(t, 0, index)
		assert.False(t, exact)
	})

	t.Run("malformed bounds abort", func(t *testing.T) {
		segs := segments("1 - a\n", "junk\n", "7 - c\n")
		_, _, err := Find(context.Background(), nil, segs, compare.ByInt(" - ", 7))
		assert.ErrorIs(t, err, compare.ErrMalformedLine)
	})
}

func TestFindBlankEdgeLines(t *testing.T) {
	tests := []struct {
		name  string
		segs  []Segment
		index int
	}{
		{
			name:  "trailing blank lines",
			segs:  segments("1 - a\n2 - b\n\n", "3 - c\n4 - d\n\n", "5 - e\n6 - f\n\n"),
			index: 1,
		},
		{
			name:  "leading blank lines",
			segs:  segments("\n1 - a\n2 - b\n", "\n\n3 - c\n4 - d\n", "\n5 - e\n6 - f\n"),
			index: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, exact, err := Find(context.Background(), nil, tt.segs, compare.ByInt(" - ", 4))
			require.NoError(t, err)
			assert.Equal(t, tt.index, index)
			assert.True(t, exact)
		})
	}
}

func TestBounds(t *testing.T) {
	first, last, err := Bounds(Segment{Name: "x", Source: source.NewMemory("1 - a\n2 - b\n3 - c\n")})
	require.NoError(t, err)
	assert.Equal(t, "1 - a", first)
	assert.Equal(t, "3 - c", last)

	first, last, err = Bounds(Segment{Name: "padded", Source: source.NewMemory("\n\n1 - a\n2 - b\n\n\n")})
	require.NoError(t, err)
	assert.Equal(t, "1 - a", first)
	assert.Equal(t, "2 - b", last)

	for _, text := range []string{"", "\n", "\n\n\n"} {
		_, _, err = Bounds(Segment{Name: "empty", Source: source.NewMemory(text)})
		assert.ErrorIs(t, err, ErrEmptySegment, "%q", text)
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"app-2020-01-02.log", "app-2020-01-01.log", "other.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "app-dir.log"), 0o700))

	files, err := Expand(filepath.Join(dir, "app-*.log"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "app-2020-01-01.log"),
		filepath.Join(dir, "app-2020-01-02.log"),
	}, files)

	files, err = Expand(filepath.Join(dir, "other.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "other.txt")}, files)
}
