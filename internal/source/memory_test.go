package source

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRuneAt(t *testing.T) {
	m := NewMemory("añb\n")
	require.EqualValues(t, 4, m.Len())

	tests := []struct {
		pos  int64
		want rune
		err  error
	}{
		{pos: 0, want: 'a'},
		{pos: 1, want: 'ñ'},
		{pos: 3, want: '\n'},
		{pos: 4, err: io.EOF},
		{pos: -1, err: io.EOF},
	}
	for _, tt := range tests {
		r, w, err := m.RuneAt(tt.pos)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "pos %d", tt.pos)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, r, "pos %d", tt.pos)
		assert.Equal(t, 1, w)
	}
}

func TestMemoryRuneBefore(t *testing.T) {
	m := NewMemory("añb")

	r, _, err := m.RuneBefore(2)
	require.NoError(t, err)
	assert.Equal(t, 'ñ', r)

	r, _, err = m.RuneBefore(3)
	require.NoError(t, err)
	assert.Equal(t, 'b', r)

	_, _, err = m.RuneBefore(0)
	assert.ErrorIs(t, err, io.EOF)
	_, _, err = m.RuneBefore(4)
	assert.ErrorIs(t, err, io.EOF)
}

func TestMemoryEmpty(t *testing.T) {
	m := NewMemory("")
	assert.EqualValues(t, 0, m.Len())
	_, _, err := m.RuneAt(0)
	assert.ErrorIs(t, err, io.EOF)
}
