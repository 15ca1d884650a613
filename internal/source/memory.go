package source

import "io"

// Memory is an in-memory Source over decoded text. Positions are rune
// indexes, so every character has width 1.
type Memory struct {
	runes []rune
}

// NewMemory decodes text once and serves characters from the result.
func NewMemory(text string) *Memory {
	return &Memory{runes: []rune(text)}
}

// Len returns the number of characters.
func (m *Memory) Len() int64 {
	return int64(len(m.runes))
}

func (m *Memory) RuneAt(pos int64) (rune, int, error) {
	if pos < 0 || pos >= int64(len(m.runes)) {
		return 0, 0, io.EOF
	}
	return m.runes[pos], 1, nil
}

func (m *Memory) RuneBefore(pos int64) (rune, int, error) {
	if pos <= 0 || pos > int64(len(m.runes)) {
		return 0, 0, io.EOF
	}
	return m.runes[pos-1], 1, nil
}
