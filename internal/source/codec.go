package source

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	ErrUnknownEncoding     = errors.New("unknown encoding")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Codec decodes single characters of one text encoding.
type Codec interface {
	Name() string

	// MaxWidth is the widest character in bytes.
	MaxWidth() int

	// UnitWidth is the code unit size. Characters always start on a
	// multiple of it.
	UnitWidth() int

	// DecodeRune decodes the first character of p and returns its width.
	// An empty p yields width 0. Invalid input yields utf8.RuneError with
	// the width of one code unit.
	DecodeRune(p []byte) (rune, int)

	// DecodeLastRune is DecodeRune for the last character of p.
	DecodeLastRune(p []byte) (rune, int)

	// RuneStart returns the index of the first byte of the character
	// covering p[i].
	RuneStart(p []byte, i int) int
}

var (
	UTF8    Codec = utf8Codec{}
	UTF16LE Codec = utf16Codec{name: "UTF-16LE", order: binary.LittleEndian}
	UTF16BE Codec = utf16Codec{name: "UTF-16BE", order: binary.BigEndian}
)

// LookupCodec resolves an encoding name. UTF-8 and UTF-16 are decoded
// natively; any single-byte IANA charset is decoded through its code page.
func LookupCodec(name string) (Codec, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "_", "-") {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "utf-16le", "utf16le":
		return UTF16LE, nil
	case "utf-16be", "utf16be":
		return UTF16BE, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return charmapCodec{cm: cm}, nil
}

// DetectCodec reads the byte-order mark at the start of r, if any, and
// returns the matching codec plus the number of bytes the mark occupies.
// Streams without a mark are treated as UTF-8.
func DetectCodec(r io.ReaderAt) (Codec, int64, error) {
	var bom [3]byte
	n, err := r.ReadAt(bom[:], 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("%w: byte-order mark: %w", ErrRead, err)
	}
	switch {
	case n >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF:
		return UTF8, 3, nil
	case n >= 2 && bom[0] == 0xFF && bom[1] == 0xFE:
		return UTF16LE, 2, nil
	case n >= 2 && bom[0] == 0xFE && bom[1] == 0xFF:
		return UTF16BE, 2, nil
	}
	return UTF8, 0, nil
}

type utf8Codec struct{}

func (utf8Codec) Name() string   { return "UTF-8" }
func (utf8Codec) MaxWidth() int  { return utf8.UTFMax }
func (utf8Codec) UnitWidth() int { return 1 }

func (utf8Codec) DecodeRune(p []byte) (rune, int) {
	return utf8.DecodeRune(p)
}

func (utf8Codec) DecodeLastRune(p []byte) (rune, int) {
	return utf8.DecodeLastRune(p)
}

func (utf8Codec) RuneStart(p []byte, i int) int {
	for j := i; j >= 0 && i-j < utf8.UTFMax; j-- {
		if !utf8.RuneStart(p[j]) {
			continue
		}
		if j == i {
			return i
		}
		// A lead byte only owns p[i] if its encoding reaches that far.
		if _, w := utf8.DecodeRune(p[j:]); j+w > i {
			return j
		}
		return i
	}
	return i
}

type utf16Codec struct {
	name  string
	order binary.ByteOrder
}

func (c utf16Codec) Name() string { return c.name }
func (utf16Codec) MaxWidth() int  { return 4 }
func (utf16Codec) UnitWidth() int { return 2 }

func (c utf16Codec) unit(p []byte, i int) rune {
	return rune(c.order.Uint16(p[i:]))
}

func (c utf16Codec) DecodeRune(p []byte) (rune, int) {
	if len(p) < 2 {
		if len(p) == 0 {
			return utf8.RuneError, 0
		}
		return utf8.RuneError, len(p)
	}
	u := c.unit(p, 0)
	if !utf16.IsSurrogate(u) {
		return u, 2
	}
	if isHighSurrogate(u) && len(p) >= 4 {
		if r := utf16.DecodeRune(u, c.unit(p, 2)); r != utf8.RuneError {
			return r, 4
		}
	}
	return utf8.RuneError, 2
}

func (c utf16Codec) DecodeLastRune(p []byte) (rune, int) {
	n := len(p)
	if n < 2 {
		if n == 0 {
			return utf8.RuneError, 0
		}
		return utf8.RuneError, n
	}
	u := c.unit(p, n-2)
	if !utf16.IsSurrogate(u) {
		return u, 2
	}
	if !isHighSurrogate(u) && n >= 4 {
		if r := utf16.DecodeRune(c.unit(p, n-4), u); r != utf8.RuneError {
			return r, 4
		}
	}
	return utf8.RuneError, 2
}

func (c utf16Codec) RuneStart(p []byte, i int) int {
	if i < 2 || i+2 > len(p) {
		return i
	}
	u := c.unit(p, i)
	if utf16.IsSurrogate(u) && !isHighSurrogate(u) && isHighSurrogate(c.unit(p, i-2)) {
		return i - 2
	}
	return i
}

func isHighSurrogate(r rune) bool {
	return r >= 0xD800 && r < 0xDC00
}

type charmapCodec struct {
	cm *charmap.Charmap
}

func (c charmapCodec) Name() string { return c.cm.String() }
func (charmapCodec) MaxWidth() int  { return 1 }
func (charmapCodec) UnitWidth() int { return 1 }

func (c charmapCodec) DecodeRune(p []byte) (rune, int) {
	if len(p) == 0 {
		return utf8.RuneError, 0
	}
	return c.cm.DecodeByte(p[0]), 1
}

func (c charmapCodec) DecodeLastRune(p []byte) (rune, int) {
	if len(p) == 0 {
		return utf8.RuneError, 0
	}
	return c.cm.DecodeByte(p[len(p)-1]), 1
}

func (charmapCodec) RuneStart(_ []byte, i int) int { return i }
