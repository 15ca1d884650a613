package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	seekable "github.com/SaveTheRbtz/zstd-seekable-format-go/pkg"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic opens every zstd frame, little endian 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// zstdDec is shared by every compressed File; it is safe for concurrent use.
var zstdDec *zstd.Decoder

func init() {
	var err error
	zstdDec, err = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		panic("zstd: init decoder: " + err.Error())
	}
}

// Options control how Open interprets a file.
type Options struct {
	// Encoding names the text encoding. Empty means detect a byte-order
	// mark and fall back to UTF-8.
	Encoding string
}

// File is a Store over an opened file. Compressed files are read through
// their seekable zstd frame index, so positions are offsets into the
// decompressed text.
type File struct {
	*Store
	Path       string
	Compressed bool

	closers []io.Closer
}

// Open opens path for random access. A file beginning with a zstd frame is
// treated as a seekable zstd archive. A leading byte-order mark is skipped
// and position 0 is the first character after it.
func Open(path string, opts Options) (*File, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	file := &File{Path: path, closers: []io.Closer{f}}
	var ra io.ReaderAt = f
	size := info.Size()

	compressed, err := isZstd(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if compressed {
		zr, err := seekable.NewReader(f, zstdDec)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to open seekable zstd stream %s: %w", path, err)
		}
		file.closers = append([]io.Closer{zr}, file.closers...)
		size, err = zr.Seek(0, io.SeekEnd)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to size seekable zstd stream %s: %w", path, err)
		}
		ra = zr
		file.Compressed = true
	}

	codec, bom, err := resolveCodec(ra, opts.Encoding)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	file.Store = NewStore(io.NewSectionReader(ra, bom, size-bom), size-bom, codec)
	return file, nil
}

// Close releases the decompressor and the file.
func (f *File) Close() error {
	var errs []error
	for _, c := range f.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	f.closers = nil
	return errors.Join(errs...)
}

func isZstd(r io.ReaderAt) (bool, error) {
	var head [4]byte
	n, err := r.ReadAt(head[:], 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("%w: file header: %w", ErrRead, err)
	}
	return n == len(head) && bytes.Equal(head[:], zstdMagic), nil
}

// resolveCodec picks the codec for ra. An explicit encoding wins, but a
// byte-order mark naming the same encoding is still skipped.
func resolveCodec(ra io.ReaderAt, name string) (Codec, int64, error) {
	detected, bom, err := DetectCodec(ra)
	if err != nil {
		return nil, 0, err
	}
	if name == "" {
		return detected, bom, nil
	}
	codec, err := LookupCodec(name)
	if err != nil {
		return nil, 0, err
	}
	if bom > 0 && codec.Name() == detected.Name() {
		return codec, bom, nil
	}
	return codec, 0, nil
}
