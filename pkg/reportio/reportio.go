// Package reportio opens and creates stats report streams, transparently
// decompressing and compressing gzip and lz4 files by extension. bcftools
// pipelines routinely gzip their stats output; lz4 shows up on scratch
// storage where compression speed matters more than ratio.
package reportio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Compressed report extensions.
const (
	gzExt  = ".gz"
	lz4Ext = ".lz4"
)

// Open returns a reader for path, decompressing .gz and .lz4 inputs. The
// caller owns the returned closer.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case gzExt:
		zr, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			f.Close()

			return nil, fmt.Errorf("open gzip report %s: %w", path, gzErr)
		}

		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case lz4Ext:
		return &stackedCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// Create returns a writer for path, compressing .gz and .lz4 outputs.
// Closing the returned writer flushes the compressor before the file
// closes.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case gzExt:
		zw := gzip.NewWriter(f)

		return &stackedWriteCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case lz4Ext:
		lw := lz4.NewWriter(f)

		return &stackedWriteCloser{Writer: lw, closers: []io.Closer{lw, f}}, nil
	default:
		return f, nil
	}
}

// stackedCloser reads through a decompressor and closes the whole stack in
// order.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	return closeAll(s.closers)
}

// stackedWriteCloser writes through a compressor and closes the whole stack
// in order, compressor first so buffered data reaches the file.
type stackedWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackedWriteCloser) Close() error {
	return closeAll(s.closers)
}

func closeAll(closers []io.Closer) error {
	var firstErr error

	for _, c := range closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
