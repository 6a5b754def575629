package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error
	for _, fn := range r.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenReader opens path ("-" or "" for stdin) and undoes compression c.
func OpenReader(path string, c Compression, stdin io.Reader) (io.ReadCloser, error) {
	rc := &readCloser{Reader: stdin}
	if path != "" && path != Stdio {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		rc.Reader = file
		rc.closers = append(rc.closers, file.Close)
	}

	switch c {
	case None:
	case Gzip:
		zr, err := gzip.NewReader(rc.Reader)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		rc.Reader = zr
		rc.closers = append([]func() error{zr.Close}, rc.closers...)
	case Zstd:
		dec, err := zstd.NewReader(rc.Reader)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		rc.Reader = dec
		rc.closers = append([]func() error{func() error { dec.Close(); return nil }}, rc.closers...)
	default:
		rc.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	return rc, nil
}
