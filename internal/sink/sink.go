package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdio is the path that selects stdout for Open and stdin for OpenReader.
const Stdio = "-"

// Compression selects the codec wrapped around a sink or source.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

var ErrUnknownCompression = errors.New("unknown compression")

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ParseCompression accepts none, gzip or zstd. The empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Sink is the destination of a generated document.
type Sink struct {
	w       io.Writer
	encoder io.WriteCloser // nil when uncompressed
	file    *os.File       // nil when writing to stdout
	raw     counter        // bytes handed to the sink
	out     counter        // bytes reaching the target after compression
}

type counter struct {
	w io.Writer
	n int64
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Open creates the sink at path ("-" or "" for stdout). Parent directories
// of a file path are created as needed.
func Open(path string, c Compression, stdout io.Writer) (*Sink, error) {
	s := &Sink{}

	target := stdout
	if path != "" && path != Stdio {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		s.file = file
		target = file
	}
	s.out.w = target

	switch c {
	case None:
		s.raw.w = &s.out
	case Gzip:
		s.encoder = gzip.NewWriter(&s.out)
		s.raw.w = s.encoder
	case Zstd:
		enc, err := zstd.NewWriter(&s.out)
		if err != nil {
			s.closeFile()
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		s.encoder = enc
		s.raw.w = enc
	default:
		s.closeFile()
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}

	s.w = &s.raw
	return s, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes the compressor and closes the output file. Stdout is left open.
func (s *Sink) Close() error {
	var errs []error
	if s.encoder != nil {
		if err := s.encoder.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush compressor: %w", err))
		}
	}
	if err := s.closeFile(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close output file: %w", err))
	}
	return errors.Join(errs...)
}

func (s *Sink) closeFile() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// RawBytes is the number of uncompressed bytes written.
func (s *Sink) RawBytes() int64 {
	return s.raw.n
}

// OutputBytes is the number of bytes that reached stdout or the file.
// It is final only after Close.
func (s *Sink) OutputBytes() int64 {
	return s.out.n
}

// Summary renders the byte counts for humans, e.g. "1.2 MB" or
// "1.2 MB (310 kB gzip)".
func (s *Sink) Summary() string {
	raw := humanize.Bytes(uint64(s.raw.n))
	if s.encoder == nil {
		return raw
	}
	return fmt.Sprintf("%s (%s %s)", raw, humanize.Bytes(uint64(s.out.n)), s.codec())
}

func (s *Sink) codec() string {
	switch s.encoder.(type) {
	case *gzip.Writer:
		return Gzip.String()
	case *zstd.Encoder:
		return Zstd.String()
	default:
		return None.String()
	}
}
