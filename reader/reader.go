package reader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tsawler/lasio/core"
	"github.com/tsawler/lasio/model"
)

// Reader reads one LAS file source and parses it into a Document.
type Reader struct {
	src      io.Reader
	file     *os.File // non-nil when Open owns the handle
	encoding encoding.Encoding
	closed   bool
}

// Option configures a Reader.
type Option func(*Reader) error

// WithEncoding selects the character set the source is decoded from before
// parsing. Recognized names: "" or "utf-8" or "ascii" (no transcoding),
// "windows-1252" / "cp1252", and "latin-1" / "latin1" / "iso-8859-1".
func WithEncoding(name string) Option {
	return func(r *Reader) error {
		enc, err := lookupEncoding(name)
		if err != nil {
			return err
		}
		r.encoding = enc
		return nil
	}
}

// lookupEncoding resolves an encoding name. A nil encoding means pass-through.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8", "ascii":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// NewReader creates a Reader over an existing source. The caller keeps
// ownership of the source; Close is then a no-op.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	r := &Reader{src: src}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Open opens a log file and returns a Reader that owns the file handle. The
// returned Reader must be closed when done.
func Open(filename string, opts ...Option) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := NewReader(file, opts...)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// Parse reads the whole source, decodes it, and runs the parse pass. The
// entire content is read before parsing begins; the pass then completes
// without further I/O.
func (r *Reader) Parse() (*model.Document, error) {
	src := r.src
	if r.encoding != nil {
		src = transform.NewReader(src, r.encoding.NewDecoder())
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return core.Parse(string(content))
}

// Close releases the file handle when this Reader owns one. Safe to call more
// than once.
func (r *Reader) Close() error {
	if r.file == nil || r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}
