package lasio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/lasio/model"
	"github.com/tsawler/lasio/reader"
)

// Extractor provides a fluent interface for parsing a LAS file. Each
// configuration method returns a new Extractor instance, making chains safe
// to fork and reuse. Terminal operations (Document, Headers, Data, ...) run
// a fresh parse; no document is cached across calls.
type Extractor struct {
	// Source: exactly one of these is set.
	filename string
	blob     string
	hasBlob  bool
	reader   *reader.Reader

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with its own options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		blob:     e.blob,
		hasBlob:  e.hasBlob,
		reader:   e.reader,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Encoding selects the character set the file is decoded from before
// parsing. See reader.WithEncoding for the recognized names.
func (e *Extractor) Encoding(name string) *Extractor {
	newExt := e.clone()
	newExt.options.encoding = name
	return newExt
}

// Document parses the source and returns the immutable document. When the
// Extractor owns the source (Open or FromString) the underlying file handle
// is released before Document returns, on every path.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}

	switch {
	case e.reader != nil:
		return e.reader.Parse()
	case e.hasBlob:
		return parseBlob(e.blob, e.options.encoding)
	case e.filename != "":
		r, err := reader.Open(e.filename, reader.WithEncoding(e.options.encoding))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return r.Parse()
	default:
		return nil, fmt.Errorf("no source specified")
	}
}

// Headers returns the curve mnemonics in the order they appear in the ~C
// section, duplicates included.
func (e *Extractor) Headers() ([]string, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.CurveNames(), nil
}

// Matrix returns the parsed data matrix, with null cells marked.
func (e *Extractor) Matrix() (*model.DataMatrix, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Data, nil
}

// Data returns the data matrix as plain float64 rows. Null cells carry the
// file's own null sentinel, so the rows read exactly as written.
func (e *Extractor) Data() ([][]float64, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Data.Floats(doc.Null), nil
}

// Version returns the LAS version declared by the ~V section's VERS field.
func (e *Extractor) Version() (float64, error) {
	doc, err := e.Document()
	if err != nil {
		return 0, err
	}
	f, ok := doc.Version.First("VERS")
	if !ok {
		return 0, fmt.Errorf("no VERS field in version section")
	}
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid VERS value %q: %w", f.Value, err)
	}
	return v, nil
}

// Wrap reports whether the file declares wrap mode (WRAP = YES in the ~W
// section). Absent means false.
func (e *Extractor) Wrap() (bool, error) {
	doc, err := e.Document()
	if err != nil {
		return false, err
	}
	return doc.Wrap, nil
}

// WellInfo returns the ~W section's fields.
func (e *Extractor) WellInfo() (*model.Section, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Well, nil
}

// Params returns the ~P section's fields, or nil when the file has none.
func (e *Extractor) Params() (*model.Section, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Parameter, nil
}

// parseBlob parses in-memory content through a reader so encoding selection
// behaves identically to the file path case.
func parseBlob(content, encoding string) (*model.Document, error) {
	r, err := reader.NewReader(strings.NewReader(content), reader.WithEncoding(encoding))
	if err != nil {
		return nil, err
	}
	return r.Parse()
}
