// Package lasio provides a fluent API for parsing LAS 2.0 well-log files
// into structured documents.
//
// Basic usage:
//
//	names, err := lasio.Open("example1.las").Headers()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, err := lasio.Open("example1.las").
//	    Encoding("windows-1252").
//	    Document()
//
// For advanced use cases, the lower-level reader and core packages are also
// available.
package lasio

import (
	"github.com/tsawler/lasio/reader"
)

// Open prepares a log file for parsing and returns an Extractor for fluent
// configuration. The file is opened lazily by the terminal operation and
// closed before it returns, on success and failure alike.
//
// Example:
//
//	headers, err := lasio.Open("example1.las").Headers()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: the caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("example1.las")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, err := lasio.FromReader(r).Document()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromString creates an Extractor over in-memory file content. Handy for
// tests and for callers that already hold the whole file as a string.
func FromString(content string) *Extractor {
	return &Extractor{
		blob:    content,
		hasBlob: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	names := lasio.Must(lasio.Open("example1.las").Headers())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
