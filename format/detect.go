// Package format provides file format detection for the lasio library.
package format

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// LAS indicates a Log ASCII Standard well-log file.
	LAS
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case LAS:
		return "LAS"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case LAS:
		return ".las"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".las":
		return LAS
	default:
		return Unknown
	}
}

// DetectFromReader inspects content to determine format. This is more
// reliable than extension-based detection: a LAS file starts, after any
// leading comments and blank lines, with a '~' section header. At most the
// first few lines are examined.
func DetectFromReader(r io.Reader) (Format, error) {
	const maxProbeLines = 64

	scanner := bufio.NewScanner(r)
	for n := 0; n < maxProbeLines && scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "~") {
			return LAS, nil
		}
		return Unknown, nil
	}
	if err := scanner.Err(); err != nil {
		return Unknown, err
	}
	return Unknown, nil
}
