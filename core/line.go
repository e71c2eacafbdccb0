package core

import (
	"strings"
	"unicode"
)

// LineKind categorizes one raw input line.
type LineKind int

const (
	// LineBlank is a whitespace-only line.
	LineBlank LineKind = iota
	// LineComment is a line whose first non-whitespace character is '#'.
	LineComment
	// LineSection is a section header, first non-whitespace character '~'.
	LineSection
	// LineContent is any other line, interpreted by the active section.
	LineContent
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "Blank"
	case LineComment:
		return "Comment"
	case LineSection:
		return "Section"
	case LineContent:
		return "Content"
	default:
		return "Unknown"
	}
}

// SectionCode identifies the section named by a section header line.
type SectionCode int

const (
	// CodeNone means the line is not a section header.
	CodeNone SectionCode = iota
	CodeVersion
	CodeWell
	CodeCurve
	CodeParameter
	CodeOther
	CodeData
	// CodeUnknown is a '~' line with an unrecognized code letter. Its
	// section is skipped rather than failing the parse, since the format
	// permits vendor extensions.
	CodeUnknown
)

// String returns the section name for the code.
func (c SectionCode) String() string {
	switch c {
	case CodeVersion:
		return "Version"
	case CodeWell:
		return "Well"
	case CodeCurve:
		return "Curve"
	case CodeParameter:
		return "Parameter"
	case CodeOther:
		return "Other"
	case CodeData:
		return "Data"
	case CodeUnknown:
		return "Unknown"
	default:
		return "None"
	}
}

// ClassifyLine categorizes one raw line. For LineSection the returned code
// identifies the section by the letter immediately following the '~',
// case-insensitive; every other kind carries CodeNone. Pure classification,
// no side effects.
func ClassifyLine(line string) (LineKind, SectionCode) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineBlank, CodeNone
	}
	switch trimmed[0] {
	case '#':
		return LineComment, CodeNone
	case '~':
		return LineSection, sectionCode(trimmed)
	}
	return LineContent, CodeNone
}

// sectionCode maps the character after '~' to a section. A bare '~' line has
// no code letter and counts as unrecognized.
func sectionCode(trimmed string) SectionCode {
	if len(trimmed) < 2 {
		return CodeUnknown
	}
	switch unicode.ToUpper(rune(trimmed[1])) {
	case 'V':
		return CodeVersion
	case 'W':
		return CodeWell
	case 'C':
		return CodeCurve
	case 'P':
		return CodeParameter
	case 'O':
		return CodeOther
	case 'A':
		return CodeData
	default:
		return CodeUnknown
	}
}
