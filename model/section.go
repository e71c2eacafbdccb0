package model

import "fmt"

// SectionKind identifies one of the format's fixed top-level groupings.
type SectionKind int

const (
	SectionVersion SectionKind = iota
	SectionWell
	SectionCurve
	SectionParameter
	SectionOther
	SectionData
)

// String returns the section name as it is commonly written in LAS headers.
func (k SectionKind) String() string {
	switch k {
	case SectionVersion:
		return "Version"
	case SectionWell:
		return "Well"
	case SectionCurve:
		return "Curve"
	case SectionParameter:
		return "Parameter"
	case SectionOther:
		return "Other"
	case SectionData:
		return "Data"
	default:
		return "Unknown"
	}
}

// Field is one header entry: mnemonic, unit, value, and description, all kept
// as raw trimmed text. No type coercion is performed; callers that need a
// number parse Value themselves.
type Field struct {
	Mnemonic    string
	Unit        string
	Value       string
	Description string
}

// String renders the field roughly as it appears in a file.
func (f Field) String() string {
	return fmt.Sprintf("%s.%s %s : %s", f.Mnemonic, f.Unit, f.Value, f.Description)
}

// Section is an ordered sequence of fields from one header section.
// Insertion order is file order.
type Section struct {
	Kind   SectionKind
	Fields []Field
}

// NewSection creates an empty section of the given kind.
func NewSection(kind SectionKind) *Section {
	return &Section{Kind: kind, Fields: make([]Field, 0)}
}

// Append adds a field at the end of the section.
func (s *Section) Append(f Field) {
	s.Fields = append(s.Fields, f)
}

// Len returns the number of fields in the section.
func (s *Section) Len() int {
	return len(s.Fields)
}

// Get returns every field whose mnemonic matches, in file order. Mnemonics
// need not be unique within a section, so the result may hold more than one
// field.
func (s *Section) Get(mnemonic string) []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Mnemonic == mnemonic {
			out = append(out, f)
		}
	}
	return out
}

// First returns the first field whose mnemonic matches, and whether one was
// found.
func (s *Section) First(mnemonic string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Mnemonic == mnemonic {
			return f, true
		}
	}
	return Field{}, false
}

// Mnemonics returns every field mnemonic in file order, duplicates included.
func (s *Section) Mnemonics() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Mnemonic)
	}
	return out
}
