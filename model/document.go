package model

// Document represents a complete parsed LAS 2.0 file.
//
// Version, Well, and Curve are always non-nil, even when the corresponding
// section was absent from the file (they are then empty). Parameter is nil
// when the file has no ~P section. Other holds the raw free text of the ~O
// section, empty when absent. Data is always non-nil, possibly with zero
// rows. A Document is assembled once by the parser and never mutated after.
type Document struct {
	Version   *Section
	Well      *Section
	Curve     *Section
	Parameter *Section
	Other     string
	Data      *DataMatrix

	// Wrap and Null are the two Well-section parameters the parser itself
	// interprets, resolved to their effective values (defaults applied when
	// the file omits them). All other header values stay raw text.
	Wrap bool
	Null float64
}

// NewDocument creates an empty document with the three mandatory sections
// present and an empty data matrix.
func NewDocument() *Document {
	return &Document{
		Version: NewSection(SectionVersion),
		Well:    NewSection(SectionWell),
		Curve:   NewSection(SectionCurve),
		Data:    NewDataMatrix(0),
	}
}

// CurveNames returns the curve mnemonics in the order they appear in the
// Curve section, duplicates included. This order is the column order of Data.
func (d *Document) CurveNames() []string {
	return d.Curve.Mnemonics()
}

// CurveCount returns the number of declared curves.
func (d *Document) CurveCount() int {
	return d.Curve.Len()
}

// Section returns the header section of the given kind, or nil for kinds the
// document does not carry (SectionData has no fields, SectionOther is free
// text).
func (d *Document) Section(kind SectionKind) *Section {
	switch kind {
	case SectionVersion:
		return d.Version
	case SectionWell:
		return d.Well
	case SectionCurve:
		return d.Curve
	case SectionParameter:
		return d.Parameter
	default:
		return nil
	}
}
