package core

import (
	"strconv"
	"strings"

	"github.com/tsawler/lasio/model"
)

// parserState tracks which section the forward pass is currently inside.
// stateDiscard covers unrecognized '~' codes: their content is skipped.
type parserState int

const (
	stateNone parserState = iota
	stateVersion
	stateWell
	stateCurve
	stateParameter
	stateOther
	stateData
	stateDiscard
)

// dataLine is one buffered content line of the ~A section, kept with its
// position so data errors can point at the right place.
type dataLine struct {
	no   int
	text string
}

// Parser runs the single forward pass that turns a file's lines into a
// Document. State lives in the Parser value, never in package globals, so
// parses are independent and reentrant.
type Parser struct {
	lines []string

	state parserState
	doc   *model.Document
	other strings.Builder
	data  []dataLine
}

// NewParser creates a parser over the raw lines of one file, in file order.
func NewParser(lines []string) *Parser {
	return &Parser{
		lines: lines,
		state: stateNone,
		doc:   model.NewDocument(),
	}
}

// Parse consumes every line once, then assembles and returns the Document.
// The first malformed line aborts the parse; there is no partial output.
func (p *Parser) Parse() (*model.Document, error) {
	for i, line := range p.lines {
		if err := p.consume(i+1, line); err != nil {
			return nil, err
		}
	}
	return p.assemble()
}

// consume routes one line according to its classification and the active
// section.
func (p *Parser) consume(lineNo int, line string) error {
	kind, code := ClassifyLine(line)

	switch kind {
	case LineComment:
		return nil
	case LineBlank:
		// Ignored outside the data section; inside it, a separator that
		// carries no cells, which the data parser skips anyway.
		return nil
	case LineSection:
		p.enter(code)
		return nil
	}

	switch p.state {
	case stateVersion, stateWell, stateCurve, stateParameter:
		field, err := ParseField(line, lineNo)
		if err != nil {
			return err
		}
		p.section().Append(field)
	case stateOther:
		// Free text is kept verbatim, indentation included.
		if p.other.Len() > 0 {
			p.other.WriteByte('\n')
		}
		p.other.WriteString(line)
	case stateData:
		p.data = append(p.data, dataLine{no: lineNo, text: line})
	default:
		// Content before any section header, or inside an unrecognized
		// section: skipped.
	}
	return nil
}

// enter transitions to the section named by a header line. Data is terminal:
// the format defines ~A as the last section, so any header after it is
// ignored.
func (p *Parser) enter(code SectionCode) {
	if p.state == stateData {
		return
	}
	switch code {
	case CodeVersion:
		p.state = stateVersion
	case CodeWell:
		p.state = stateWell
	case CodeCurve:
		p.state = stateCurve
	case CodeParameter:
		if p.doc.Parameter == nil {
			p.doc.Parameter = model.NewSection(model.SectionParameter)
		}
		p.state = stateParameter
	case CodeOther:
		p.state = stateOther
	case CodeData:
		p.state = stateData
	default:
		p.state = stateDiscard
	}
}

// section returns the document section matching the active header state.
func (p *Parser) section() *model.Section {
	switch p.state {
	case stateVersion:
		return p.doc.Version
	case stateWell:
		return p.doc.Well
	case stateCurve:
		return p.doc.Curve
	default:
		return p.doc.Parameter
	}
}

// assemble validates the parsed sections, runs the data block parser, and
// produces the final Document.
func (p *Parser) assemble() (*model.Document, error) {
	doc := p.doc
	doc.Other = p.other.String()

	// A file with no declared curves cannot be meaningfully parsed.
	if doc.Curve.Len() == 0 {
		return nil, ErrMissingSection
	}

	doc.Wrap = wellWrap(doc.Well)
	doc.Null = wellNull(doc.Well)

	dp := newDataParser(doc.Curve.Len(), doc.Wrap, doc.Null)
	lastLine := len(p.lines)
	for _, dl := range p.data {
		if err := dp.line(dl.no, dl.text); err != nil {
			return nil, err
		}
	}
	matrix, err := dp.finish(lastLine)
	if err != nil {
		return nil, err
	}

	// Defensive re-check of the row-length invariant.
	for i, row := range matrix.Rows {
		if len(row) != doc.Curve.Len() {
			return nil, parseErrorf(0, "", ErrColumnCount,
				"row %d has %d of %d values", i+1, len(row), doc.Curve.Len())
		}
	}

	doc.Data = matrix
	return doc, nil
}

// wellWrap reads the WRAP parameter. Absent means one physical line per row.
func wellWrap(well *model.Section) bool {
	f, ok := well.First("WRAP")
	return ok && strings.EqualFold(f.Value, "YES")
}

// wellNull reads the NULL parameter, falling back to DefaultNull when it is
// absent or not numeric.
func wellNull(well *model.Section) float64 {
	f, ok := well.First("NULL")
	if !ok {
		return DefaultNull
	}
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return DefaultNull
	}
	return v
}

// Parse is a convenience that parses raw file content in one call. Line
// endings may be LF or CRLF.
func Parse(content string) (*model.Document, error) {
	return NewParser(SplitLines(content)).Parse()
}

// SplitLines breaks file content into lines, tolerating CRLF endings.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
