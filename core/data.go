package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/lasio/model"
)

// DefaultNull is the null sentinel assumed when the Well section declares no
// NULL parameter.
const DefaultNull = -999.25

// nullTolerance is the relative tolerance for matching a cell against the
// null sentinel. Files write the sentinel at varying decimal precision
// (-999.25 vs -999.2500), so exact comparison would miss some encodings;
// 1e-6 relative keeps the check meaningful even when NULL is redefined to a
// large magnitude.
const nullTolerance = 1e-6

// dataParser reconstructs the data matrix from the buffered content lines of
// the ~A section. In wrap mode tokens accumulate across lines into pending
// and flush as a row each time the count reaches columns; in non-wrap mode
// every line must carry exactly columns tokens.
type dataParser struct {
	columns int
	wrap    bool
	null    float64

	matrix  *model.DataMatrix
	pending model.Row
}

func newDataParser(columns int, wrap bool, null float64) *dataParser {
	return &dataParser{
		columns: columns,
		wrap:    wrap,
		null:    null,
		matrix:  model.NewDataMatrix(columns),
	}
}

// line consumes one content line of the data section.
func (p *dataParser) line(lineNo int, text string) error {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		// Blank line: a row separator with no cells.
		return nil
	}

	if !p.wrap && len(tokens) != p.columns {
		return parseErrorf(lineNo, text, ErrColumnCount,
			"row has %d values, file declares %d curves", len(tokens), p.columns)
	}

	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return parseErrorf(lineNo, tok, ErrNumericParse, "")
		}
		p.pending = append(p.pending, p.cell(v))
		// Flushing at exactly columns keeps the buffer from ever exceeding
		// the curve count; a corrupt wrap or wrong curve count shows up as a
		// partial row left over at finish.
		if len(p.pending) == p.columns {
			p.flush()
		}
	}
	return nil
}

// finish returns the reconstructed matrix. A partially accumulated wrap-mode
// row at end of input means the wrap is corrupt or the curve count wrong.
func (p *dataParser) finish(lastLine int) (*model.DataMatrix, error) {
	if len(p.pending) > 0 {
		return nil, parseErrorf(lastLine, "", ErrColumnCount,
			"trailing row has %d of %d values", len(p.pending), p.columns)
	}
	return p.matrix, nil
}

func (p *dataParser) flush() {
	row := make(model.Row, len(p.pending))
	copy(row, p.pending)
	p.matrix.AppendRow(row)
	p.pending = p.pending[:0]
}

// cell converts one parsed value, substituting the null marker when it
// matches the sentinel within tolerance.
func (p *dataParser) cell(v float64) model.Cell {
	scale := math.Abs(p.null)
	if scale < 1 {
		scale = 1
	}
	if math.Abs(v-p.null) <= nullTolerance*scale {
		return model.Cell{Null: true}
	}
	return model.Cell{Value: v}
}
