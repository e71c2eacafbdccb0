package core

import (
	"strings"
	"unicode"

	"github.com/tsawler/lasio/model"
)

// ParseField decomposes one header content line into a Field. The grammar is
// MNEMONIC.UNIT VALUE : DESCRIPTION, with two fixed tie-breaks because values
// may contain '.' and descriptions may contain ':':
//
//   - the first '.' on the line ends the mnemonic
//   - the last ':' on the line starts the description
//
// The unit runs from just after the dot to the first whitespace, unless the
// character immediately after the dot is itself whitespace, in which case the
// unit is empty. That rule keeps a value with a leading decimal point, as in
// "STRT.   .0000", from being misread as a unit.
//
// A line with no '.' fails with ErrFieldSyntax at lineNo. A line with no ':'
// is accepted with an empty description, which the format allows.
func ParseField(line string, lineNo int) (model.Field, error) {
	dot := strings.IndexByte(line, '.')
	if dot < 0 {
		return model.Field{}, parseErrorf(lineNo, line, ErrFieldSyntax, "no '.' separator")
	}

	mnemonic := strings.TrimSpace(line[:dot])
	rest := line[dot+1:]

	var unit string
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			unit, rest = rest[:i], rest[i:]
		} else {
			unit, rest = rest, ""
		}
	}

	var value, description string
	if colon := strings.LastIndexByte(rest, ':'); colon >= 0 {
		value = rest[:colon]
		description = rest[colon+1:]
	} else {
		value = rest
	}

	return model.Field{
		Mnemonic:    mnemonic,
		Unit:        strings.TrimSpace(unit),
		Value:       strings.TrimSpace(value),
		Description: strings.TrimSpace(description),
	}, nil
}
