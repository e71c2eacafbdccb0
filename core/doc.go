// Package core implements the LAS 2.0 parse engine.
//
// This package turns the raw lines of a Log ASCII Standard version 2.0 file
// into a [model.Document]. It is deliberately low-level: callers normally use
// the reader package or the root lasio package instead of driving it directly.
//
// # Line Classification
//
// [ClassifyLine] categorizes one raw line before any semantic parsing:
// comment ('#'), section header ('~' plus a case-insensitive code letter),
// blank, or content. Classification is pure and has no side effects.
//
// # The Parse Pass
//
// The [Parser] type runs the single forward pass over a file's lines. An
// explicit state value tracks the active section; content lines are routed to
// the header field parser, appended to the Other free-text buffer, or
// buffered for the data block parser, depending on that state. The ~A data
// section is terminal: section headers after it are ignored.
//
// # Header Fields
//
// [ParseField] decomposes one header content line into mnemonic, unit, value,
// and description. The delimiters are ambiguous (values may contain '.' and
// descriptions may contain ':'), so the split uses fixed tie-break rules:
// the first '.' separates mnemonic from unit, and the last ':' separates
// value from description. A unit is only recognized when the character
// immediately after the dot is not whitespace, which keeps values that begin
// with a decimal point out of the unit slot.
//
// # The Data Block
//
// Data lines are whitespace-separated float tokens. Two parameters read from
// the already-parsed Well section govern reconstruction: WRAP (YES lets one
// logical row span multiple physical lines) and NULL (the sentinel marking
// missing measurements, -999.25 by default). Wrap mode uses an accumulator
// that flushes a row each time the token count reaches the declared curve
// count; overflowing it fails the parse.
//
// # Errors
//
// All parse failures are fail-fast and wrap one of the package sentinel
// errors ([ErrFieldSyntax], [ErrMissingSection], [ErrNumericParse],
// [ErrColumnCount]) in a [ParseError] carrying the offending line number and
// raw text, so callers can both test the kind with errors.Is and report a
// precise location.
package core
