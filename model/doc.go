// Package model provides the data structures produced by parsing a LAS 2.0
// well-log file.
//
// This package defines the user-facing types that represent the semantic
// structure of a log file. All parsing operations ultimately produce these
// types, making them the primary API for consuming parsed content.
//
// # Document Structure
//
// The [Document] type represents one complete parsed file:
//
//	doc := model.NewDocument()
//	names := doc.CurveNames()
//	matrix := doc.Data
//
// A Document always owns a Version, Well, and Curve [Section] (possibly
// empty), an optional Parameter section, the free text of an optional Other
// section, and one [DataMatrix]. Once assembled by the parser it is never
// mutated.
//
// # Sections and Fields
//
// A [Section] is an ordered sequence of [Field] values. Order matters: the
// Curve section's field order defines the column order of the data matrix.
// Duplicate mnemonics are legal in the grammar and are preserved, so lookups
// return every match in file order.
//
// # The Data Matrix
//
// The [DataMatrix] holds the numeric measurements as rows of [Cell] values.
// A cell is either a finite number or a null marker, depending on whether the
// file's null sentinel matched it. Use [DataMatrix.Floats] to materialize the
// matrix as plain float64 rows with a replacement value for nulls.
package model
