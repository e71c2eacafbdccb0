package model

// Cell is one numeric measurement, or the null marker when the file's null
// sentinel matched it. Value is meaningless when Null is true.
type Cell struct {
	Value float64
	Null  bool
}

// Row is one record of the data matrix, with one cell per declared curve.
type Row []Cell

// DataMatrix holds the measurement records of a file. Column order matches
// the Curve section's field order; every row has exactly Columns cells.
type DataMatrix struct {
	Columns int
	Rows    []Row
}

// NewDataMatrix creates an empty matrix with the given column count.
func NewDataMatrix(columns int) *DataMatrix {
	return &DataMatrix{Columns: columns, Rows: make([]Row, 0)}
}

// AppendRow adds a record at the end of the matrix.
func (m *DataMatrix) AppendRow(r Row) {
	m.Rows = append(m.Rows, r)
}

// RowCount returns the number of records.
func (m *DataMatrix) RowCount() int {
	return len(m.Rows)
}

// ColumnCount returns the number of curves per record.
func (m *DataMatrix) ColumnCount() int {
	return m.Columns
}

// Floats materializes the matrix as plain float64 rows, substituting null for
// every null cell. Passing the file's own null sentinel reproduces the raw
// numbers as written.
func (m *DataMatrix) Floats(null float64) [][]float64 {
	out := make([][]float64, 0, len(m.Rows))
	for _, row := range m.Rows {
		vals := make([]float64, len(row))
		for i, c := range row {
			if c.Null {
				vals[i] = null
			} else {
				vals[i] = c.Value
			}
		}
		out = append(out, vals)
	}
	return out
}

// Column returns one curve's cells across all rows. The index follows the
// Curve section's field order. Returns nil when the index is out of range.
func (m *DataMatrix) Column(i int) []Cell {
	if i < 0 || i >= m.Columns {
		return nil
	}
	out := make([]Cell, 0, len(m.Rows))
	for _, row := range m.Rows {
		out = append(out, row[i])
	}
	return out
}
