// Package frame provides the ordered tabular container shared by query
// sets and reference tables: named columns over rows of optional cells.
package frame

import (
	"fmt"

	"github.com/Mehrdad93/baybe/internal/domain/value"
)

// Frame is a column-ordered table. Rows are identified by position.
type Frame struct {
	cols  []string
	index map[string]int
	rows  [][]value.Value
}

// New creates an empty frame with the given columns.
func New(cols ...string) (*Frame, error) {
	f := &Frame{
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, dup := f.index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		f.index[c] = i
	}
	return f, nil
}

// FromRecords creates a frame from rows of cells aligned with cols.
func FromRecords(cols []string, rows [][]value.Value) (*Frame, error) {
	f, err := New(cols...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(r), len(cols))
		}
		f.rows = append(f.rows, append([]value.Value(nil), r...))
	}
	return f, nil
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return append([]string(nil), f.cols...) }

// HasColumn reports whether the column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return len(f.rows) }

// AppendRow adds a row of cells aligned with the frame columns.
func (f *Frame) AppendRow(cells ...value.Value) error {
	if len(cells) != len(f.cols) {
		return fmt.Errorf("row has %d cells, want %d", len(cells), len(f.cols))
	}
	f.rows = append(f.rows, append([]value.Value(nil), cells...))
	return nil
}

// At returns the cell at the given row and column.
func (f *Frame) At(row int, col string) (value.Value, error) {
	j, ok := f.index[col]
	if !ok {
		return value.Value{}, fmt.Errorf("no column %q", col)
	}
	if row < 0 || row >= len(f.rows) {
		return value.Value{}, fmt.Errorf("row %d out of range [0, %d)", row, len(f.rows))
	}
	return f.rows[row][j], nil
}

// Set writes the cell at the given row and column.
func (f *Frame) Set(row int, col string, v value.Value) error {
	j, ok := f.index[col]
	if !ok {
		return fmt.Errorf("no column %q", col)
	}
	if row < 0 || row >= len(f.rows) {
		return fmt.Errorf("row %d out of range [0, %d)", row, len(f.rows))
	}
	f.rows[row][j] = v
	return nil
}

// Row returns a copy of the row's cells in column order.
func (f *Frame) Row(row int) []value.Value {
	return append([]value.Value(nil), f.rows[row]...)
}

// RowMap returns the row as a column-name-to-cell mapping.
func (f *Frame) RowMap(row int) map[string]value.Value {
	m := make(map[string]value.Value, len(f.cols))
	for j, c := range f.cols {
		m[c] = f.rows[row][j]
	}
	return m
}

// RowStrings renders the row for error messages.
func (f *Frame) RowStrings(row int) map[string]string {
	m := make(map[string]string, len(f.cols))
	for j, c := range f.cols {
		m[c] = f.rows[row][j].String()
	}
	return m
}

// EnsureColumn appends a column filled with missing cells if absent.
func (f *Frame) EnsureColumn(name string) {
	if _, ok := f.index[name]; ok {
		return
	}
	f.index[name] = len(f.cols)
	f.cols = append(f.cols, name)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], value.Missing())
	}
}

// SetColumn writes an entire column, creating it if absent.
func (f *Frame) SetColumn(name string, vals []value.Value) error {
	if len(vals) != len(f.rows) {
		return fmt.Errorf("column %q has %d values, want %d", name, len(vals), len(f.rows))
	}
	f.EnsureColumn(name)
	j := f.index[name]
	for i := range f.rows {
		f.rows[i][j] = vals[i]
	}
	return nil
}

// Floats extracts a fully numeric column.
func (f *Frame) Floats(col string) ([]float64, error) {
	j, ok := f.index[col]
	if !ok {
		return nil, fmt.Errorf("no column %q", col)
	}
	out := make([]float64, len(f.rows))
	for i := range f.rows {
		v, ok := f.rows[i][j].Float()
		if !ok {
			return nil, fmt.Errorf("column %q row %d is not numeric (%s)", col, i, f.rows[i][j])
		}
		out[i] = v
	}
	return out, nil
}
