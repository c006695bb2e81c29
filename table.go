package baybe

import (
	"fmt"

	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
	"github.com/Mehrdad93/baybe/internal/tableio"
)

// Table is a column-ordered table of optional cells. It serves both as
// the query set handed to a Resolver and as the reference table of
// previous measurements.
type Table struct {
	f *frame.Frame
}

// NewTable creates an empty table with the given columns.
func NewTable(cols ...string) (*Table, error) {
	f, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("baybe: %w", err)
	}
	return &Table{f: f}, nil
}

// LoadTable reads a table from a .csv or .parquet file.
func LoadTable(path string) (*Table, error) {
	f, err := tableio.ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	return &Table{f: f}, nil
}

// SaveCSV writes the table to a CSV file. Missing cells become empty
// fields.
func (t *Table) SaveCSV(path string) error {
	return tableio.WriteCSVFile(path, t.f)
}

// Columns returns the column names in order.
func (t *Table) Columns() []string { return t.f.Columns() }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.f.NumRows() }

// AppendRow adds a row of cells aligned with the table columns.
// Accepted cell types: nil (missing), float64, int, string.
func (t *Table) AppendRow(cells ...any) error {
	vals := make([]value.Value, len(cells))
	for i, c := range cells {
		v, err := toCell(c)
		if err != nil {
			return fmt.Errorf("baybe: cell %d: %w", i, err)
		}
		vals[i] = v
	}
	return t.f.AppendRow(vals...)
}

// At returns the cell at the given row and column: nil for a missing
// cell, float64 for a number, string for text.
func (t *Table) At(row int, col string) (any, error) {
	v, err := t.f.At(row, col)
	if err != nil {
		return nil, fmt.Errorf("baybe: %w", err)
	}
	return fromCell(v), nil
}

// Float returns the numeric cell at the given row and column.
func (t *Table) Float(row int, col string) (float64, error) {
	v, err := t.f.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("baybe: %w", err)
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("baybe: cell [%d, %q] is not numeric (%s)", row, col, v)
	}
	return f, nil
}

func toCell(c any) (value.Value, error) {
	switch c := c.(type) {
	case nil:
		return value.Missing(), nil
	case float64:
		return value.Number(c), nil
	case int:
		return value.Number(float64(c)), nil
	case string:
		return value.Text(c), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported cell type %T", c)
	}
}

func fromCell(v value.Value) any {
	if f, ok := v.Float(); ok {
		return f
	}
	if s, ok := v.Text(); ok {
		return s
	}
	return nil
}
