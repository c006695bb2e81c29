package tableio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// ReadParquetFile reads a flat parquet file into a frame. Column order
// follows the parquet schema; nulls become missing cells.
func ReadParquetFile(path string) (*frame.Frame, error) {
	fh, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(fh, st.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	cols := make([]string, 0, len(pf.Schema().Columns()))
	for _, p := range pf.Schema().Columns() {
		if len(p) != 1 {
			return nil, fmt.Errorf("parquet %s: nested column %v is not supported", path, p)
		}
		cols = append(cols, p[0])
	}

	f, err := frame.New(cols...)
	if err != nil {
		return nil, err
	}

	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(f, rg, len(cols)); err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
	}
	return f, nil
}

func readRowGroup(f *frame.Frame, rg parquet.RowGroup, numCols int) error {
	rows := parquet.NewRowGroupReader(rg)
	buf := make([]parquet.Row, 256)

	for {
		cnt, readErr := rows.ReadRows(buf)
		for i := 0; i < cnt; i++ {
			cells := make([]value.Value, numCols)
			for _, v := range buf[i] {
				col := v.Column()
				if col < 0 || col >= numCols {
					continue
				}
				cells[col] = cellValue(v)
			}
			if err := f.AppendRow(cells...); err != nil {
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("read rows: %w", readErr)
		}
	}
}

func cellValue(v parquet.Value) value.Value {
	if v.IsNull() {
		return value.Missing()
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return value.Number(1)
		}
		return value.Number(0)
	case parquet.Int32, parquet.Int64:
		return value.Number(float64(v.Int64()))
	case parquet.Float:
		return value.Number(float64(v.Float()))
	case parquet.Double:
		return value.Number(v.Double())
	default:
		return value.Text(v.String())
	}
}

// ReadTableFile reads a frame from CSV or parquet, chosen by extension.
func ReadTableFile(path string) (*frame.Frame, error) {
	switch filepath.Ext(path) {
	case ".parquet":
		return ReadParquetFile(path)
	case ".csv":
		return ReadCSVFile(path)
	default:
		return nil, fmt.Errorf("unsupported table format %q (want .csv or .parquet)", filepath.Ext(path))
	}
}
