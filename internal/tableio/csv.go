// Package tableio loads reference tables and query sets from files and
// writes resolved frames back out.
package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// ReadCSV reads a frame from CSV. The first record is the header.
// Empty cells are missing, numeric cells become numbers, everything else text.
func ReadCSV(r io.Reader) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	f, err := frame.New(header...)
	if err != nil {
		return nil, err
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		cells := make([]value.Value, len(rec))
		for i, s := range rec {
			cells[i] = parseCell(s)
		}
		if err := f.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
	}
	return f, nil
}

// ReadCSVFile reads a frame from a CSV file.
func ReadCSVFile(path string) (*frame.Frame, error) {
	fh, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()
	return ReadCSV(fh)
}

// WriteCSV writes a frame as CSV with a header record.
// Missing cells become empty strings.
func WriteCSV(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)
	cols := f.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	rec := make([]string, len(cols))
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		for j, v := range row {
			if v.IsMissing() {
				rec[j] = ""
			} else {
				rec[j] = v.String()
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes a frame to a CSV file.
func WriteCSVFile(path string, f *frame.Frame) error {
	fh, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func parseCell(s string) value.Value {
	if s == "" {
		return value.Missing()
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Number(n)
	}
	return value.Text(s)
}
