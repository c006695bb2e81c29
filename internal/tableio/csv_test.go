package tableio

import (
	"strings"
	"testing"

	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

func TestReadCSV(t *testing.T) {
	in := "T,flow,solvent\n25,10,DMF\n80,,THF\n"
	f, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if got := f.Columns(); len(got) != 3 || got[2] != "solvent" {
		t.Fatalf("Columns() = %v", got)
	}
	if f.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", f.NumRows())
	}

	v, _ := f.At(0, "T")
	if n, ok := v.Float(); !ok || n != 25 {
		t.Errorf("T[0] = %v, want number 25", v)
	}
	v, _ = f.At(1, "flow")
	if !v.IsMissing() {
		t.Errorf("flow[1] = %v, want missing", v)
	}
	v, _ = f.At(0, "solvent")
	if s, ok := v.Text(); !ok || s != "DMF" {
		t.Errorf("solvent[0] = %v, want text DMF", v)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := ReadCSV(strings.NewReader("T,T\n1,2\n")); err == nil {
		t.Error("expected error for duplicate header")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	f, _ := frame.FromRecords(
		[]string{"T", "solvent", "Yield"},
		[][]value.Value{
			{value.Number(25), value.Text("DMF"), value.Number(50.5)},
			{value.Number(80), value.Missing(), value.Number(90)},
		},
	)

	var sb strings.Builder
	if err := WriteCSV(&sb, f); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	back, err := ReadCSV(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if back.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", back.NumRows())
	}
	v, _ := back.At(0, "Yield")
	if n, _ := v.Float(); n != 50.5 {
		t.Errorf("Yield[0] = %v, want 50.5", v)
	}
	v, _ = back.At(1, "solvent")
	if !v.IsMissing() {
		t.Errorf("solvent[1] = %v, want missing", v)
	}
}

func TestReadTableFileUnknownExtension(t *testing.T) {
	if _, err := ReadTableFile("table.xlsx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
