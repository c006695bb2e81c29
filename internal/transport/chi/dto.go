package chi

import (
	"fmt"

	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
	"github.com/Mehrdad93/baybe/internal/lookup"
)

// frameDTO is the wire form of a tabular frame: ordered columns plus rows
// of cells. A null cell is a missing value.
type frameDTO struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type targetDTO struct {
	Name      string   `json:"name"`
	Mode      string   `json:"mode"`
	Lower     *float64 `json:"lower,omitempty"`
	Upper     *float64 `json:"upper,omitempty"`
	Transform string   `json:"transform,omitempty"`
}

type resolveRequest struct {
	Queries    frameDTO    `json:"queries"`
	Targets    []targetDTO `json:"targets"`
	Table      *frameDTO   `json:"table,omitempty"`
	ImputeMode string      `json:"impute_mode,omitempty"`
	Seed       *int64      `json:"seed,omitempty"`
}

type summaryDTO struct {
	Exact     int `json:"exact"`
	Ambiguous int `json:"ambiguous"`
	Imputed   int `json:"imputed"`
	Computed  int `json:"computed"`
	Fake      int `json:"fake"`
}

type resolveResponse struct {
	Queries frameDTO   `json:"queries"`
	Summary summaryDTO `json:"summary"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (d frameDTO) toFrame() (*frame.Frame, error) {
	rows := make([][]value.Value, len(d.Rows))
	for i, r := range d.Rows {
		cells := make([]value.Value, len(r))
		for j, c := range r {
			v, err := cellFromJSON(c)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i, j, err)
			}
			cells[j] = v
		}
		rows[i] = cells
	}
	return frame.FromRecords(d.Columns, rows)
}

func cellFromJSON(c any) (value.Value, error) {
	switch x := c.(type) {
	case nil:
		return value.Missing(), nil
	case float64:
		return value.Number(x), nil
	case string:
		return value.Text(x), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported cell type %T", c)
	}
}

func frameToDTO(f *frame.Frame) frameDTO {
	dto := frameDTO{Columns: f.Columns(), Rows: make([][]any, f.NumRows())}
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		cells := make([]any, len(row))
		for j, v := range row {
			switch {
			case v.IsMissing():
				cells[j] = nil
			default:
				if n, ok := v.Float(); ok {
					cells[j] = n
				} else if s, ok := v.Text(); ok {
					cells[j] = s
				}
			}
		}
		dto.Rows[i] = cells
	}
	return dto
}

func targetsFromDTO(dtos []targetDTO) ([]target.Target, error) {
	if len(dtos) == 0 {
		return nil, fmt.Errorf("at least one target is required")
	}
	targets := make([]target.Target, len(dtos))
	for i, d := range dtos {
		bounds := target.Interval{}
		if d.Lower != nil || d.Upper != nil {
			if d.Lower == nil || d.Upper == nil {
				return nil, fmt.Errorf("target %q: lower and upper bounds must be given together", d.Name)
			}
			iv, err := target.NewInterval(*d.Lower, *d.Upper)
			if err != nil {
				return nil, fmt.Errorf("target %q: %w", d.Name, err)
			}
			bounds = iv
		}
		t, err := target.New(d.Name, target.Mode(d.Mode), bounds)
		if err != nil {
			return nil, err
		}
		if d.Transform != "" {
			t, err = t.WithTransformMode(target.TransformMode(d.Transform))
			if err != nil {
				return nil, err
			}
		}
		targets[i] = t
	}
	return targets, nil
}

func summaryToDTO(s lookup.Summary) summaryDTO {
	return summaryDTO{
		Exact:     s.Exact,
		Ambiguous: s.Ambiguous,
		Imputed:   s.Imputed,
		Computed:  s.Computed,
		Fake:      s.Fake,
	}
}
