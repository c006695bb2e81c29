package lookup

import (
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// Source supplies target values for proposed parameter settings.
// A nil Source makes the resolver invent plausible fake results.
type Source interface{ source() }

// TableSource resolves queries by exact matching against historical rows.
type TableSource struct {
	table *frame.Frame
}

// NewTableSource creates a table source. The table is treated as read-only.
func NewTableSource(table *frame.Frame) TableSource {
	return TableSource{table: table}
}

// Table returns the reference table.
func (s TableSource) Table() *frame.Frame { return s.table }

func (TableSource) source() {}

// Func computes target values for a single parameter assignment.
// The returned map must contain exactly one value per target name.
type Func func(params map[string]value.Value) (map[string]float64, error)

func (Func) source() {}

// PositionalFunc computes target values aligned to the target list by
// position. The labeled Func contract is safer; this one exists for
// callers whose functions return bare value tuples.
type PositionalFunc func(params []value.Value) ([]float64, error)

func (PositionalFunc) source() {}
