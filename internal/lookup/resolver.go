// Package lookup resolves target values for batches of proposed
// experimental parameter settings: by computation, by exact matching
// against a table of previous measurements, or by statistical fallback.
package lookup

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Mehrdad93/baybe/internal/domain"
	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// Summary counts how each query row was resolved.
type Summary struct {
	Exact     int // copied from a single table match
	Ambiguous int // chosen among duplicate table matches
	Imputed   int // filled by the impute policy
	Computed  int // obtained from a callable source
	Fake      int // invented by the fake-result generator
}

// Resolver fills target values into query frames.
type Resolver struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithRand sets the random source used for ambiguous-match tie-breaks,
// the random impute policy, and fake results.
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) { r.rng = rng }
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fills one column per target name into queries, in place.
// The resolver holds exclusive write access to queries for the duration of
// the call; on any error the queries are left untouched.
//
// Dispatch depends on the source: nil invents fake results, Func and
// PositionalFunc compute values per row, TableSource matches rows exactly
// against historical data and falls back to the impute mode for misses.
func (r *Resolver) Resolve(
	queries *frame.Frame,
	targets []target.Target,
	src Source,
	mode ImputeMode,
) (Summary, error) {
	if mode == "" {
		mode = ImputeError
	}
	if len(targets) == 0 {
		return Summary{}, fmt.Errorf("%w: no targets given", domain.ErrConfiguration)
	}

	switch s := src.(type) {
	case nil:
		return r.fillFake(queries, targets)
	case Func:
		return r.resolveFromFunc(queries, targets, s)
	case PositionalFunc:
		return r.resolveFromPositionalFunc(queries, targets, s)
	case TableSource:
		return r.resolveFromTable(queries, targets, s.Table(), mode)
	default:
		return Summary{}, fmt.Errorf("%w: unsupported source type %T", domain.ErrConfiguration, src)
	}
}

// resolveFromFunc computes values per row via a labeled callable.
// The callable must return exactly one value per target name.
func (r *Resolver) resolveFromFunc(
	queries *frame.Frame,
	targets []target.Target,
	fn Func,
) (Summary, error) {
	names := target.Names(targets)
	resolved := make([][]value.Value, queries.NumRows())

	for i := 0; i < queries.NumRows(); i++ {
		out, err := fn(queries.RowMap(i))
		if err != nil {
			return Summary{}, fmt.Errorf("lookup callable failed on row %d: %w", i, err)
		}
		if len(out) != len(targets) {
			return Summary{}, fmt.Errorf(
				"%w: callable returned %d values for %d targets",
				domain.ErrConfiguration, len(out), len(targets))
		}
		vals := make([]value.Value, len(names))
		for k, name := range names {
			v, ok := out[name]
			if !ok {
				return Summary{}, fmt.Errorf(
					"%w: callable returned no value for target %q",
					domain.ErrConfiguration, name)
			}
			vals[k] = value.Number(v)
		}
		resolved[i] = vals
	}

	if err := writeResolved(queries, names, resolved); err != nil {
		return Summary{}, err
	}
	return Summary{Computed: queries.NumRows()}, nil
}

// resolveFromPositionalFunc computes values per row via a callable whose
// return values are aligned to the target list by position.
func (r *Resolver) resolveFromPositionalFunc(
	queries *frame.Frame,
	targets []target.Target,
	fn PositionalFunc,
) (Summary, error) {
	r.logger.Warn("positional lookup callable in use; return values are aligned to targets by order, not by name")

	names := target.Names(targets)
	resolved := make([][]value.Value, queries.NumRows())

	for i := 0; i < queries.NumRows(); i++ {
		out, err := fn(queries.Row(i))
		if err != nil {
			return Summary{}, fmt.Errorf("lookup callable failed on row %d: %w", i, err)
		}
		if len(out) != len(targets) {
			return Summary{}, fmt.Errorf(
				"%w: callable returned %d values for %d targets",
				domain.ErrConfiguration, len(out), len(targets))
		}
		vals := make([]value.Value, len(out))
		for k, v := range out {
			vals[k] = value.Number(v)
		}
		resolved[i] = vals
	}

	if err := writeResolved(queries, names, resolved); err != nil {
		return Summary{}, err
	}
	return Summary{Computed: queries.NumRows()}, nil
}

// resolveFromTable matches each query row exactly against the table.
// Matching is a hash join on the query frame's parameter columns; rows with
// a missing cell in any key column never match anything.
func (r *Resolver) resolveFromTable(
	queries *frame.Frame,
	targets []target.Target,
	table *frame.Frame,
	mode ImputeMode,
) (Summary, error) {
	names := target.Names(targets)
	paramCols := queries.Columns()

	for _, col := range paramCols {
		if !table.HasColumn(col) {
			return Summary{}, fmt.Errorf(
				"%w: lookup table has no parameter column %q", domain.ErrConfiguration, col)
		}
	}
	for _, name := range names {
		if !table.HasColumn(name) {
			return Summary{}, fmt.Errorf(
				"%w: lookup table has no target column %q", domain.ErrConfiguration, name)
		}
	}

	index := buildRowIndex(table, paramCols)

	var sum Summary
	resolved := make([][]value.Value, queries.NumRows())

	for i := 0; i < queries.NumRows(); i++ {
		key, ok := rowKey(queries, i, paramCols)
		var matches []int
		if ok {
			matches = index[key]
		}

		switch {
		case len(matches) == 1:
			resolved[i] = tableRowValues(table, matches[0], names)
			sum.Exact++

		case len(matches) > 1:
			r.logger.Warn("duplicate parameter combinations in lookup table, choosing a random match",
				zap.Int("query_row", i),
				zap.Ints("table_rows", matches),
			)
			pick := matches[r.rng.Intn(len(matches))]
			resolved[i] = tableRowValues(table, pick, names)
			sum.Ambiguous++

		default:
			if mode == ImputeIgnore {
				return Summary{}, fmt.Errorf(
					"%w: row %d has no lookup match although the search space "+
						"was expected to be reduced to matchable combinations",
					domain.ErrInvariantViolation, i)
			}
			vals, err := imputeRow(queries, i, table, targets, mode, r.rng)
			if err != nil {
				return Summary{}, err
			}
			resolved[i] = vals
			sum.Imputed++
		}
	}

	if err := writeResolved(queries, names, resolved); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// buildRowIndex indexes table rows by their key-column values.
// Rows with a missing cell in any key column are left out, so they can
// never be matched.
func buildRowIndex(table *frame.Frame, keyCols []string) map[string][]int {
	index := make(map[string][]int, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		key, ok := rowKey(table, i, keyCols)
		if !ok {
			continue
		}
		index[key] = append(index[key], i)
	}
	return index
}

// rowKey encodes the row's key-column cells into a canonical join key.
// Each cell key is length-prefixed so cell content can never shift
// across column boundaries. ok is false when any key cell is missing.
func rowKey(f *frame.Frame, row int, keyCols []string) (string, bool) {
	key := ""
	for _, col := range keyCols {
		v, err := f.At(row, col)
		if err != nil || v.IsMissing() {
			return "", false
		}
		k := v.Key()
		key += strconv.Itoa(len(k)) + ":" + k
	}
	return key, true
}

func tableRowValues(table *frame.Frame, row int, names []string) []value.Value {
	vals := make([]value.Value, len(names))
	for k, name := range names {
		v, _ := table.At(row, name)
		vals[k] = v
	}
	return vals
}

// writeResolved assigns the collected values column by column. Called only
// after every row resolved, so a failed batch never leaves partial writes.
func writeResolved(queries *frame.Frame, names []string, resolved [][]value.Value) error {
	for k, name := range names {
		col := make([]value.Value, len(resolved))
		for i := range resolved {
			col[i] = resolved[i][k]
		}
		if err := queries.SetColumn(name, col); err != nil {
			return err
		}
	}
	return nil
}
