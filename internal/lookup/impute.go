package lookup

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Mehrdad93/baybe/internal/domain"
	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// imputeRow produces fallback values for an unmatched query row, one per
// target in target-list order.
func imputeRow(
	queries *frame.Frame,
	row int,
	table *frame.Frame,
	targets []target.Target,
	mode ImputeMode,
	rng *rand.Rand,
) ([]value.Value, error) {
	switch mode {
	case ImputeMean:
		return imputeStat(table, targets, func(vals []float64, _ target.Target) float64 {
			return stat.Mean(vals, nil)
		})

	case ImputeBest:
		return imputeStat(table, targets, bestValue)

	case ImputeWorst:
		return imputeStat(table, targets, worstValue)

	case ImputeRandom:
		if table.NumRows() == 0 {
			return nil, fmt.Errorf("%w: cannot impute from an empty lookup table", domain.ErrConfiguration)
		}
		// One row index shared across all targets.
		pick := rng.Intn(table.NumRows())
		return tableRowValues(table, pick, target.Names(targets)), nil

	case ImputeError:
		return nil, domain.NewLookupMiss(row, queries.RowStrings(row))

	default:
		return nil, fmt.Errorf("%w: %w %q", domain.ErrConfiguration, domain.ErrUnknownImputeMode, mode)
	}
}

func imputeStat(
	table *frame.Frame,
	targets []target.Target,
	pick func(vals []float64, t target.Target) float64,
) ([]value.Value, error) {
	out := make([]value.Value, len(targets))
	for k, t := range targets {
		vals, err := observedFloats(table, t.Name())
		if err != nil {
			return nil, err
		}
		out[k] = value.Number(pick(vals, t))
	}
	return out, nil
}

// observedFloats extracts a target column's numeric values, skipping
// missing cells. Text cells and columns with no observations at all are
// configuration errors.
func observedFloats(table *frame.Frame, col string) ([]float64, error) {
	vals := make([]float64, 0, table.NumRows())
	for i := 0; i < table.NumRows(); i++ {
		v, err := table.At(i, col)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
		}
		if v.IsMissing() {
			continue
		}
		f, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf(
				"%w: target column %q row %d is not numeric (%s)", domain.ErrConfiguration, col, i, v)
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf(
			"%w: target column %q has no observed values to impute from", domain.ErrConfiguration, col)
	}
	return vals, nil
}

// bestValue is the most favorable historical observation for the target:
// the maximum for Max mode, the minimum for Min mode, and for Match mode
// the value closest to the bound center. Ties keep the first table row.
func bestValue(vals []float64, t target.Target) float64 {
	switch t.Mode() {
	case target.Max:
		return floats.Max(vals)
	case target.Min:
		return floats.Min(vals)
	default:
		return vals[floats.MinIdx(centerDistances(vals, t))]
	}
}

// worstValue mirrors bestValue.
func worstValue(vals []float64, t target.Target) float64 {
	switch t.Mode() {
	case target.Max:
		return floats.Min(vals)
	case target.Min:
		return floats.Max(vals)
	default:
		return vals[floats.MaxIdx(centerDistances(vals, t))]
	}
}

func centerDistances(vals []float64, t target.Target) []float64 {
	center := t.Bounds().Center()
	dist := make([]float64, len(vals))
	for i, v := range vals {
		dist[i] = math.Abs(v - center)
	}
	return dist
}
