package lookup

import (
	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// fillFake invents plausible target values for every query row: uniform
// within the target's bounds when they are closed, uniform in [0, 100)
// otherwise. Used when no lookup source is given.
func (r *Resolver) fillFake(queries *frame.Frame, targets []target.Target) (Summary, error) {
	names := target.Names(targets)
	resolved := make([][]value.Value, queries.NumRows())

	for i := range resolved {
		vals := make([]value.Value, len(targets))
		for k, t := range targets {
			vals[k] = value.Number(r.fakeValue(t))
		}
		resolved[i] = vals
	}

	if err := writeResolved(queries, names, resolved); err != nil {
		return Summary{}, err
	}
	return Summary{Fake: queries.NumRows()}, nil
}

func (r *Resolver) fakeValue(t target.Target) float64 {
	b := t.Bounds()
	if b.IsClosed() {
		return b.Lower() + r.rng.Float64()*(b.Upper()-b.Lower())
	}
	return r.rng.Float64() * 100
}
