package lookup

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Mehrdad93/baybe/internal/domain"
	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/frame"
)

// imputeTable has Yield values 10, 20, 90 and pH values 6, 7, 9.
func imputeTable(t *testing.T) *frame.Frame {
	t.Helper()
	tbl, err := frame.FromRecords(
		[]string{"T", "Yield", "pH"},
		[][]value.Value{
			{value.Number(1), value.Number(10), value.Number(6)},
			{value.Number(2), value.Number(20), value.Number(7)},
			{value.Number(3), value.Number(90), value.Number(9)},
		},
	)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tbl
}

func unmatchedQuery(t *testing.T) *frame.Frame {
	t.Helper()
	q, err := frame.FromRecords(
		[]string{"T"},
		[][]value.Value{{value.Number(99)}},
	)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return q
}

func imputeOne(t *testing.T, tgt target.Target, mode ImputeMode, seed int64) float64 {
	t.Helper()
	vals, err := imputeRow(
		unmatchedQuery(t), 0, imputeTable(t),
		[]target.Target{tgt}, mode, rand.New(rand.NewSource(seed)),
	)
	if err != nil {
		t.Fatalf("imputeRow: %v", err)
	}
	if len(vals) != 1 {
		t.Fatalf("imputeRow returned %d values, want 1", len(vals))
	}
	f, ok := vals[0].Float()
	if !ok {
		t.Fatalf("imputed value not numeric: %v", vals[0])
	}
	return f
}

func TestImputeMean(t *testing.T) {
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	if got := imputeOne(t, tgt, ImputeMean, 1); got != 40 {
		t.Errorf("mean = %g, want 40", got)
	}

	// Mode-agnostic: same mean for a MIN target.
	minT := target.MustNew("Yield", target.Min, target.Interval{})
	if got := imputeOne(t, minT, ImputeMean, 1); got != 40 {
		t.Errorf("mean for MIN target = %g, want 40", got)
	}
}

func TestImputeBestAndWorst(t *testing.T) {
	bounds, _ := target.NewInterval(5, 10) // center 7.5

	cases := []struct {
		name string
		tgt  target.Target
		mode ImputeMode
		want float64
	}{
		{"best max", target.MustNew("Yield", target.Max, target.Interval{}), ImputeBest, 90},
		{"best min", target.MustNew("Yield", target.Min, target.Interval{}), ImputeBest, 10},
		{"worst max", target.MustNew("Yield", target.Max, target.Interval{}), ImputeWorst, 10},
		{"worst min", target.MustNew("Yield", target.Min, target.Interval{}), ImputeWorst, 90},
		// pH values 6, 7, 9 against center 7.5: closest is 7, farthest is 6
		// (first row wins the |6-7.5| == |9-7.5| tie).
		{"best match", target.MustNew("pH", target.Match, bounds), ImputeBest, 7},
		{"worst match tie keeps first row", target.MustNew("pH", target.Match, bounds), ImputeWorst, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := imputeOne(t, tc.tgt, tc.mode, 1); got != tc.want {
				t.Errorf("imputed = %g, want %g", got, tc.want)
			}
		})
	}
}

func TestImputeRandomSharesRowAcrossTargets(t *testing.T) {
	yield := target.MustNew("Yield", target.Max, target.Interval{})
	ph := target.MustNew("pH", target.Min, target.Interval{})

	// Row pairs that exist in the table.
	valid := map[[2]float64]bool{
		{10, 6}: true,
		{20, 7}: true,
		{90, 9}: true,
	}

	for seed := int64(0); seed < 10; seed++ {
		vals, err := imputeRow(
			unmatchedQuery(t), 0, imputeTable(t),
			[]target.Target{yield, ph}, ImputeRandom, rand.New(rand.NewSource(seed)),
		)
		if err != nil {
			t.Fatalf("imputeRow: %v", err)
		}
		y, _ := vals[0].Float()
		p, _ := vals[1].Float()
		if !valid[[2]float64{y, p}] {
			t.Fatalf("seed %d: values (%g, %g) do not come from a single table row", seed, y, p)
		}
	}
}

func TestImputeErrorMode(t *testing.T) {
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	_, err := imputeRow(
		unmatchedQuery(t), 0, imputeTable(t),
		[]target.Target{tgt}, ImputeError, rand.New(rand.NewSource(1)),
	)
	if !errors.Is(err, domain.ErrLookupMiss) {
		t.Fatalf("err = %v, want ErrLookupMiss", err)
	}
	var miss *domain.LookupMissError
	if !errors.As(err, &miss) {
		t.Fatalf("err %v is not a LookupMissError", err)
	}
	if miss.Row["T"] != "99" {
		t.Errorf("miss row = %v, want T=99", miss.Row)
	}
}

func TestImputeEmptyTable(t *testing.T) {
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	empty, _ := frame.New("T", "Yield")

	for _, mode := range []ImputeMode{ImputeMean, ImputeBest, ImputeWorst, ImputeRandom} {
		t.Run(string(mode), func(t *testing.T) {
			_, err := imputeRow(
				unmatchedQuery(t), 0, empty,
				[]target.Target{tgt}, mode, rand.New(rand.NewSource(1)),
			)
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Errorf("err = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestImputeSkipsMissingObservations(t *testing.T) {
	// Yield 10, <missing>, 90: statistics come from the observed values.
	tbl, _ := frame.FromRecords(
		[]string{"T", "Yield"},
		[][]value.Value{
			{value.Number(1), value.Number(10)},
			{value.Number(2), value.Missing()},
			{value.Number(3), value.Number(90)},
		},
	)
	tgt := target.MustNew("Yield", target.Max, target.Interval{})

	cases := []struct {
		mode ImputeMode
		want float64
	}{
		{ImputeMean, 50},
		{ImputeBest, 90},
		{ImputeWorst, 10},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			vals, err := imputeRow(
				unmatchedQuery(t), 0, tbl,
				[]target.Target{tgt}, tc.mode, rand.New(rand.NewSource(1)),
			)
			if err != nil {
				t.Fatalf("imputeRow: %v", err)
			}
			if f, _ := vals[0].Float(); f != tc.want {
				t.Errorf("imputed = %g, want %g", f, tc.want)
			}
		})
	}
}

func TestImputeAllObservationsMissing(t *testing.T) {
	tbl, _ := frame.FromRecords(
		[]string{"T", "Yield"},
		[][]value.Value{{value.Number(1), value.Missing()}},
	)
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	_, err := imputeRow(
		unmatchedQuery(t), 0, tbl,
		[]target.Target{tgt}, ImputeMean, rand.New(rand.NewSource(1)),
	)
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestImputeNonNumericTargetColumn(t *testing.T) {
	tbl, _ := frame.FromRecords(
		[]string{"T", "Yield"},
		[][]value.Value{{value.Number(1), value.Text("high")}},
	)
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	_, err := imputeRow(
		unmatchedQuery(t), 0, tbl,
		[]target.Target{tgt}, ImputeMean, rand.New(rand.NewSource(1)),
	)
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestImputeMeanIndependentOfQueryRow(t *testing.T) {
	tgt := target.MustNew("Yield", target.Max, target.Interval{})
	q1, _ := frame.FromRecords([]string{"T"}, [][]value.Value{{value.Number(-1000)}})
	q2, _ := frame.FromRecords([]string{"T"}, [][]value.Value{{value.Text("whatever")}})

	for _, q := range []*frame.Frame{q1, q2} {
		vals, err := imputeRow(q, 0, imputeTable(t), []target.Target{tgt}, ImputeMean, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("imputeRow: %v", err)
		}
		if f, _ := vals[0].Float(); f != 40 {
			t.Errorf("mean = %g, want 40 regardless of query row", f)
		}
	}
}
