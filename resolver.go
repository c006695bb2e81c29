package baybe

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Mehrdad93/baybe/internal/config"
	"github.com/Mehrdad93/baybe/internal/domain/target"
	"github.com/Mehrdad93/baybe/internal/domain/value"
	"github.com/Mehrdad93/baybe/internal/lookup"
)

// Target defines one measured objective.
type Target struct {
	Name  string
	Mode  string // MAX, MIN or MATCH
	Lower *float64
	Upper *float64
	// Transform selects how raw values map onto [0, 1] when bounds are
	// closed: LINEAR, TRIANGULAR or BELL. Empty picks the mode default.
	Transform string
}

// ImputeMode is the fallback policy for query rows without a table match.
type ImputeMode string

// Impute modes.
const (
	ImputeError  ImputeMode = "error"
	ImputeWorst  ImputeMode = "worst"
	ImputeBest   ImputeMode = "best"
	ImputeMean   ImputeMode = "mean"
	ImputeRandom ImputeMode = "random"
	ImputeIgnore ImputeMode = "ignore"
)

// Source supplies target values for proposed parameter settings.
// A nil Source makes the resolver invent plausible fake results.
type Source interface {
	internalSource() lookup.Source
}

type tableSource struct{ t *Table }

func (s tableSource) internalSource() lookup.Source {
	return lookup.NewTableSource(s.t.f)
}

// TableOf resolves queries by exact matching against previous
// measurements. The table is treated as read-only.
func TableOf(t *Table) Source { return tableSource{t: t} }

// Func computes target values for a single parameter assignment.
// Parameter cells arrive as nil (missing), float64 or string. The
// returned map must contain exactly one value per target name.
type Func func(params map[string]any) (map[string]float64, error)

func (fn Func) internalSource() lookup.Source {
	return lookup.Func(func(params map[string]value.Value) (map[string]float64, error) {
		m := make(map[string]any, len(params))
		for k, v := range params {
			m[k] = fromCell(v)
		}
		return fn(m)
	})
}

// Summary counts how each query row was resolved.
type Summary struct {
	Exact     int // copied from a single table match
	Ambiguous int // chosen among duplicate table matches
	Imputed   int // filled by the impute policy
	Computed  int // obtained from a callable source
	Fake      int // invented by the fake-result generator
}

// Resolver fills target values into query tables.
type Resolver struct {
	r *lookup.Resolver
}

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	logger *zap.Logger
	rng    *rand.Rand
}

// WithSeed fixes the random source used for ambiguous-match tie-breaks,
// the random impute policy, and fake results.
func WithSeed(seed int64) Option {
	return func(c *resolverConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger used for non-fatal warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *resolverConfig) { c.logger = logger }
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	cfg := &resolverConfig{}
	for _, o := range opts {
		o(cfg)
	}
	var inner []lookup.Option
	if cfg.logger != nil {
		inner = append(inner, lookup.WithLogger(cfg.logger))
	}
	if cfg.rng != nil {
		inner = append(inner, lookup.WithRand(cfg.rng))
	}
	return &Resolver{r: lookup.NewResolver(inner...)}
}

// Resolve fills one column per target name into queries, in place.
// On any error the queries are left untouched. An empty mode defaults
// to ImputeError.
func (r *Resolver) Resolve(
	queries *Table,
	targets []Target,
	src Source,
	mode ImputeMode,
) (Summary, error) {
	internal, err := toInternalTargets(targets)
	if err != nil {
		return Summary{}, err
	}
	var isrc lookup.Source
	if src != nil {
		isrc = src.internalSource()
	}
	sum, err := r.r.Resolve(queries.f, internal, isrc, lookup.ImputeMode(mode))
	if err != nil {
		return Summary{}, err
	}
	return Summary(sum), nil
}

func toInternalTargets(targets []Target) ([]target.Target, error) {
	out := make([]target.Target, len(targets))
	for i, t := range targets {
		built, err := config.TargetSpec{
			Name:      t.Name,
			Mode:      t.Mode,
			Lower:     t.Lower,
			Upper:     t.Upper,
			Transform: t.Transform,
		}.Build()
		if err != nil {
			return nil, fmt.Errorf("baybe: %w", err)
		}
		out[i] = built
	}
	return out, nil
}
