// Package baybe resolves target values for batches of proposed
// experimental parameter settings.
//
// Given a table of query rows (one row per parameter assignment) and a
// list of targets, a Resolver fills one column per target. Where the
// values come from depends on the source:
//
//   - nil source: plausible fake results, uniform within each target's
//     bounds
//   - Func: a callable computes the values per row
//   - TableOf: exact matching against a table of previous measurements,
//     with a configurable impute policy for unmatched rows
//
//	queries, _ := baybe.NewTable("temperature", "solvent")
//	_ = queries.AppendRow(25.0, "DMF")
//	_ = queries.AppendRow(80.0, "THF")
//
//	table, _ := baybe.LoadTable("measurements.csv")
//	r := baybe.NewResolver(baybe.WithSeed(42))
//	sum, err := r.Resolve(queries, []baybe.Target{
//	    {Name: "Yield", Mode: "MAX"},
//	}, baybe.TableOf(table), baybe.ImputeBest)
//
// Unmatched rows are handled per the impute mode; with ImputeError the
// batch fails with ErrLookupMiss and the queries are left untouched.
package baybe
