// Package stats computes the aggregates shown in the report: value
// frequencies, numeric descriptions, cross tabulations, group coverage,
// duplicate counts, missingness and a few derived per-row series.
//
// Every function is a pure read over table columns. Ordering rules are
// fixed so that the same table always yields the same result.
package stats
