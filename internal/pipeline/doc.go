// Package pipeline turns a loaded table into a report document.
//
// The report is built by a sequence of steps, one per section or column.
// Each step declares the columns it needs; the pipeline skips steps whose
// columns are absent from the table, so the same sequence serves datasets
// with partial schemas. Steps only read the table and append blocks to the
// report, and they run in a fixed order so the same input always yields the
// same document.
package pipeline
