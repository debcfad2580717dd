// Package table holds the in-memory dataset the report is computed from.
//
// A Table is a set of equally long, named columns. Each cell is a Value
// whose kind is string, number, boolean or missing. Column types are
// inferred once at load time:
//   - number: every non-missing cell parses as a float
//   - boolean: every non-missing cell is True/False (any case)
//   - string: anything else
//
// Loaders exist for delimited text (CSV/TSV) and Excel workbooks. The
// database package provides a SQLite source that builds a Table as well.
// Tables are never modified after loading.
package table
