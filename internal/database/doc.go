// Package database reads comment tables out of SQLite files.
//
// A Source opens a database file read-only and materialises one table as a
// table.Table. Column types come from the stored values: NULL is missing,
// INTEGER and REAL are numbers, TEXT and BLOB are strings. The file is
// never written.
package database
