package table

import (
	"path/filepath"
	"strings"
)

// Format identifies how a file is read.
type Format string

const (
	// FormatCSV is comma separated text.
	FormatCSV Format = "csv"
	// FormatTSV is tab separated text.
	FormatTSV Format = "tsv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatSQLite is a SQLite database file.
	FormatSQLite Format = "sqlite"
)

// DetectFormat picks a format from the file extension. Unknown
// extensions are read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return FormatTSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}
