package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrEmptyInput is returned when a source has no header row.
var ErrEmptyInput = errors.New("input has no header row")

// ReadDelimited reads a delimited text table with a header row.
// A leading UTF-8 byte order mark is dropped.
func ReadDelimited(r io.Reader, source string, delimiter rune) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, rec)
	}

	return FromRecords(source, header, records)
}

// LoadDelimited opens path and reads it with ReadDelimited.
func LoadDelimited(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDelimited(f, path, delimiter)
}
