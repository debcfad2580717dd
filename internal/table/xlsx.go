package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of an Excel workbook. The first row is the
// header. An empty sheet name selects the first sheet of the workbook.
func LoadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyInput
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	// GetRows trims trailing empty cells, so rows may be shorter than the
	// header; FromRecords pads them with missing cells.
	return FromRecords(path, rows[0], rows[1:])
}
