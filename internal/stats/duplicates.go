package stats

import "github.com/nao1215/zhipistat/internal/table"

// Duplicates summarises repeated values in a column.
type Duplicates struct {
	// Unique is the number of distinct non-missing values.
	Unique int

	// Duplicated is the number of rows whose value already appeared in an
	// earlier row. Missing cells are compared like any other value.
	Duplicated int
}

// CountDuplicates compares cells exactly; case and whitespace matter.
func CountDuplicates(c *table.Column) Duplicates {
	seen := make(map[string]bool, c.Len())
	var d Duplicates
	for _, v := range c.Values {
		k := v.Key()
		if seen[k] {
			d.Duplicated++
			continue
		}
		seen[k] = true
		if !v.IsMissing() {
			d.Unique++
		}
	}
	return d
}
