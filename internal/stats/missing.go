package stats

import (
	"sort"

	"github.com/nao1215/zhipistat/internal/table"
)

// ColumnMissing is the amount of missing data in one column.
type ColumnMissing struct {
	Column  string
	Missing int

	// Percent is Missing over the row count, rounded to three decimals.
	Percent float64
}

// Missingness lists the columns of t with at least one missing cell,
// highest percentage first, then highest count; ties keep schema order.
// At most limit entries are returned; limit <= 0 returns all.
func Missingness(t *table.Table, limit int) []ColumnMissing {
	var out []ColumnMissing
	for _, c := range t.Columns() {
		n := c.MissingCount()
		if n == 0 {
			continue
		}
		out = append(out, ColumnMissing{
			Column:  c.Name,
			Missing: n,
			Percent: round(Percent(n, t.Len()), 3),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Missing > out[j].Missing
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
