package stats

import (
	"math"
	"sort"

	"github.com/nao1215/zhipistat/internal/table"
)

// MissingLabel is how missing cells are labelled in frequency tables.
const MissingLabel = "(missing)"

// Frequency is the number of rows holding one distinct value.
type Frequency struct {
	// Value is the cell text; empty for the missing bucket.
	Value string

	// Missing marks the bucket of missing cells.
	Missing bool

	// Count is the number of rows.
	Count int
}

// Label returns the display text of the bucket.
func (f Frequency) Label() string {
	if f.Missing {
		return MissingLabel
	}
	return f.Value
}

// Frequencies counts the distinct values of c, most frequent first.
// Equal counts keep the order in which values first appear. When
// includeMissing is false the missing bucket is left out. topN <= 0 keeps
// every bucket.
func Frequencies(c *table.Column, topN int, includeMissing bool) []Frequency {
	index := make(map[string]int)
	var out []Frequency
	for _, v := range c.Values {
		if v.IsMissing() && !includeMissing {
			continue
		}
		k := v.Key()
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Frequency{Value: v.String(), Missing: v.IsMissing()})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Percent returns n as a percentage of total, or 0 for an empty total.
func Percent(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// round rounds f to the given number of decimals.
func round(f float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(f*p) / p
}
