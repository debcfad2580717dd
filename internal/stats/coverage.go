package stats

import (
	"sort"

	"github.com/nao1215/zhipistat/internal/table"
)

// GroupCount is the number of rows sharing one integer key.
type GroupCount struct {
	Key   int64
	Count int
}

// Coverage describes how rows spread over an integer grouping key such as
// a chapter number.
type Coverage struct {
	Min      int64
	Max      int64
	Distinct int

	// Groups are ordered by count descending, then key ascending.
	Groups []GroupCount
}

// GroupCoverage groups the non-missing cells of c by their integer part.
// ok is false when c has no non-missing cells.
func GroupCoverage(c *table.Column) (cov Coverage, ok bool, err error) {
	xs, err := NumericValues(c)
	if err != nil {
		return Coverage{}, false, err
	}
	if len(xs) == 0 {
		return Coverage{}, false, nil
	}

	counts := make(map[int64]int)
	for i, x := range xs {
		k := int64(x)
		counts[k]++
		if i == 0 || k < cov.Min {
			cov.Min = k
		}
		if i == 0 || k > cov.Max {
			cov.Max = k
		}
	}

	cov.Distinct = len(counts)
	cov.Groups = make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		cov.Groups = append(cov.Groups, GroupCount{Key: k, Count: n})
	}
	sort.Slice(cov.Groups, func(i, j int) bool {
		gi, gj := cov.Groups[i], cov.Groups[j]
		if gi.Count != gj.Count {
			return gi.Count > gj.Count
		}
		return gi.Key < gj.Key
	})
	return cov, true, nil
}

// Top returns the first n groups.
func (c Coverage) Top(n int) []GroupCount {
	if n >= len(c.Groups) {
		return c.Groups
	}
	return c.Groups[:n]
}

// Bottom returns the last n groups, in the same order as Groups.
func (c Coverage) Bottom(n int) []GroupCount {
	if n >= len(c.Groups) {
		return c.Groups
	}
	return c.Groups[len(c.Groups)-n:]
}
