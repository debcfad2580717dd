package stats

import (
	"sort"

	"github.com/nao1215/zhipistat/internal/table"
)

// CrossTab holds joint counts of two categorical columns.
type CrossTab struct {
	// Rows are the labels of the first column, ascending.
	Rows []string

	// Cols are the labels of the second column, largest total first.
	Cols []string

	// Counts[i][j] is the number of rows with Rows[i] and Cols[j].
	Counts [][]int
}

// CrossTabulate counts rows by (a, b) label pairs. Missing cells are
// labelled MissingLabel. Rows follow the natural order of a: the missing
// bucket first, then values ascending, numerically when a is numeric. Only
// the maxCols labels of b with the largest totals are kept; equal totals
// keep the natural order of b. maxCols <= 0 keeps every label.
func CrossTabulate(a, b *table.Column, maxCols int) CrossTab {
	n := min(a.Len(), b.Len())

	pairs := make(map[[2]string]int)
	rowValues := make(map[string]table.Value)
	colValues := make(map[string]table.Value)
	colTotals := make(map[string]int)
	for i := range n {
		r, c := label(a.Values[i]), label(b.Values[i])
		pairs[[2]string{r, c}]++
		rowValues[r] = a.Values[i]
		colValues[c] = b.Values[i]
		colTotals[c]++
	}

	rows := naturalOrder(rowValues, a.Type == table.KindNumber)

	cols := naturalOrder(colValues, b.Type == table.KindNumber)
	sort.SliceStable(cols, func(i, j int) bool {
		return colTotals[cols[i]] > colTotals[cols[j]]
	})
	if maxCols > 0 && len(cols) > maxCols {
		cols = cols[:maxCols]
	}

	counts := make([][]int, len(rows))
	for i, r := range rows {
		counts[i] = make([]int, len(cols))
		for j, c := range cols {
			counts[i][j] = pairs[[2]string{r, c}]
		}
	}

	return CrossTab{Rows: rows, Cols: cols, Counts: counts}
}

// naturalOrder returns the labels of values sorted with the missing bucket
// first, then ascending by number when numeric is set, otherwise by text.
func naturalOrder(values map[string]table.Value, numeric bool) []string {
	labels := make([]string, 0, len(values))
	for l := range values {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		mi, mj := labels[i] == MissingLabel, labels[j] == MissingLabel
		if mi != mj {
			return mi
		}
		if numeric {
			fi, okI := values[labels[i]].Float()
			fj, okJ := values[labels[j]].Float()
			if okI && okJ && fi != fj {
				return fi < fj
			}
		}
		return labels[i] < labels[j]
	})
	return labels
}

// label renders a cell for grouping, mapping missing to MissingLabel.
// A text cell reading MissingLabel shares the missing bucket.
func label(v table.Value) string {
	if v.IsMissing() {
		return MissingLabel
	}
	return v.String()
}
