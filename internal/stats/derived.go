package stats

import (
	"fmt"
	"unicode/utf8"

	"github.com/nao1215/zhipistat/internal/table"
)

// RowSum adds the named columns row by row. Rows where any of them is
// missing are left out.
func RowSum(t *table.Table, names ...string) ([]float64, error) {
	cols := make([]*table.Column, len(names))
	for i, n := range names {
		c, ok := t.Column(n)
		if !ok {
			return nil, fmt.Errorf("column %q not found", n)
		}
		cols[i] = c
	}

	var out []float64
rows:
	for r := range t.Len() {
		sum := 0.0
		for _, c := range cols {
			v := c.Values[r]
			if v.IsMissing() {
				continue rows
			}
			f, ok := v.Float()
			if !ok {
				return nil, fmt.Errorf("%w: %q row %d holds %q", ErrNotNumeric, c.Name, r+1, v.String())
			}
			sum += f
		}
		out = append(out, sum)
	}
	return out, nil
}

// Difference returns end - start per row, skipping rows where either is
// missing.
func Difference(start, end *table.Column) ([]float64, error) {
	n := min(start.Len(), end.Len())
	var out []float64
	for r := range n {
		a, b := start.Values[r], end.Values[r]
		if a.IsMissing() || b.IsMissing() {
			continue
		}
		fa, okA := a.Float()
		fb, okB := b.Float()
		if !okA || !okB {
			return nil, fmt.Errorf("%w: row %d of %q/%q", ErrNotNumeric, r+1, start.Name, end.Name)
		}
		out = append(out, fb-fa)
	}
	return out, nil
}

// TextLengths returns the character count of every cell; missing cells
// count as empty text.
func TextLengths(c *table.Column) []float64 {
	out := make([]float64, c.Len())
	for i, v := range c.Values {
		out[i] = float64(utf8.RuneCountInString(v.String()))
	}
	return out
}

// flagValue reads a 0/1 style flag, treating missing as 0 and truncating
// fractional values.
func flagValue(c *table.Column, r int) (int, error) {
	v := c.Values[r]
	if v.IsMissing() {
		return 0, nil
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("%w: %q row %d holds %q", ErrNotNumeric, c.Name, r+1, v.String())
	}
	return int(f), nil
}

// FlagSum adds up a flag column, so for a 0/1 flag it is the number of
// rows where the flag is set.
func FlagSum(c *table.Column) (int, error) {
	total := 0
	for r := range c.Len() {
		f, err := flagValue(c, r)
		if err != nil {
			return 0, err
		}
		total += f
	}
	return total, nil
}

// SelectByFlag returns the non-missing numeric cells of values in rows
// where flag equals want.
func SelectByFlag(values, flag *table.Column, want int) ([]float64, error) {
	n := min(values.Len(), flag.Len())
	var out []float64
	for r := range n {
		f, err := flagValue(flag, r)
		if err != nil {
			return nil, err
		}
		if f != want {
			continue
		}
		v := values.Values[r]
		if v.IsMissing() {
			continue
		}
		x, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf("%w: %q row %d holds %q", ErrNotNumeric, values.Name, r+1, v.String())
		}
		out = append(out, x)
	}
	return out, nil
}
