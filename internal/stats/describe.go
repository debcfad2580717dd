package stats

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/nao1215/zhipistat/internal/table"
)

// DefaultPercentiles are the percentiles shown for numeric columns.
var DefaultPercentiles = []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.95}

// ExtendedPercentiles add the 99th percentile for long-tailed lengths.
var ExtendedPercentiles = []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99}

// Percentile is one requested quantile and its value.
type Percentile struct {
	P     float64
	Value float64
}

// Label renders the quantile as a percentage, e.g. "10%" or "2.5%".
func (p Percentile) Label() string {
	return strconv.FormatFloat(round(p.P*100, 6), 'f', -1, 64) + "%"
}

// Summary describes the distribution of a numeric sample.
type Summary struct {
	Count int
	Mean  float64

	// StdDev is the sample standard deviation. It is only set when
	// HasStdDev is true, which requires at least two values.
	StdDev    float64
	HasStdDev bool

	Min         float64
	Max         float64
	Percentiles []Percentile
}

// Empty reports whether the sample had no values.
func (s Summary) Empty() bool { return s.Count == 0 }

// Describe summarises xs. Percentiles are interpolated linearly between
// the closest ranks. An empty xs gives a zero Summary.
func Describe(xs []float64, percentiles []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	sample := moremath.Sample{Xs: sorted, Sorted: true}

	s := Summary{
		Count: len(sorted),
		Mean:  sample.Mean(),
	}
	s.Min, s.Max = sample.Bounds()
	if s.Count > 1 {
		s.StdDev = sample.StdDev()
		s.HasStdDev = true
	}

	s.Percentiles = make([]Percentile, len(percentiles))
	for i, p := range percentiles {
		s.Percentiles[i] = Percentile{P: p, Value: Quantile(sorted, p)}
	}
	return s
}

// Quantile returns the p-quantile (0 <= p <= 1) of an ascending slice
// using linear interpolation. It returns NaN for an empty slice.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// NumericValues returns the non-missing cells of c as floats, in row
// order. Booleans count as 0/1. A text cell fails with ErrNotNumeric.
func NumericValues(c *table.Column) ([]float64, error) {
	xs := make([]float64, 0, c.Len())
	for i, v := range c.Values {
		if v.IsMissing() {
			continue
		}
		f, ok := v.Float()
		if !ok {
			return nil, fmt.Errorf("%w: %q row %d holds %q", ErrNotNumeric, c.Name, i+1, v.String())
		}
		xs = append(xs, f)
	}
	return xs, nil
}

// DescribeColumn is Describe over the non-missing cells of c.
func DescribeColumn(c *table.Column, percentiles []float64) (Summary, error) {
	xs, err := NumericValues(c)
	if err != nil {
		return Summary{}, err
	}
	return Describe(xs, percentiles), nil
}
