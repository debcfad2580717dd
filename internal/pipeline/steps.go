package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/nao1215/zhipistat/internal/model"
	"github.com/nao1215/zhipistat/internal/stats"
	"github.com/nao1215/zhipistat/internal/table"
)

// valueCountHeader is the header of every categorical table.
var valueCountHeader = []string{"value", "n", "%"}

// addValueCounts appends the frequency table of c, plus a pie chart when
// charts is set. Percentages are taken against every row of the table.
func addValueCounts(r *model.Report, c *table.Column, topN int, charts bool) {
	freqs := stats.Frequencies(c, topN, true)
	rows := make([][]string, len(freqs))
	for i, f := range freqs {
		rows[i] = []string{f.Label(), strconv.Itoa(f.Count), share(f.Count, c.Len())}
	}
	r.AddTable(valueCountHeader, rows)

	if !charts || len(freqs) == 0 {
		return
	}
	slices := make([]model.Slice, len(freqs))
	for i, f := range freqs {
		slices[i] = model.Slice{Label: f.Label(), Value: uint64(f.Count)}
	}
	r.Pie(c.Name, slices)
}

// addSummary appends the numeric summary table of a sample, or the
// no-values line when the sample is empty.
func addSummary(r *model.Report, name string, s stats.Summary) {
	if s.Empty() {
		r.Bullets(noValues(name))
		return
	}
	rows := [][]string{
		{"count", strconv.Itoa(s.Count)},
		{"mean", fixed(s.Mean, 3)},
	}
	if s.HasStdDev {
		rows = append(rows, []string{"std", fixed(s.StdDev, 3)})
	}
	rows = append(rows, []string{"min", fixed(s.Min, 3)})
	for _, p := range s.Percentiles {
		rows = append(rows, []string{p.Label(), fixed(p.Value, 3)})
	}
	rows = append(rows, []string{"max", fixed(s.Max, 3)})
	r.AddTable([]string{name, "value"}, rows)
}

// HeadingStep appends a fixed heading.
type HeadingStep struct {
	name  string
	level int
	text  string
}

// NewHeadingStep creates a step that appends a heading of the given level.
func NewHeadingStep(name string, level int, text string) *HeadingStep {
	return &HeadingStep{name: name, level: level, text: text}
}

// Name returns the step name.
func (s *HeadingStep) Name() string { return s.name }

// Requires returns nil; headings are always present.
func (s *HeadingStep) Requires() []string { return nil }

// Do appends the heading.
func (s *HeadingStep) Do(_ context.Context, _ *table.Table, r *model.Report) error {
	r.Heading(s.level, s.text)
	return nil
}

// MetadataStep describes the dataset itself: file name, size and how many
// distinct identifiers it holds.
type MetadataStep struct {
	idColumn string
}

// NewMetadataStep creates the metadata step. The identifier line is only
// written when idColumn exists.
func NewMetadataStep(idColumn string) *MetadataStep {
	return &MetadataStep{idColumn: idColumn}
}

// Name returns the step name.
func (s *MetadataStep) Name() string { return "metadata" }

// Requires returns nil.
func (s *MetadataStep) Requires() []string { return nil }

// Do appends the metadata bullets.
func (s *MetadataStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	items := []string{
		fmt.Sprintf("数据文件: %s", code(filepath.Base(t.Source()))),
		fmt.Sprintf("行数（批语单元）: **%s**", grouped(t.Len())),
		fmt.Sprintf("列数: **%d**", t.Width()),
	}
	if c, ok := t.Column(s.idColumn); ok {
		unique := stats.CountDuplicates(c).Unique
		items = append(items, fmt.Sprintf("%s 唯一值: **%s**（重复: %s）",
			code(s.idColumn), grouped(unique), grouped(t.Len()-unique)))
	}
	r.Bullets(items...)
	return nil
}

// CategoricalStep appends the value counts of one column.
type CategoricalStep struct {
	column string
	topN   int
	charts bool
}

// NewCategoricalStep creates a value-count step. topN <= 0 lists every
// value.
func NewCategoricalStep(column string, topN int, charts bool) *CategoricalStep {
	return &CategoricalStep{column: column, topN: topN, charts: charts}
}

// Name returns the step name.
func (s *CategoricalStep) Name() string { return "categorical:" + s.column }

// Requires returns the counted column.
func (s *CategoricalStep) Requires() []string { return []string{s.column} }

// Do appends the heading and the value-count table.
func (s *CategoricalStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	r.Heading(3, code(s.column))
	addValueCounts(r, c, s.topN, s.charts)
	return nil
}

// NumericStep appends the distribution summary of one numeric column.
type NumericStep struct {
	column      string
	percentiles []float64
}

// NewNumericStep creates a numeric summary step.
func NewNumericStep(column string, percentiles []float64) *NumericStep {
	return &NumericStep{column: column, percentiles: percentiles}
}

// Name returns the step name.
func (s *NumericStep) Name() string { return "numeric:" + s.column }

// Requires returns the summarised column.
func (s *NumericStep) Requires() []string { return []string{s.column} }

// Do appends the heading and the summary table.
func (s *NumericStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	summary, err := stats.DescribeColumn(c, s.percentiles)
	if err != nil {
		return err
	}
	r.Heading(3, code(s.column))
	addSummary(r, s.column, summary)
	return nil
}

// CoverageStep shows how rows spread over a chapter-like integer key.
type CoverageStep struct {
	column string
	limit  int
}

// NewCoverageStep creates a coverage step listing the limit most and least
// populated groups.
func NewCoverageStep(column string, limit int) *CoverageStep {
	return &CoverageStep{column: column, limit: limit}
}

// Name returns the step name.
func (s *CoverageStep) Name() string { return "coverage:" + s.column }

// Requires returns the key column.
func (s *CoverageStep) Requires() []string { return []string{s.column} }

// Do appends the range table and the top and bottom group tables.
func (s *CoverageStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	cov, ok, err := stats.GroupCoverage(c)
	if err != nil {
		return err
	}

	r.Heading(3, code(s.column)+"（回目覆盖）")
	if !ok {
		r.Bullets(noValues(s.column))
		return nil
	}

	r.AddTable([]string{"stat", "value"}, [][]string{
		{"min", strconv.FormatInt(cov.Min, 10)},
		{"max", strconv.FormatInt(cov.Max, 10)},
		{"unique", strconv.Itoa(cov.Distinct)},
	})

	groupRows := func(groups []stats.GroupCount) [][]string {
		rows := make([][]string, len(groups))
		for i, g := range groups {
			rows[i] = []string{strconv.FormatInt(g.Key, 10), strconv.Itoa(g.Count), share(g.Count, t.Len())}
		}
		return rows
	}
	header := []string{s.column, "n", "%"}
	r.Strong(fmt.Sprintf("每回批语条数（Top %d）", s.limit))
	r.AddTable(header, groupRows(cov.Top(s.limit)))
	r.Strong(fmt.Sprintf("每回批语条数（Bottom %d）", s.limit))
	r.AddTable(header, groupRows(cov.Bottom(s.limit)))
	return nil
}

// CrossTabStep appends the joint distribution of two categorical columns.
type CrossTabStep struct {
	rows    string
	cols    string
	maxCols int
}

// NewCrossTabStep creates a cross-tabulation step. Only the maxCols most
// frequent values of cols become table columns.
func NewCrossTabStep(rows, cols string, maxCols int) *CrossTabStep {
	return &CrossTabStep{rows: rows, cols: cols, maxCols: maxCols}
}

// Name returns the step name.
func (s *CrossTabStep) Name() string { return "crosstab:" + s.rows + "/" + s.cols }

// Requires returns both columns.
func (s *CrossTabStep) Requires() []string { return []string{s.rows, s.cols} }

// Do appends the heading and the contingency table.
func (s *CrossTabStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	a, _ := t.Column(s.rows)
	b, _ := t.Column(s.cols)
	ct := stats.CrossTabulate(a, b, s.maxCols)

	header := append([]string{s.rows}, ct.Cols...)
	rows := make([][]string, len(ct.Rows))
	for i, label := range ct.Rows {
		row := make([]string, 0, len(ct.Cols)+1)
		row = append(row, label)
		for _, n := range ct.Counts[i] {
			row = append(row, strconv.Itoa(n))
		}
		rows[i] = row
	}

	r.Heading(3, fmt.Sprintf("%s × %s（交叉分布）", code(s.rows), code(s.cols)))
	r.AddTable(header, rows)
	return nil
}

// FlagStep summarises a 0/1 indicator column. Missing counts as 0.
type FlagStep struct {
	column string
	title  string
}

// NewFlagStep creates a flag overview step under the given heading.
func NewFlagStep(column, title string) *FlagStep {
	return &FlagStep{column: column, title: title}
}

// Name returns the step name.
func (s *FlagStep) Name() string { return "flag:" + s.column }

// Requires returns the flag column.
func (s *FlagStep) Requires() []string { return []string{s.column} }

// Do appends the heading and the set/unset counts.
func (s *FlagStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	set, err := stats.FlagSum(c)
	if err != nil {
		return err
	}
	n := t.Len()
	r.Heading(3, s.title)
	r.AddTable([]string{"metric", "value"}, [][]string{
		{s.column + " = 1", countShare(set, n)},
		{s.column + " = 0", countShare(n-set, n)},
	})
	return nil
}

// LengthStep summarises a text length column and, when the flag column
// exists, compares its distribution between unflagged and flagged rows.
type LengthStep struct {
	column      string
	textColumn  string
	flag        string
	percentiles []float64
}

// NewLengthStep creates the length step. textColumn only names the text
// the lengths were measured on in the heading.
func NewLengthStep(column, textColumn, flag string, percentiles []float64) *LengthStep {
	return &LengthStep{column: column, textColumn: textColumn, flag: flag, percentiles: percentiles}
}

// Name returns the step name.
func (s *LengthStep) Name() string { return "length:" + s.column }

// Requires returns the length column; the flag column is optional.
func (s *LengthStep) Requires() []string { return []string{s.column} }

// Do appends the summary table and the optional group comparison.
func (s *LengthStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	summary, err := stats.DescribeColumn(c, s.percentiles)
	if err != nil {
		return err
	}
	r.Heading(3, fmt.Sprintf("%s（批语文本长度；基于 %s）", code(s.column), code(s.textColumn)))
	addSummary(r, s.column, summary)

	flag, ok := t.Column(s.flag)
	if !ok {
		return nil
	}

	groups := []struct {
		want  int
		label string
	}{
		{0, "unsigned"},
		{1, "signed"},
	}
	var rows [][]string
	for _, g := range groups {
		xs, err := stats.SelectByFlag(c, flag, g.want)
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			continue
		}
		d := stats.Describe(xs, []float64{0.5, 0.9})
		rows = append(rows, []string{
			g.label,
			strconv.Itoa(d.Count),
			fixed(d.Mean, 2),
			fixed(d.Percentiles[0].Value, 1),
			fixed(d.Percentiles[1].Value, 1),
			strconv.FormatInt(int64(d.Max), 10),
		})
	}
	if len(rows) == 0 {
		return nil
	}
	r.Strong(fmt.Sprintf("署名 vs 未署名（%s）", code(s.column)))
	r.AddTable([]string{"group", "n", "mean", "median", "p90", "max"}, rows)
	return nil
}

// BracketStep describes bracketed blocks: whether they span paragraphs and
// how long they are in global document offsets.
type BracketStep struct {
	spans       string
	start       string
	end         string
	percentiles []float64
	charts      bool
}

// NewBracketStep creates the bracket structure step.
func NewBracketStep(spans, start, end string, percentiles []float64, charts bool) *BracketStep {
	return &BracketStep{spans: spans, start: start, end: end, percentiles: percentiles, charts: charts}
}

// Name returns the step name.
func (s *BracketStep) Name() string { return "bracket" }

// Requires returns the span flag and both offset columns.
func (s *BracketStep) Requires() []string { return []string{s.spans, s.start, s.end} }

// Do appends the span counts and the length summary.
func (s *BracketStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	spans, _ := t.Column(s.spans)
	start, _ := t.Column(s.start)
	end, _ := t.Column(s.end)

	lengths, err := stats.Difference(start, end)
	if err != nil {
		return err
	}

	r.Heading(3, "括号块结构（【…】）")
	addValueCounts(r, spans, 0, s.charts)
	r.Strong(fmt.Sprintf("括号块全局长度（%s - %s）", s.end, s.start))
	addSummary(r, "bracket_len", stats.Describe(lengths, s.percentiles))
	return nil
}

// TextLengthStep summarises the character length of a text column.
// Missing cells count as empty text.
type TextLengthStep struct {
	column string
}

// NewTextLengthStep creates a text length step.
func NewTextLengthStep(column string) *TextLengthStep {
	return &TextLengthStep{column: column}
}

// Name returns the step name.
func (s *TextLengthStep) Name() string { return "text_length:" + s.column }

// Requires returns the text column.
func (s *TextLengthStep) Requires() []string { return []string{s.column} }

// Do appends the heading and the length summary.
func (s *TextLengthStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	r.Heading(3, code(s.column)+" 长度（字符数）")
	addSummary(r, s.column+"_len", stats.Describe(stats.TextLengths(c), stats.DefaultPercentiles))
	return nil
}

// DuplicatesStep counts exact repeats in a text column.
type DuplicatesStep struct {
	column string
}

// NewDuplicatesStep creates a duplicate detection step.
func NewDuplicatesStep(column string) *DuplicatesStep {
	return &DuplicatesStep{column: column}
}

// Name returns the step name.
func (s *DuplicatesStep) Name() string { return "duplicates:" + s.column }

// Requires returns the text column.
func (s *DuplicatesStep) Requires() []string { return []string{s.column} }

// Do appends the unique and duplicated counts.
func (s *DuplicatesStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	c, _ := t.Column(s.column)
	d := stats.CountDuplicates(c)
	r.Heading(3, "文本去重信息")
	r.AddTable([]string{"metric", "value"}, [][]string{
		{"unique " + s.column, grouped(d.Unique)},
		{fmt.Sprintf("duplicated rows (by %s)", s.column), grouped(d.Duplicated)},
	})
	return nil
}

// RowSumStep summarises the per-row sum of several numeric columns, for
// checking that probabilities add up to one.
type RowSumStep struct {
	label   string
	title   string
	columns []string
}

// NewRowSumStep creates a row sum step; label names the summed value in
// the table header.
func NewRowSumStep(label, title string, columns ...string) *RowSumStep {
	return &RowSumStep{label: label, title: title, columns: columns}
}

// Name returns the step name.
func (s *RowSumStep) Name() string { return "row_sum:" + s.label }

// Requires returns every summed column.
func (s *RowSumStep) Requires() []string { return s.columns }

// Do appends the heading and the summary of the sums.
func (s *RowSumStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	sums, err := stats.RowSum(t, s.columns...)
	if err != nil {
		return err
	}
	r.Heading(3, s.title)
	addSummary(r, s.label, stats.Describe(sums, stats.DefaultPercentiles))
	return nil
}

// MissingnessStep lists the columns with the most missing cells.
type MissingnessStep struct {
	limit int
}

// NewMissingnessStep creates a missingness step listing at most limit
// columns.
func NewMissingnessStep(limit int) *MissingnessStep {
	return &MissingnessStep{limit: limit}
}

// Name returns the step name.
func (s *MissingnessStep) Name() string { return "missingness" }

// Requires returns nil; every column is inspected.
func (s *MissingnessStep) Requires() []string { return nil }

// Do appends the missingness table, or a sentence when nothing is missing.
func (s *MissingnessStep) Do(_ context.Context, t *table.Table, r *model.Report) error {
	missing := stats.Missingness(t, s.limit)
	if len(missing) == 0 {
		r.Paragraph("本数据集中不存在缺失值。")
		return nil
	}
	rows := make([][]string, len(missing))
	for i, m := range missing {
		rows[i] = []string{m.Column, strconv.Itoa(m.Missing), fixed(m.Percent, 3) + "%"}
	}
	r.Strong(fmt.Sprintf("缺失值最多的前 %d 列", s.limit))
	r.AddTable([]string{"column", "missing_n", "missing_pct"}, rows)
	return nil
}
