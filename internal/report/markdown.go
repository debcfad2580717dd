package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/zhipistat/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// Every block is followed by a blank line.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(report.Title)
	md.PlainText("")

	for _, b := range report.Blocks {
		w.writeBlock(md, b)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// writeBlock renders one document block.
func (w *MarkdownWriter) writeBlock(md *markdown.Markdown, b model.Block) {
	switch b.Kind {
	case model.BlockHeading:
		w.writeHeading(md, b.Level, b.Text)
	case model.BlockParagraph:
		md.PlainText(b.Text)
	case model.BlockStrong:
		md.PlainText(markdown.Bold(b.Text))
	case model.BlockBullets:
		md.BulletList(b.Items...)
	case model.BlockTable:
		if b.Table != nil {
			md.PlainText(renderTable(b.Table))
		}
	case model.BlockPie:
		w.writePieChart(md, b)
	}
}

// writeHeading writes a heading; levels outside 1-6 are clamped.
func (w *MarkdownWriter) writeHeading(md *markdown.Markdown, level int, text string) {
	switch {
	case level <= 1:
		md.H1(text)
	case level == 2:
		md.H2(text)
	case level == 3:
		md.H3(text)
	case level == 4:
		md.H4(text)
	case level == 5:
		md.H5(text)
	default:
		md.H6(text)
	}
}

// writePieChart writes a mermaid pie chart of the block's slices.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, b model.Block) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(b.Text),
		piechart.WithShowData(true),
	)

	for _, s := range b.Slices {
		// Mermaid labels are double-quoted.
		chart.LabelAndIntValue(strings.ReplaceAll(s.Label, `"`, "'"), s.Value)
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
}

// cellReplacer keeps each cell on one line and inside its column.
var cellReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"|", `\|`,
)

// renderTable renders a pipe table without padding or alignment markers.
func renderTable(t *model.Table) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(cellReplacer.Replace(c))
			sb.WriteString(" |")
		}
	}

	writeRow(t.Header)
	sb.WriteString("\n|")
	for range t.Header {
		sb.WriteString(" --- |")
	}
	for _, row := range t.Rows {
		sb.WriteString("\n")
		writeRow(row)
	}
	return sb.String()
}
