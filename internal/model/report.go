package model

// BlockKind identifies the type of a Block.
type BlockKind string

const (
	// BlockHeading is a section heading; Level is 1-6.
	BlockHeading BlockKind = "heading"
	// BlockParagraph is a line of prose.
	BlockParagraph BlockKind = "paragraph"
	// BlockStrong is a bold caption line.
	BlockStrong BlockKind = "strong"
	// BlockBullets is a bullet list.
	BlockBullets BlockKind = "bullets"
	// BlockTable is a table.
	BlockTable BlockKind = "table"
	// BlockPie is a pie chart.
	BlockPie BlockKind = "pie"
)

// Table is a header row plus data rows, all as display text.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Slice is one segment of a pie chart.
type Slice struct {
	Label string `json:"label"`
	Value uint64 `json:"value"`
}

// Block is one element of the document. Only the fields relevant to Kind
// are set.
type Block struct {
	Kind   BlockKind `json:"kind"`
	Level  int       `json:"level,omitempty"`
	Text   string    `json:"text,omitempty"`
	Items  []string  `json:"items,omitempty"`
	Table  *Table    `json:"table,omitempty"`
	Slices []Slice   `json:"slices,omitempty"`
}

// Report is the statistics document for one table.
type Report struct {
	// Title is rendered as the top-level heading.
	Title string `json:"title"`

	// Source is the file the table was loaded from.
	Source string `json:"source"`

	// Blocks is the document body in order.
	Blocks []Block `json:"blocks"`

	// Steps lists the pipeline steps that contributed, in order.
	Steps []string `json:"steps,omitempty"`
}

// NewReport creates an empty report.
func NewReport(title, source string) *Report {
	return &Report{
		Title:  title,
		Source: source,
		Blocks: make([]Block, 0),
	}
}

// Heading appends a heading.
func (r *Report) Heading(level int, text string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockHeading, Level: level, Text: text})
}

// Paragraph appends a prose line.
func (r *Report) Paragraph(text string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockParagraph, Text: text})
}

// Strong appends a bold caption.
func (r *Report) Strong(text string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockStrong, Text: text})
}

// Bullets appends a bullet list.
func (r *Report) Bullets(items ...string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockBullets, Items: items})
}

// AddTable appends a table.
func (r *Report) AddTable(header []string, rows [][]string) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockTable, Table: &Table{Header: header, Rows: rows}})
}

// Pie appends a pie chart.
func (r *Report) Pie(title string, slices []Slice) {
	r.Blocks = append(r.Blocks, Block{Kind: BlockPie, Text: title, Slices: slices})
}
