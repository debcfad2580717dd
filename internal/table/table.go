package table

import (
	"errors"
	"fmt"
)

// ErrDuplicateColumn is returned when two columns share a name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrRaggedColumns is returned when columns differ in length.
var ErrRaggedColumns = errors.New("columns have different lengths")

// Column is a named sequence of cells with an inferred type.
type Column struct {
	// Name is the header of the column.
	Name string

	// Type is the common kind of the non-missing cells, or KindMissing
	// when every cell is missing.
	Type Kind

	// Values holds one cell per row.
	Values []Value
}

// NewColumn builds a column from typed values and infers its type.
// A column mixing kinds is typed as string.
func NewColumn(name string, values []Value) *Column {
	c := &Column{Name: name, Values: values, Type: KindMissing}
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		switch {
		case c.Type == KindMissing:
			c.Type = v.Kind
		case c.Type != v.Kind:
			c.Type = KindString
		}
	}
	return c
}

// ParseColumn builds a column from raw text cells the way text sources are
// read: NA markers become missing, then the column is typed as number,
// boolean or string as a whole.
func ParseColumn(name string, raw []string) *Column {
	numeric, boolean, seen := true, true, false
	for _, s := range raw {
		if IsNA(s) {
			continue
		}
		seen = true
		if numeric {
			if _, ok := parseNumber(s); !ok {
				numeric = false
			}
		}
		if boolean {
			if _, ok := parseBool(s); !ok {
				boolean = false
			}
		}
		if !numeric && !boolean {
			break
		}
	}

	values := make([]Value, len(raw))
	for i, s := range raw {
		if IsNA(s) {
			values[i] = Missing()
			continue
		}
		switch {
		case numeric:
			f, _ := parseNumber(s)
			values[i] = Number(f)
		case boolean:
			b, _ := parseBool(s)
			values[i] = Bool(b)
		default:
			values[i] = String(s)
		}
	}

	c := &Column{Name: name, Values: values, Type: KindString}
	switch {
	case !seen:
		c.Type = KindMissing
	case numeric:
		c.Type = KindNumber
	case boolean:
		c.Type = KindBool
	}
	return c
}

// Len returns the number of cells.
func (c *Column) Len() int { return len(c.Values) }

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Count returns the number of non-missing cells.
func (c *Column) Count() int {
	return c.Len() - c.MissingCount()
}

// Table is an immutable, column-oriented dataset.
type Table struct {
	source  string
	rows    int
	columns []*Column
	index   map[string]int
}

// New assembles a table from columns. Column order is kept; names must be
// unique and all columns must have the same length.
func New(source string, columns ...*Column) (*Table, error) {
	t := &Table{
		source:  source,
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		t.index[c.Name] = i
		if i == 0 {
			t.rows = c.Len()
			continue
		}
		if c.Len() != t.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrRaggedColumns, c.Name, c.Len(), t.rows)
		}
	}
	return t, nil
}

// FromRecords builds a table from a header and text rows. Short rows are
// padded with missing cells; long rows are an error.
func FromRecords(source string, header []string, records [][]string) (*Table, error) {
	raw := make([][]string, len(header))
	for i := range raw {
		raw[i] = make([]string, len(records))
	}
	for r, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", r+1, len(rec), len(header))
		}
		for c := range header {
			if c < len(rec) {
				raw[c][r] = rec[c]
			}
		}
	}

	columns := make([]*Column, len(header))
	for i, name := range header {
		columns[i] = ParseColumn(name, raw[i])
	}
	return New(source, columns...)
}

// Source returns the name of the file or table the data came from.
func (t *Table) Source() string { return t.source }

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Names returns the column names in schema order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in schema order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Has reports whether every named column exists.
func (t *Table) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			return false
		}
	}
	return true
}
