package table

import (
	"strconv"
	"strings"
)

// Kind is the kind of a single cell.
type Kind int

const (
	// KindMissing marks an absent cell.
	KindMissing Kind = iota
	// KindString is free text.
	KindString
	// KindNumber is a float64.
	KindNumber
	// KindBool is True/False.
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "missing"
	}
}

// Value is one cell of a Table.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Missing returns a missing cell.
func Missing() Value { return Value{Kind: KindMissing} }

// String returns a text cell.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a numeric cell.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Bool returns a boolean cell.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsMissing reports whether the cell has no value.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// Float returns the numeric interpretation of the cell.
// Booleans count as 0 and 1; strings and missing cells report false.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// String renders the cell as text. Numbers use their shortest form, so
// 1 prints as "1" and 2.5 as "2.5". Missing cells render as "".
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Key identifies the cell for grouping. Values of different kinds never
// share a key, and all missing cells share one.
func (v Value) Key() string {
	if v.Kind == KindMissing {
		return "\x00"
	}
	return strconv.Itoa(int(v.Kind)) + "\x00" + v.String()
}

// naMarkers are the cell texts treated as missing when reading text sources.
var naMarkers = map[string]bool{
	"":         true,
	"NA":       true,
	"N/A":      true,
	"n/a":      true,
	"NaN":      true,
	"nan":      true,
	"-NaN":     true,
	"-nan":     true,
	"null":     true,
	"NULL":     true,
	"None":     true,
	"<NA>":     true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"1.#IND":   true,
	"1.#QNAN":  true,
}

// IsNA reports whether raw cell text denotes a missing value.
func IsNA(raw string) bool {
	return naMarkers[raw]
}

// parseBool accepts True/False in any letter case.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// parseNumber parses a float, ignoring surrounding blanks.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
