package stats

import "errors"

// ErrNotNumeric is returned when a numeric aggregate meets a text cell.
var ErrNotNumeric = errors.New("column is not numeric")
