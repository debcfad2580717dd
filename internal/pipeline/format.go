package pipeline

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/zhipistat/internal/stats"
)

// grouped formats n with thousands separators, e.g. 12,345.
func grouped(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// fixed formats f with the given number of decimals.
func fixed(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// share formats n as a percentage of total with one decimal, e.g. 12.5%.
func share(n, total int) string {
	return fixed(stats.Percent(n, total), 1) + "%"
}

// countShare formats n together with its share, e.g. "3 (60.0%)". With an
// empty total only the count is shown.
func countShare(n, total int) string {
	if total <= 0 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d (%s)", n, share(n, total))
}

// code wraps a column name in inline code markup.
func code(name string) string {
	return "`" + name + "`"
}

// noValues is the line shown instead of a numeric table when a column has
// no data.
func noValues(name string) string {
	return code(name) + ": no non-missing values."
}
