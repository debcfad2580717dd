package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/zhipistat/internal/config"
	"github.com/nao1215/zhipistat/internal/model"
)

// ErrUnknownFormat is returned for an output format with no writer.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// NewWriter returns the writer for format. version is embedded in JSON
// output.
func NewWriter(format string, output io.Writer, version string) (Writer, error) {
	switch format {
	case config.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case config.FormatJSON:
		return NewFullJSONWriter(output, version, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Render renders the report into memory in the given format.
func Render(report *model.Report, format, version string) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriter(format, &buf, version)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(report); err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}
	return buf.Bytes(), nil
}
