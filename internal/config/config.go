package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
)

// Report formats.
const (
	// FormatMarkdown renders GitHub flavoured Markdown.
	FormatMarkdown = "markdown"

	// FormatJSON renders the report document as JSON.
	FormatJSON = "json"
)

// Log formats.
const (
	// LogFormatText writes key=value log lines.
	LogFormatText = "text"

	// LogFormatJSON writes one JSON object per log line.
	LogFormatJSON = "json"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "zhipistat"

	// DefaultTopN is the number of most frequent values listed for each
	// categorical column.
	DefaultTopN = 10

	// DefaultCrossTabMaxCols keeps the manuscript × comment type table
	// readable by showing only the most common comment types.
	DefaultCrossTabMaxCols = 8

	// DefaultMissingTopN is the number of columns listed in the
	// missingness overview.
	DefaultMissingTopN = 20

	// DefaultFormat is the output format.
	DefaultFormat = FormatMarkdown

	// DefaultLogFormat is the format of diagnostics on stderr.
	DefaultLogFormat = LogFormatText

	// DefaultTitle is the top-level heading of the report.
	DefaultTitle = "脂批数据集：关键汇总统计（Key Summary Statistics）"
)

// Config holds every option of a report run.
// It is built from flags by the CLI and passed down explicitly.
type Config struct {
	// InputPath is the table to summarise (CSV, TSV, XLSX or SQLite).
	InputPath string `validate:"required"`

	// OutputPath is where the report is written. An existing file is
	// replaced.
	OutputPath string `validate:"required"`

	// TopN is the number of categories listed per categorical column.
	TopN int `validate:"min=1"`

	// CrossTabMaxCols limits the columns of the cross tabulation.
	CrossTabMaxCols int `validate:"min=1"`

	// MissingTopN limits the rows of the missingness overview.
	MissingTopN int `validate:"min=1"`

	// Format is FormatMarkdown or FormatJSON.
	Format string `validate:"oneof=markdown json"`

	// Title is the document title.
	Title string

	// Charts adds a mermaid pie chart after each categorical table.
	Charts bool

	// Sheet selects the worksheet of an XLSX input. Empty means the
	// first sheet.
	Sheet string

	// Table selects the table of a SQLite input. Empty means "comments".
	Table string

	// Verbose enables debug logging.
	Verbose bool

	// LogFormat is LogFormatText or LogFormatJSON.
	LogFormat string `validate:"oneof=text json"`

	// ConfigFilePath is an explicit configuration file. When empty,
	// FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		TopN:            DefaultTopN,
		CrossTabMaxCols: DefaultCrossTabMaxCols,
		MissingTopN:     DefaultMissingTopN,
		Format:          DefaultFormat,
		Title:           DefaultTitle,
		LogFormat:       DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for zhipistat.
// On Linux: ~/.config/zhipistat
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// validate is shared; validator caches struct metadata.
var validate = validator.New()

// fieldErrors maps struct fields to the sentinel reported for them.
var fieldErrors = map[string]error{
	"InputPath":       ErrNoInput,
	"OutputPath":      ErrNoOutput,
	"TopN":            ErrInvalidTopN,
	"CrossTabMaxCols": ErrInvalidCrossTabCols,
	"MissingTopN":     ErrInvalidMissingTopN,
	"Format":          ErrInvalidFormat,
	"LogFormat":       ErrInvalidLogFormat,
}

// Validate checks the configuration and returns the first problem found,
// in field order, as one of the package's sentinel errors.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if sentinel, ok := fieldErrors[fe.StructField()]; ok {
		return sentinel
	}
	return fmt.Errorf("invalid %s: failed %q check", fe.StructField(), fe.Tag())
}
