package main

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/zhipistat/internal/config"
	"github.com/nao1215/zhipistat/internal/database"
	zlog "github.com/nao1215/zhipistat/internal/log"
	"github.com/nao1215/zhipistat/internal/model"
	"github.com/nao1215/zhipistat/internal/pipeline"
	"github.com/nao1215/zhipistat/internal/report"
	"github.com/nao1215/zhipistat/internal/table"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute summary statistics and write the report",
		Long: `Report loads the comment table, computes summary statistics and writes
them as a single document.

Sections:
  A. document structure and location fields (factual)
  B. signatures, dates and text lengths (derived)
  C. prior and probability fields
  D. missing values

Columns that do not exist in the input are skipped.

Input format is chosen by file extension:
  .csv               comma separated (default for unknown extensions)
  .tsv, .tab         tab separated
  .xlsx, .xlsm       first worksheet, or --sheet
  .db, .sqlite(3)    table "comments", or --table

Examples:
  # Markdown report from a CSV file
  zhipistat report --input zhipi_comments.csv --output DATA_SUMMARY_REPORT.md

  # JSON report listing the 20 most frequent values
  zhipistat report -i zhipi_comments.csv -o summary.json --format json --top-n 20

  # Read a worksheet of a workbook
  zhipistat report -i zhipi.xlsx --sheet comments -o REPORT.md`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Input table path (CSV, TSV, XLSX or SQLite)")
	cmd.Flags().StringP("output", "o", "", "Output report path (creates directories if needed)")
	cmd.Flags().IntP("top-n", "n", config.DefaultTopN, "Number of values listed per categorical column")
	cmd.Flags().StringP("format", "F", config.DefaultFormat, "Output format: markdown or json")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .zhipistat.yaml in current directory or XDG config directory)")
	cmd.Flags().String("sheet", "", "Worksheet to read from an XLSX input (default: first sheet)")
	cmd.Flags().String("table", database.DefaultTable, "Table to read from a SQLite input")
	cmd.Flags().Bool("charts", false, "Add a mermaid pie chart after each categorical table")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "Log format on stderr: text or json")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd, cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runReport(ctx, cfg, logger)
}

// newLogger creates the stderr logger selected by cfg.LogFormat.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return zlog.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	return zlog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in increasing order of precedence. Only flags the
// user actually set override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cfg.InputPath, err = flags.GetString("input"); err != nil {
		return nil, err
	}
	if cfg.OutputPath, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Sheet, err = flags.GetString("sheet"); err != nil {
		return nil, err
	}
	if cfg.Table, err = flags.GetString("table"); err != nil {
		return nil, err
	}
	if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
		return nil, err
	}
	if flags.Changed("top-n") {
		if cfg.TopN, err = flags.GetInt("top-n"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("charts") {
		if cfg.Charts, err = flags.GetBool("charts"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runReport loads the table, builds the document and writes it. Nothing is
// written unless every step succeeds.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting report",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"format", cfg.Format,
		"topN", cfg.TopN,
	)

	tbl, err := loadTable(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load table %s: %w", cfg.InputPath, err)
	}
	logger.Info("table loaded", "rows", tbl.Len(), "columns", tbl.Width())

	doc := model.NewReport(cfg.Title, cfg.InputPath)
	p := pipeline.NewReportPipeline(pipeline.Options{
		TopN:            cfg.TopN,
		CrossTabMaxCols: cfg.CrossTabMaxCols,
		MissingTopN:     cfg.MissingTopN,
		Charts:          cfg.Charts,
	}, pipeline.WithLogger(logger))
	logger.Debug("pipeline ready", "steps", p.StepCount(), "names", p.StepNames())

	if err := p.Execute(ctx, tbl, doc); err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	data, err := report.Render(doc, cfg.Format, getVersion())
	if err != nil {
		return err
	}

	if err := report.WriteFileAtomic(cfg.OutputPath, data, report.DefaultFileMode); err != nil {
		return err
	}

	logger.Info("report written", "path", cfg.OutputPath, "bytes", len(data), "steps", len(doc.Steps))
	return nil
}

// loadTable reads the input according to its file extension.
func loadTable(ctx context.Context, cfg *config.Config) (*table.Table, error) {
	switch table.DetectFormat(cfg.InputPath) {
	case table.FormatTSV:
		return table.LoadDelimited(cfg.InputPath, '\t')
	case table.FormatXLSX:
		return table.LoadXLSX(cfg.InputPath, cfg.Sheet)
	case table.FormatSQLite:
		return database.Load(ctx, cfg.InputPath, cmp.Or(cfg.Table, database.DefaultTable))
	default:
		return table.LoadDelimited(cfg.InputPath, ',')
	}
}
