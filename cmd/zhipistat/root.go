package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for zhipistat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zhipistat",
		Short: "Summary statistics for the Zhiyanzhai comment dataset",
		Long: `zhipistat reads a table of annotated manuscript comments (脂批) and writes
a descriptive statistics report: value distributions of the categorical
fields, numeric summaries, chapter coverage, duplicate text and missing data.

Input may be CSV, TSV, XLSX or a SQLite database. The report is written as
GitHub flavoured Markdown or as JSON.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
