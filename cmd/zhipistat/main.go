// Package main provides the entry point for the zhipistat CLI.
//
// zhipistat reads a table of annotated Honglou Meng manuscript comments
// (脂批) and writes a descriptive statistics report.
//
// Usage:
//
//	zhipistat report --input comments.csv --output DATA_SUMMARY_REPORT.md
//	zhipistat init
//
// See --help for all available options.
package main

// main is the entry point for zhipistat.
func main() {
	Execute()
}
