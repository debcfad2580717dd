// Package config provides the options of a report run: where the table is
// read from, where the report goes, how many categories to show and how
// the output is formatted. Values come from built-in defaults, an optional
// YAML file and command-line flags, in that order of precedence.
package config
