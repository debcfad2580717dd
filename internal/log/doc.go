// Package log builds the slog loggers used by zhipistat.
//
// Logs may carry cell values from the dataset, and comment texts are
// often long multi-line passages. ClipHandler wraps any slog.Handler and
// flattens line breaks and shortens long string attributes before they
// reach the output, so that every record stays on one readable line.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("column skipped", "column", "char_len")
package log
