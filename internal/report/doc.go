// Package report renders a report document and writes it out.
//
// This package contains writers for the supported output formats:
//   - MarkdownWriter: GitHub flavoured Markdown for reading and sharing
//   - JSONWriter: the same document as structured JSON for other tools
//
// Report data structures live in the model package; writers only render
// them. Output is rendered into memory first and then written atomically,
// so a failed run never leaves a partial report behind.
package report
