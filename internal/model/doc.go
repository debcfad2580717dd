// Package model defines the report document produced by the pipeline.
//
// A Report is an ordered list of blocks: headings, prose, bullet lists,
// tables and optional pie charts. Pipeline steps append blocks; writers in
// the report package render the finished document as Markdown or JSON.
// Keeping the document format-neutral lets both writers share one pass
// over the data.
package model
