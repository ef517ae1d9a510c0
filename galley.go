// Package galley converts extracted document content into clean,
// deterministic Markdown.
//
// The hard part of document conversion is not byte-level parsing - that is
// delegated to external extractors which produce the [model] token stream -
// but the reconstruction layer: recovering paragraphs from positioned text
// lines, stripping repeating headers and footers, repairing line-wrap
// hyphenation, rendering cell grids as GFM tables, and canonicalizing the
// result so identical input always yields identical output.
//
// Basic usage:
//
//	result, err := galley.Convert(doc, galley.Options{Clean: true})
//	if err != nil {
//	    // handle error
//	}
//	fmt.Print(result.Markdown)
//
// Conversion either returns complete, normalized Markdown or an error -
// never a partial result. The only non-deterministic output field is the
// conversion timestamp, which [Options.Timestamp] pins for testing.
package galley

import (
	"github.com/galleydoc/galley/model"
)

// Version is the converter version reported in output metadata
const Version = "0.3.0"

// converterName appears in the metadata line and frontmatter
const converterName = "galley"

// Result is a successful conversion
type Result struct {
	// Markdown is the final output text
	Markdown string

	// Source is the document's source identifier
	Source string

	// PageCount is the number of pages in the input document
	PageCount int

	// Warnings are non-fatal conditions encountered during conversion
	Warnings []string

	// Truncated reports whether MaxChars cut the output short
	Truncated bool
}

// Convert runs the normalization pipeline over an extracted document and
// returns the assembled Markdown. Processing is pure and CPU-bound; no I/O
// happens here, so concurrent Convert calls over distinct documents need
// no coordination.
func Convert(doc *model.Document, opts Options) (*Result, error) {
	a := newAssembler(opts)
	return a.assemble(doc)
}
