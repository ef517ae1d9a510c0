// Package model provides the intermediate representation for extracted
// document content.
//
// This package defines the Token Model that external extractors produce and
// every normalization stage consumes. All conversion operations ultimately
// run over these types, making them the contract between the binary-format
// decoders and the reconstruction pipeline.
//
// # Document Structure
//
// The [Document] type represents a complete document as an ordered sequence
// of pages:
//
//	doc := model.NewDocument("report.pdf")
//	doc.AddPage(page)
//
// Page order is extraction order and is never changed by any pipeline stage.
//
// # Blocks
//
// All page content implements the [Block] interface. The concrete types are:
//
//   - [TextLine] - one positioned line of text with style flags
//   - [TableGrid] - a (possibly jagged) grid of cell strings
//   - [HeadingCandidate] - a line pre-classified as a heading by the extractor
//   - [ImageRef] - a placeholder for a significant page image
//
// Pipeline stages switch exhaustively over [BlockType]; blocks are treated
// as immutable once extraction has produced them.
//
// # Identity
//
// [BlockRef] names a block by page number and block index. The header/footer
// detector reports its findings as a set of BlockRefs so later stages can
// skip those blocks without copying the document.
package model
