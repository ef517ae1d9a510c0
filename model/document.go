package model

import "time"

// Document represents one extracted document: an ordered sequence of pages
// in extraction order. Pages are never reordered once added.
type Document struct {
	// Source is the name of the input the document was extracted from
	Source string

	// Pages are the document's pages in extraction order
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument(source string) *Document {
	return &Document{
		Source: source,
		Pages:  make([]*Page, 0),
	}
}

// AddPage appends a page to the document and assigns its 1-based number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// AllScanned reports whether every page carries the scanned-image flag.
// A document with no pages is not considered scanned.
func (d *Document) AllScanned() bool {
	if len(d.Pages) == 0 {
		return false
	}
	for _, page := range d.Pages {
		if !page.Scanned {
			return false
		}
	}
	return true
}

// Page represents a single page: an ordered sequence of blocks plus the
// page-level signals the normalization pipeline consumes.
type Page struct {
	Number  int     // 1-indexed page number, assigned by Document.AddPage
	Width   float64 // Page width in points (0 if the extractor has no geometry)
	Height  float64 // Page height in points
	Scanned bool    // True when the extractor found only image content

	// Blocks are the page's content blocks in reading order
	Blocks []Block
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page
func (p *Page) AddBlock(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// TextLines returns the page's text-line blocks with their block indices
func (p *Page) TextLines() []IndexedLine {
	var lines []IndexedLine
	for i, b := range p.Blocks {
		if tl, ok := b.(TextLine); ok {
			lines = append(lines, IndexedLine{Index: i, Line: tl})
		}
	}
	return lines
}

// IndexedLine pairs a text line with its block index on the page
type IndexedLine struct {
	Index int
	Line  TextLine
}

// BlockRef identifies a single block by page number (1-based) and block
// index within the page (0-based).
type BlockRef struct {
	Page  int
	Block int
}

// ConversionMetadata describes one conversion run. It is attached once at
// assembly and never mutated afterwards; Converted is the only field that
// varies between otherwise identical runs.
type ConversionMetadata struct {
	Source    string
	Converted time.Time
	Converter string
}
