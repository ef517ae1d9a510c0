package model

// BlockType represents the kind of page block
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeText
	BlockTypeTable
	BlockTypeHeading
	BlockTypeImage
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeText:
		return "text"
	case BlockTypeTable:
		return "table"
	case BlockTypeHeading:
		return "heading"
	case BlockTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block is the interface for all page blocks. Concrete types are TextLine,
// TableGrid, HeadingCandidate, and ImageRef. Blocks are immutable once
// produced by extraction; pipeline stages build new values rather than
// mutating blocks in place.
type Block interface {
	Type() BlockType
}

// TextLine is a single extracted line of text with position and style
// metadata. Y grows downward from the top of the page; Indent is the
// horizontal offset of the line's first glyph from the page's left edge.
type TextLine struct {
	Content  string
	Y        float64
	Indent   float64
	FontSize float64
	Bold     bool
	Italic   bool
}

func (t TextLine) Type() BlockType { return BlockTypeText }

// TableGrid is a rectangular (possibly jagged) grid of cell text. Rows and
// cells keep extraction order. Merged-cell artifacts from the extractor
// (the same text reported in adjacent cells) are preserved as-is.
type TableGrid struct {
	Rows [][]string
}

func (t TableGrid) Type() BlockType { return BlockTypeTable }

// RowCount returns the number of rows in the grid
func (t TableGrid) RowCount() int {
	return len(t.Rows)
}

// MaxCols returns the widest row length across the grid
func (t TableGrid) MaxCols() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// HeadingCandidate is a line the extractor already classified as a heading
// (for example from a DOCX paragraph style). Level is a 1-6 hint; values
// outside that range are clamped at render time.
type HeadingCandidate struct {
	Content string
	Level   int
}

func (h HeadingCandidate) Type() BlockType { return BlockTypeHeading }

// ImageRef marks a significant image on the page. The image data itself
// stays with the extractor; the pipeline only emits a placeholder comment.
type ImageRef struct {
	Index int // 1-based index of the image on its page
}

func (i ImageRef) Type() BlockType { return BlockTypeImage }
