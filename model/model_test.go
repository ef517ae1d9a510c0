package model

import "testing"

func TestDocument_AddPage_AssignsNumbers(t *testing.T) {
	doc := NewDocument("test.pdf")
	doc.AddPage(NewPage(612, 792))
	doc.AddPage(NewPage(612, 792))
	doc.AddPage(NewPage(612, 792))

	if doc.PageCount() != 3 {
		t.Fatalf("Expected 3 pages, got %d", doc.PageCount())
	}

	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("Page %d: expected number %d, got %d", i, i+1, page.Number)
		}
	}
}

func TestDocument_GetPage(t *testing.T) {
	doc := NewDocument("test.pdf")
	doc.AddPage(NewPage(612, 792))

	if doc.GetPage(1) == nil {
		t.Error("Expected page 1 to exist")
	}
	if doc.GetPage(0) != nil {
		t.Error("Expected page 0 to be nil")
	}
	if doc.GetPage(2) != nil {
		t.Error("Expected page 2 to be nil")
	}
}

func TestDocument_AllScanned(t *testing.T) {
	doc := NewDocument("scan.pdf")
	if doc.AllScanned() {
		t.Error("Empty document should not report as scanned")
	}

	p1 := NewPage(612, 792)
	p1.Scanned = true
	doc.AddPage(p1)

	if !doc.AllScanned() {
		t.Error("Expected all-scanned document")
	}

	p2 := NewPage(612, 792)
	p2.AddBlock(TextLine{Content: "real text"})
	doc.AddPage(p2)

	if doc.AllScanned() {
		t.Error("Document with a text page should not report as scanned")
	}
}

func TestBlockTypes(t *testing.T) {
	tests := []struct {
		block Block
		want  BlockType
		str   string
	}{
		{TextLine{Content: "hello"}, BlockTypeText, "text"},
		{TableGrid{Rows: [][]string{{"a"}}}, BlockTypeTable, "table"},
		{HeadingCandidate{Content: "Title", Level: 1}, BlockTypeHeading, "heading"},
		{ImageRef{Index: 1}, BlockTypeImage, "image"},
	}

	for _, tt := range tests {
		if tt.block.Type() != tt.want {
			t.Errorf("Expected type %v, got %v", tt.want, tt.block.Type())
		}
		if tt.block.Type().String() != tt.str {
			t.Errorf("Expected string %q, got %q", tt.str, tt.block.Type().String())
		}
	}
}

func TestPage_TextLines(t *testing.T) {
	page := NewPage(612, 792)
	page.AddBlock(TextLine{Content: "first"})
	page.AddBlock(TableGrid{Rows: [][]string{{"cell"}}})
	page.AddBlock(TextLine{Content: "second"})

	lines := page.TextLines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 text lines, got %d", len(lines))
	}
	if lines[0].Index != 0 || lines[1].Index != 2 {
		t.Errorf("Expected block indices 0 and 2, got %d and %d", lines[0].Index, lines[1].Index)
	}
	if lines[1].Line.Content != "second" {
		t.Errorf("Expected 'second', got %q", lines[1].Line.Content)
	}
}

func TestTableGrid_MaxCols(t *testing.T) {
	grid := TableGrid{Rows: [][]string{{"a", "b"}, {"1"}, {"x", "y", "z"}}}
	if grid.MaxCols() != 3 {
		t.Errorf("Expected 3 columns, got %d", grid.MaxCols())
	}
	if grid.RowCount() != 3 {
		t.Errorf("Expected 3 rows, got %d", grid.RowCount())
	}

	empty := TableGrid{}
	if empty.MaxCols() != 0 {
		t.Errorf("Expected 0 columns for empty grid, got %d", empty.MaxCols())
	}
}
