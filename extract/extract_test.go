package extract

import (
	"errors"
	"testing"

	"github.com/galleydoc/galley"
	"github.com/galleydoc/galley/format"
	"github.com/galleydoc/galley/model"
)

const sampleDocJSON = `{
	"source": "report.pdf",
	"pages": [
		{
			"width": 612, "height": 792,
			"blocks": [
				{"type": "heading", "content": "Overview", "level": 2},
				{"type": "text", "content": "Hello world", "y": 100, "indent": 72, "font_size": 12},
				{"type": "table", "rows": [["a", "b"], ["1", "2"]]},
				{"type": "image", "index": 1}
			]
		},
		{"scanned": true, "blocks": []}
	]
}`

func TestDocumentCodec_Decode(t *testing.T) {
	doc, err := (&DocumentCodec{}).Decode([]byte(sampleDocJSON))
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}

	if doc.Source != "report.pdf" {
		t.Errorf("Expected source 'report.pdf', got %q", doc.Source)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
	}

	page := doc.GetPage(1)
	if len(page.Blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(page.Blocks))
	}

	h, ok := page.Blocks[0].(model.HeadingCandidate)
	if !ok || h.Content != "Overview" || h.Level != 2 {
		t.Errorf("Unexpected heading block: %#v", page.Blocks[0])
	}

	tl, ok := page.Blocks[1].(model.TextLine)
	if !ok || tl.Content != "Hello world" || tl.FontSize != 12 {
		t.Errorf("Unexpected text block: %#v", page.Blocks[1])
	}

	tg, ok := page.Blocks[2].(model.TableGrid)
	if !ok || tg.RowCount() != 2 {
		t.Errorf("Unexpected table block: %#v", page.Blocks[2])
	}

	if !doc.GetPage(2).Scanned {
		t.Error("Expected page 2 scanned flag to survive decoding")
	}
}

func TestDocumentCodec_RoundTrip(t *testing.T) {
	codec := &DocumentCodec{}
	doc, err := codec.Decode([]byte(sampleDocJSON))
	if err != nil {
		t.Fatal(err)
	}

	encoded, err := codec.Encode(doc)
	if err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}

	again, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("Unexpected re-decode error: %v", err)
	}
	if again.PageCount() != doc.PageCount() {
		t.Errorf("Page count changed through round trip: %d vs %d", again.PageCount(), doc.PageCount())
	}
	if len(again.GetPage(1).Blocks) != len(doc.GetPage(1).Blocks) {
		t.Error("Block count changed through round trip")
	}
}

func TestDocumentCodec_CorruptInput(t *testing.T) {
	_, err := (&DocumentCodec{}).Decode([]byte(`{"pages": [`))
	if err == nil {
		t.Fatal("Expected error for malformed JSON")
	}

	var extErr *Error
	if !errors.As(err, &extErr) || extErr.Kind != KindCorrupt {
		t.Errorf("Expected KindCorrupt, got %v", err)
	}
	if !errors.Is(err, galley.ErrExtractionFailed) {
		t.Error("Expected error to match galley.ErrExtractionFailed")
	}
}

func TestDocumentCodec_UnknownBlockType(t *testing.T) {
	_, err := (&DocumentCodec{}).Decode([]byte(`{"pages": [{"blocks": [{"type": "hologram"}]}]}`))
	if err == nil {
		t.Fatal("Expected error for unknown block type")
	}
	if !errors.Is(err, galley.ErrExtractionFailed) {
		t.Error("Expected extraction-failed classification")
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	reg := NewRegistry()

	doc, err := reg.Extract([]byte(sampleDocJSON), "application/json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", doc.PageCount())
	}
}

func TestRegistry_UnsupportedFormat(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Extract([]byte("%PDF-1.7 binary follows"), "application/pdf")
	if err == nil {
		t.Fatal("Expected error for PDF without a registered extractor")
	}
	if !errors.Is(err, galley.ErrUnsupportedType) {
		t.Errorf("Expected unsupported-type classification, got %v", err)
	}
}

func TestRegistry_CustomExtractor(t *testing.T) {
	reg := NewRegistry()
	reg.Register(format.PDF, stubExtractor{})

	doc, err := reg.Extract([]byte("%PDF-1.7 binary follows"), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc.Source != "stub" {
		t.Errorf("Expected stub extractor result, got %q", doc.Source)
	}
}

type stubExtractor struct{}

func (stubExtractor) Extract(_ []byte, _ string) (*model.Document, error) {
	return model.NewDocument("stub"), nil
}

func TestErrorKind_Strings(t *testing.T) {
	if KindUnsupported.String() != "unsupported" ||
		KindCorrupt.String() != "corrupt" ||
		KindScannedNoText.String() != "scanned-no-text" {
		t.Error("Unexpected kind strings")
	}
}
