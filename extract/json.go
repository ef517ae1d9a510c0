package extract

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/galleydoc/galley/model"
)

// DocumentCodec encodes and decodes the galley document-JSON interchange
// format: a document as pages of type-tagged blocks. External decoders emit
// this shape; the CLI and any embedding service consume it.
type DocumentCodec struct{}

// jsonDocument is the wire shape of a document
type jsonDocument struct {
	Source string     `json:"source,omitempty"`
	Pages  []jsonPage `json:"pages"`
}

type jsonPage struct {
	Width   float64     `json:"width,omitempty"`
	Height  float64     `json:"height,omitempty"`
	Scanned bool        `json:"scanned,omitempty"`
	Blocks  []jsonBlock `json:"blocks"`
}

// jsonBlock is the tagged union over block kinds. Tag values match
// model.BlockType.String().
type jsonBlock struct {
	Type string `json:"type"`

	// text and heading fields
	Content string `json:"content,omitempty"`

	// text fields
	Y        float64 `json:"y,omitempty"`
	Indent   float64 `json:"indent,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Bold     bool    `json:"bold,omitempty"`
	Italic   bool    `json:"italic,omitempty"`

	// table fields
	Rows [][]string `json:"rows,omitempty"`

	// heading fields
	Level int `json:"level,omitempty"`

	// image fields
	Index int `json:"index,omitempty"`
}

// Extract implements Extractor by decoding interchange JSON. The declared
// MIME type is ignored; content already identified the format.
func (c *DocumentCodec) Extract(data []byte, _ string) (*model.Document, error) {
	return c.Decode(data)
}

// Decode parses interchange JSON into a document
func (c *DocumentCodec) Decode(data []byte) (*model.Document, error) {
	var wire jsonDocument
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return nil, &Error{Kind: KindCorrupt, Cause: err}
	}

	doc := model.NewDocument(wire.Source)
	for pi, wp := range wire.Pages {
		page := model.NewPage(wp.Width, wp.Height)
		page.Scanned = wp.Scanned
		for bi, wb := range wp.Blocks {
			block, err := decodeBlock(wb)
			if err != nil {
				return nil, &Error{
					Kind:  KindCorrupt,
					Cause: fmt.Errorf("page %d block %d: %w", pi+1, bi, err),
				}
			}
			page.AddBlock(block)
		}
		doc.AddPage(page)
	}

	return doc, nil
}

// Encode renders a document as interchange JSON
func (c *DocumentCodec) Encode(doc *model.Document) ([]byte, error) {
	wire := jsonDocument{
		Source: doc.Source,
		Pages:  make([]jsonPage, 0, len(doc.Pages)),
	}

	for _, page := range doc.Pages {
		wp := jsonPage{
			Width:   page.Width,
			Height:  page.Height,
			Scanned: page.Scanned,
			Blocks:  make([]jsonBlock, 0, len(page.Blocks)),
		}
		for _, block := range page.Blocks {
			wp.Blocks = append(wp.Blocks, encodeBlock(block))
		}
		wire.Pages = append(wire.Pages, wp)
	}

	return sonic.Marshal(wire)
}

func decodeBlock(wb jsonBlock) (model.Block, error) {
	switch wb.Type {
	case "text":
		return model.TextLine{
			Content:  wb.Content,
			Y:        wb.Y,
			Indent:   wb.Indent,
			FontSize: wb.FontSize,
			Bold:     wb.Bold,
			Italic:   wb.Italic,
		}, nil
	case "table":
		return model.TableGrid{Rows: wb.Rows}, nil
	case "heading":
		return model.HeadingCandidate{Content: wb.Content, Level: wb.Level}, nil
	case "image":
		return model.ImageRef{Index: wb.Index}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", wb.Type)
	}
}

func encodeBlock(b model.Block) jsonBlock {
	switch v := b.(type) {
	case model.TextLine:
		return jsonBlock{
			Type:     "text",
			Content:  v.Content,
			Y:        v.Y,
			Indent:   v.Indent,
			FontSize: v.FontSize,
			Bold:     v.Bold,
			Italic:   v.Italic,
		}
	case model.TableGrid:
		return jsonBlock{Type: "table", Rows: v.Rows}
	case model.HeadingCandidate:
		return jsonBlock{Type: "heading", Content: v.Content, Level: v.Level}
	case model.ImageRef:
		return jsonBlock{Type: "image", Index: v.Index}
	default:
		return jsonBlock{Type: b.Type().String()}
	}
}
