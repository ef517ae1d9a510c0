package galley

import (
	"fmt"
	"strings"

	"github.com/galleydoc/galley/layout"
	"github.com/galleydoc/galley/model"
	"github.com/galleydoc/galley/normalize"
	"github.com/galleydoc/galley/tables"
)

// pageSeparator sits on its own line between page sections
const pageSeparator = "---"

// assembler sequences the normalization stages over a document: one global
// analysis phase (header/footer detection needs whole-document visibility),
// then a per-page transform, then final canonicalization, metadata, and
// truncation. The assembler either produces complete output or an error,
// never a half-normalized string.
type assembler struct {
	opts     Options
	detector *layout.HeaderFooterDetector
	reflower *layout.Reflower
	renderer *tables.Renderer
}

func newAssembler(opts Options) *assembler {
	return &assembler{
		opts:     opts,
		detector: layout.NewHeaderFooterDetector(),
		reflower: layout.NewReflower(),
		renderer: tables.NewRenderer(),
	}
}

func (a *assembler) assemble(doc *model.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrExtractionFailed)
	}
	if doc.AllScanned() {
		return nil, fmt.Errorf("%w: all %d page(s) are scanned images", ErrScannedNoText, doc.PageCount())
	}

	result := &Result{
		Source:    doc.Source,
		PageCount: doc.PageCount(),
	}

	// Phase 1: global analysis
	var headerFooters *layout.HeaderFooterResult
	if a.opts.Clean {
		headerFooters = a.detector.Detect(doc)
	}

	// Phase 2: per-page transform
	var sections []string
	scanned := 0
	for _, page := range doc.Pages {
		if page.Scanned {
			scanned++
			continue
		}

		content := a.renderPage(page, headerFooters)
		if content == "" {
			continue
		}

		if a.opts.PageLabels {
			content = fmt.Sprintf("## Page %d\n\n%s", page.Number, content)
		}
		sections = append(sections, content)
	}

	if scanned > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d scanned page(s) skipped (no extractable text)", scanned))
	}

	// Phase 3: canonicalize, annotate, attach metadata, truncate
	body := strings.Join(sections, "\n\n"+pageSeparator+"\n\n")
	if a.opts.Clean {
		body = normalize.Canonicalize(normalize.CleanTOC(body))
	}

	if headerFooters != nil && len(headerFooters.Patterns()) > 0 {
		note := "<!-- Removed repeating headers/footers: " +
			strings.Join(headerFooters.Patterns(), ", ") + " -->"
		body = note + "\n\n" + body
	}

	meta := renderMetadata(newMetadata(doc.Source, a.opts.timestamp()), a.opts.Frontmatter)
	markdown := meta + "\n"
	if body != "" {
		markdown = meta + "\n\n" + body
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}

	if a.opts.MaxChars > 0 {
		runes := []rune(markdown)
		if len(runes) > a.opts.MaxChars {
			markdown = string(runes[:a.opts.MaxChars])
			result.Truncated = true
		}
	}

	result.Markdown = markdown
	return result, nil
}

// renderPage transforms one page's blocks into a Markdown section. Runs of
// consecutive text lines dispatch to reflow as a unit so paragraph breaks
// never span a table or heading boundary.
func (a *assembler) renderPage(page *model.Page, headerFooters *layout.HeaderFooterResult) string {
	var parts []string
	var run []model.TextLine

	flushRun := func() {
		if len(run) == 0 {
			return
		}
		parts = append(parts, a.renderTextRun(run)...)
		run = nil
	}

	for i, block := range page.Blocks {
		switch b := block.(type) {
		case model.TextLine:
			ref := model.BlockRef{Page: page.Number, Block: i}
			if headerFooters.Flagged(ref) {
				continue
			}
			run = append(run, b)

		case model.TableGrid:
			flushRun()
			if !a.opts.ExtractTables {
				continue
			}
			if lines := a.renderer.Render(b); len(lines) > 0 {
				parts = append(parts, strings.Join(lines, "\n"))
			}

		case model.HeadingCandidate:
			flushRun()
			if text := renderHeading(b); text != "" {
				parts = append(parts, text)
			}

		case model.ImageRef:
			flushRun()
			// Image placeholders are a cleanup nicety, not raw content
			if a.opts.Clean {
				parts = append(parts, fmt.Sprintf("<!-- [image: figure %d on page %d] -->", b.Index, page.Number))
			}
		}
	}
	flushRun()

	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// renderTextRun converts a run of text lines into paragraph strings. In
// clean mode the run goes through reflow; otherwise lines pass through
// verbatim as a single block.
func (a *assembler) renderTextRun(run []model.TextLine) []string {
	if !a.opts.Clean {
		lines := make([]string, 0, len(run))
		for _, l := range run {
			lines = append(lines, l.Content)
		}
		return []string{strings.Join(lines, "\n")}
	}

	paragraphs := a.reflower.Reflow(run)
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return parts
}

// renderHeading renders a heading candidate with its level clamped to 1-6
func renderHeading(h model.HeadingCandidate) string {
	content := strings.TrimSpace(h.Content)
	if content == "" {
		return ""
	}

	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	return strings.Repeat("#", level) + " " + content
}
