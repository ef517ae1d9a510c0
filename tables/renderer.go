package tables

import (
	"strings"

	"github.com/galleydoc/galley/model"
)

// Renderer converts cell grids into GitHub-flavored Markdown tables
type Renderer struct{}

// NewRenderer creates a new table renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts a (possibly jagged) cell grid into GFM table lines. The
// first row is treated as the header row, followed by a separator row of
// "---" cells. Every output row is padded to the widest row's column count
// so the table stays well-formed. An empty grid renders to nothing.
//
// Duplicate text reported by the extractor for merged cells is passed
// through untouched; deduplicating it is out of scope here.
func (r *Renderer) Render(grid model.TableGrid) []string {
	cols := grid.MaxCols()
	if grid.RowCount() == 0 || cols == 0 {
		return nil
	}

	lines := make([]string, 0, grid.RowCount()+1)
	lines = append(lines, renderRow(grid.Rows[0], cols))
	lines = append(lines, separatorRow(cols))
	for _, row := range grid.Rows[1:] {
		lines = append(lines, renderRow(row, cols))
	}

	return lines
}

// renderRow renders one grid row padded (or truncated) to cols cells
func renderRow(row []string, cols int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i := 0; i < cols; i++ {
		cell := ""
		if i < len(row) {
			cell = escapeCell(row[i])
		}
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(" |")
	}
	return sb.String()
}

// separatorRow builds the header separator: one "---" per column
func separatorRow(cols int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i := 0; i < cols; i++ {
		sb.WriteString(" --- |")
	}
	return sb.String()
}

// escapeCell makes cell text safe inside a pipe-delimited row. Markdown
// table cells cannot contain literal line breaks, so newlines collapse to
// spaces.
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "|", `\|`)
	return strings.TrimSpace(text)
}
