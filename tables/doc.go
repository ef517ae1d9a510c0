// Package tables renders extracted cell grids as GitHub-flavored Markdown.
//
// The [Renderer] takes a [model.TableGrid] - ordered rows of ordered cell
// strings, possibly jagged - and produces one Markdown line per table row:
//
//	renderer := tables.NewRenderer()
//	lines := renderer.Render(grid)
//
// Every output row carries the same column count as the header row: short
// rows are padded with empty cells, so the table is always well-formed GFM.
package tables
