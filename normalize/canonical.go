// Package normalize provides whitespace canonicalization for assembled
// Markdown text.
//
// [Canonicalize] produces the fixed normal form the converter guarantees:
// LF line endings, no trailing whitespace, collapsed space runs, and
// collapsed blank-line runs. The pass is idempotent - applying it twice
// yields the same bytes as applying it once.
package normalize

import (
	"regexp"
	"strings"
)

var interiorSpaceRE = regexp.MustCompile(`[ \t]+`)

// Canonicalize returns the canonical form of Markdown text:
//
//   - all line endings become a single \n
//   - trailing whitespace is stripped from every line
//   - runs of interior spaces and tabs collapse to one space, except in
//     table rows, fence markers, and code-like indentation
//   - runs of 3 or more consecutive blank lines collapse to exactly one
//   - leading and trailing blank lines are dropped; non-empty output ends
//     with a single newline
func Canonicalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if spacingSensitive(line) {
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}
		lines[i] = strings.TrimRight(interiorSpaceRE.ReplaceAllString(line, " "), " ")
	}

	lines = collapseBlankRuns(lines)
	lines = trimBlankEdges(lines)

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// spacingSensitive reports whether a line's internal spacing must be left
// alone: table rows, code fence markers, and code-like indentation
func spacingSensitive(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "```") {
		return true
	}
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}

// collapseBlankRuns replaces every run of 3+ blank lines with a single one
func collapseBlankRuns(lines []string) []string {
	result := make([]string, 0, len(lines))
	blanks := 0

	flushBlanks := func() {
		if blanks >= 3 {
			blanks = 1
		}
		for ; blanks > 0; blanks-- {
			result = append(result, "")
		}
	}

	for _, line := range lines {
		if line == "" {
			blanks++
			continue
		}
		flushBlanks()
		result = append(result, line)
	}
	flushBlanks()

	return result
}

// trimBlankEdges drops leading and trailing blank lines
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

var tocLeaderRE = regexp.MustCompile(`(?m)^(.+?)\s*\.{4,}\s*(\d+)\s*$`)

// CleanTOC rewrites table-of-contents dot-leader lines such as
// "Introduction .............. 5" into the list form "- Introduction (p. 5)"
func CleanTOC(text string) string {
	return tocLeaderRE.ReplaceAllString(text, "- $1 (p. $2)")
}
