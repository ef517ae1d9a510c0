package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/galleydoc/galley/model"
)

// ParagraphStyle represents the detected style of a reflowed paragraph
type ParagraphStyle int

const (
	StyleNormal ParagraphStyle = iota
	StyleHeading
	StyleListItem
)

// String returns a string representation of the paragraph style
func (s ParagraphStyle) String() string {
	switch s {
	case StyleHeading:
		return "heading"
	case StyleListItem:
		return "list-item"
	default:
		return "normal"
	}
}

// Paragraph is the output of reflow: a run of merged text lines
type Paragraph struct {
	// Text is the assembled paragraph text
	Text string

	// Style is the detected paragraph style
	Style ParagraphStyle
}

// ReflowConfig holds configuration for paragraph reflow
type ReflowConfig struct {
	// SpacingFactor is the multiplier over the page's median line gap above
	// which a vertical gap is treated as a paragraph break
	// Default: 1.8
	SpacingFactor float64

	// IndentThreshold is the horizontal distance in points from the dominant
	// left margin within which a line still counts as margin-aligned
	// Default: 12 points
	IndentThreshold float64

	// HeadingFontRatio is the font size ratio over the page average above
	// which a line is treated as a heading
	// Default: 1.2 (20% larger)
	HeadingFontRatio float64
}

// DefaultReflowConfig returns sensible default configuration
func DefaultReflowConfig() ReflowConfig {
	return ReflowConfig{
		SpacingFactor:    1.8,
		IndentThreshold:  12.0,
		HeadingFontRatio: 1.2,
	}
}

// Reflower merges consecutive text lines into logical paragraphs,
// distinguishing hard line wraps from real paragraph breaks
type Reflower struct {
	config ReflowConfig
}

// NewReflower creates a reflower with default configuration
func NewReflower() *Reflower {
	return &Reflower{
		config: DefaultReflowConfig(),
	}
}

// NewReflowerWithConfig creates a reflower with custom configuration
func NewReflowerWithConfig(config ReflowConfig) *Reflower {
	return &Reflower{
		config: config,
	}
}

var listMarkerRE = regexp.MustCompile(`^([-*•◦‣►]|\d+[.)])\s+`)

// terminal punctuation that marks a likely sentence/paragraph end
const terminalPunctuation = `.?!:"'`

// Reflow merges a page's text lines into paragraphs. The input order is
// reading order; the caller is responsible for excluding header/footer
// lines. Output is deterministic for a fixed input and configuration.
func (r *Reflower) Reflow(lines []model.TextLine) []Paragraph {
	if len(lines) == 0 {
		return nil
	}

	gapThreshold := r.gapThreshold(lines)
	avgFontSize := averageFontSize(lines)
	leftMargin := dominantIndent(lines)

	var paragraphs []Paragraph
	var current []string
	var currentStyle ParagraphStyle

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, Paragraph{
			Text:  joinLines(current),
			Style: currentStyle,
		})
		current = nil
	}

	var prev model.TextLine
	for _, line := range lines {
		style := r.classify(line, avgFontSize)

		if len(current) == 0 {
			current = append(current, line.Content)
			currentStyle = style
			prev = line
			continue
		}

		breakHere := false

		// (a) vertical gap beyond the dynamic threshold
		if gapThreshold > 0 && line.Y-prev.Y > gapThreshold {
			breakHere = true
		}

		// (b) terminal punctuation followed by a fresh sentence start
		if endsTerminal(prev.Content) && r.startsFresh(line, leftMargin) {
			breakHere = true
		}

		// (c) headings never merge into surrounding prose, in either direction
		if style == StyleHeading || currentStyle == StyleHeading {
			breakHere = true
		}

		// A list marker starts a new item rather than continuing the
		// previous line
		if style == StyleListItem {
			breakHere = true
		}

		if breakHere {
			flush()
			currentStyle = style
		}
		current = append(current, line.Content)
		prev = line
	}
	flush()

	return paragraphs
}

// classify determines the style of a single line from its metadata and text
func (r *Reflower) classify(line model.TextLine, avgFontSize float64) ParagraphStyle {
	if listMarkerRE.MatchString(strings.TrimSpace(line.Content)) {
		return StyleListItem
	}
	if avgFontSize > 0 && line.FontSize > avgFontSize*r.config.HeadingFontRatio {
		return StyleHeading
	}
	if line.Bold && !endsTerminal(line.Content) && len(strings.Fields(line.Content)) <= 12 {
		// Short bold lines without sentence punctuation read as headings
		return StyleHeading
	}
	return StyleNormal
}

// startsFresh reports whether a line looks like the start of a new
// paragraph: a capital first letter, or alignment at the dominant margin
func (r *Reflower) startsFresh(line model.TextLine, leftMargin float64) bool {
	trimmed := strings.TrimSpace(line.Content)
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	if unicode.IsUpper(first) {
		return true
	}
	return absFloat(line.Indent-leftMargin) <= r.config.IndentThreshold
}

// gapThreshold derives the paragraph-break gap from the median line gap on
// the page. Returns 0 when the page has too few lines to estimate.
func (r *Reflower) gapThreshold(lines []model.TextLine) float64 {
	if len(lines) < 3 {
		return 0
	}

	gaps := make([]float64, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		gap := lines[i].Y - lines[i-1].Y
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) == 0 {
		return 0
	}

	sort.Float64s(gaps)
	median := gaps[len(gaps)/2]
	if len(gaps)%2 == 0 {
		median = (gaps[len(gaps)/2-1] + gaps[len(gaps)/2]) / 2
	}

	return median * r.config.SpacingFactor
}

// endsTerminal reports whether a line ends with terminal punctuation
func endsTerminal(s string) bool {
	trimmed := strings.TrimRight(s, " \t")
	if trimmed == "" {
		return false
	}
	return strings.ContainsRune(terminalPunctuation, rune(trimmed[len(trimmed)-1]))
}

// averageFontSize computes the mean font size over lines that carry one
func averageFontSize(lines []model.TextLine) float64 {
	total, count := 0.0, 0
	for _, l := range lines {
		if l.FontSize > 0 {
			total += l.FontSize
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// dominantIndent finds the most common left indentation, bucketed to 5pt
func dominantIndent(lines []model.TextLine) float64 {
	if len(lines) == 0 {
		return 0
	}

	const tolerance = 5.0
	counts := make(map[int]int)
	for _, l := range lines {
		counts[int(l.Indent/tolerance)]++
	}

	maxCount, best := 0, 0
	for bucket, count := range counts {
		if count > maxCount || (count == maxCount && bucket < best) {
			maxCount = count
			best = bucket
		}
	}

	return float64(best) * tolerance
}

// joinLines assembles paragraph text, repairing hyphenation at each join
// point and otherwise separating lines with a single space
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	text := strings.TrimSpace(lines[0])
	for _, next := range lines[1:] {
		text = JoinBroken(text, strings.TrimSpace(next))
	}
	return text
}

// absFloat returns the absolute value of a float64
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
