package layout

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/galleydoc/galley/model"
)

// RegionType indicates whether a repeating line was found at the top or
// bottom of its pages
type RegionType int

const (
	Header RegionType = iota
	Footer
)

func (r RegionType) String() string {
	if r == Header {
		return "header"
	}
	return "footer"
}

// HeaderFooterConfig holds configuration for header/footer detection
type HeaderFooterConfig struct {
	// ScanDepth is how many text lines from the top and bottom of each page
	// are considered header/footer candidates
	// Default: 3
	ScanDepth int

	// MinOccurrenceRatio is the minimum fraction of pages a fingerprint must
	// appear on to be classified as a header/footer (0.0 to 1.0)
	// Default: 0.5 (more than half the pages)
	MinOccurrenceRatio float64

	// MinPages is the minimum page count required before detection runs.
	// Short documents carry too little signal to strip anything safely.
	// Default: 3
	MinPages int
}

// DefaultHeaderFooterConfig returns sensible default configuration
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		ScanDepth:          3,
		MinOccurrenceRatio: 0.5,
		MinPages:           3,
	}
}

// HeaderFooterDetector finds lines that repeat near-identically in the same
// vertical band across a majority of pages
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a new detector with default configuration
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: DefaultHeaderFooterConfig(),
	}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: config,
	}
}

// HeaderFooterResult contains the detection results
type HeaderFooterResult struct {
	flagged  map[model.BlockRef]RegionType
	patterns []string

	// Config used for detection
	Config HeaderFooterConfig
}

// candidate is one header/footer candidate line on one page
type candidate struct {
	ref    model.BlockRef
	region RegionType
}

// Detect scans the whole document and classifies repeating header/footer
// lines. Detection never fails; on ambiguous or insufficient input the
// result is simply empty. The conservative default is always "keep the
// line": only fingerprints that clear the majority threshold are flagged.
func (d *HeaderFooterDetector) Detect(doc *model.Document) *HeaderFooterResult {
	result := &HeaderFooterResult{
		flagged: make(map[model.BlockRef]RegionType),
		Config:  d.config,
	}

	if doc == nil || doc.PageCount() < d.config.MinPages {
		return result
	}

	// Group candidates from every page's head and tail windows by fingerprint
	groups := make(map[string][]candidate)
	pagesSeen := make(map[string]map[int]bool)

	for _, page := range doc.Pages {
		lines := page.TextLines()
		if len(lines) == 0 {
			continue
		}

		depth := d.config.ScanDepth
		if depth > len(lines) {
			depth = len(lines)
		}

		add := func(il model.IndexedLine, region RegionType) {
			fp := Fingerprint(il.Line.Content)
			if fp == "" {
				return
			}
			ref := model.BlockRef{Page: page.Number, Block: il.Index}
			// A line inside both windows on a short page counts once,
			// attributed to the window it was seen in first
			for _, c := range groups[fp] {
				if c.ref == ref {
					return
				}
			}
			groups[fp] = append(groups[fp], candidate{ref: ref, region: region})
			if pagesSeen[fp] == nil {
				pagesSeen[fp] = make(map[int]bool)
			}
			pagesSeen[fp][page.Number] = true
		}

		for _, il := range lines[:depth] {
			add(il, Header)
		}
		for _, il := range lines[len(lines)-depth:] {
			add(il, Footer)
		}
	}

	threshold := float64(doc.PageCount()) * d.config.MinOccurrenceRatio

	var patterns []string
	for fp, group := range groups {
		count := len(pagesSeen[fp])
		if count < 2 || float64(count) <= threshold {
			continue
		}
		for _, c := range group {
			result.flagged[c.ref] = c.region
		}
		patterns = append(patterns, fp)
	}

	sort.Strings(patterns)
	result.patterns = patterns

	return result
}

// Flagged reports whether the block was classified as a header or footer
func (r *HeaderFooterResult) Flagged(ref model.BlockRef) bool {
	if r == nil {
		return false
	}
	_, ok := r.flagged[ref]
	return ok
}

// Region returns the region type for a flagged block. The second return
// value is false if the block was not flagged.
func (r *HeaderFooterResult) Region(ref model.BlockRef) (RegionType, bool) {
	if r == nil {
		return Header, false
	}
	region, ok := r.flagged[ref]
	return region, ok
}

// Patterns returns the sorted fingerprints of all detected headers/footers
func (r *HeaderFooterResult) Patterns() []string {
	if r == nil {
		return nil
	}
	return r.patterns
}

// Count returns the number of flagged blocks across the document
func (r *HeaderFooterResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.flagged)
}

var digitRunRE = regexp.MustCompile(`\d+`)

// Fingerprint normalizes a line for cross-page comparison: Unicode NFKC
// fold, lower case, digit runs masked with '#' so page numbers match, and
// interior whitespace collapsed. An empty fingerprint means the line has no
// comparable content.
func Fingerprint(line string) string {
	s := norm.NFKC.String(line)
	s = strings.ToLower(strings.TrimSpace(s))
	s = digitRunRE.ReplaceAllString(s, "#")
	return strings.Join(strings.Fields(s), " ")
}
