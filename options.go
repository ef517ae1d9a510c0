package galley

import "time"

// Options controls conversion behavior. The zero value converts with every
// feature disabled; a populated Options value must be treated as immutable
// for the duration of a batch run.
type Options struct {
	// Clean enables the normalization pipeline: header/footer removal,
	// paragraph reflow, hyphenation repair, TOC cleanup, and whitespace
	// canonicalization
	Clean bool

	// Frontmatter emits metadata as a YAML frontmatter block instead of
	// an HTML comment line
	Frontmatter bool

	// PageLabels inserts a "## Page N" heading before each page's content
	PageLabels bool

	// ExtractTables renders table grids as GFM tables; when false, table
	// blocks are skipped entirely
	ExtractTables bool

	// MaxChars truncates the final output to this many characters when
	// positive. Truncation is applied last and is reported on the Result,
	// not as an error.
	MaxChars int

	// Timestamp overrides the conversion time recorded in metadata.
	// The zero value means time.Now().UTC() - the single source of
	// non-determinism in the output.
	Timestamp time.Time
}

// DefaultOptions returns the default conversion options
func DefaultOptions() Options {
	return Options{}
}

// timestamp resolves the effective conversion time
func (o Options) timestamp() time.Time {
	if o.Timestamp.IsZero() {
		return time.Now().UTC()
	}
	return o.Timestamp.UTC()
}
