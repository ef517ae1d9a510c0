package galley

import (
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/galleydoc/galley/model"
)

// timestampLayout is ISO-8601 in UTC with second precision
const timestampLayout = "2006-01-02T15:04:05Z"

// renderMetadata formats conversion metadata either as the single-line
// HTML comment or as a three-dash YAML frontmatter block
func renderMetadata(meta model.ConversionMetadata, frontmatter bool) string {
	ts := meta.Converted.UTC().Format(timestampLayout)

	if frontmatter {
		return renderFrontmatter(meta, ts)
	}

	return fmt.Sprintf("<!-- source: %s | converted: %s | converter: %s -->",
		meta.Source, ts, meta.Converter)
}

// frontmatterFields fixes the YAML key order: source, converted, converter
type frontmatterFields struct {
	Source    string `yaml:"source"`
	Converted string `yaml:"converted"`
	Converter string `yaml:"converter"`
}

func renderFrontmatter(meta model.ConversionMetadata, ts string) string {
	body, err := yaml.Marshal(frontmatterFields{
		Source:    meta.Source,
		Converted: ts,
		Converter: meta.Converter,
	})
	if err != nil {
		// Three plain string fields cannot fail to marshal; keep the
		// output well-formed regardless
		return "---\n---"
	}
	return "---\n" + string(body) + "---"
}

// newMetadata builds the metadata record for one conversion run
func newMetadata(source string, converted time.Time) model.ConversionMetadata {
	return model.ConversionMetadata{
		Source:    source,
		Converted: converted,
		Converter: fmt.Sprintf("%s v%s", converterName, Version),
	}
}
