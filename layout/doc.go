// Package layout provides the reconstruction heuristics that turn a stream
// of positioned text lines back into document structure.
//
// # Detectors
//
// The package includes two detectors plus the hyphenation repair helpers:
//
//   - [HeaderFooterDetector] - finds lines repeating across a majority of
//     pages in the same band and flags them for removal
//   - [Reflower] - merges hard-wrapped lines into logical paragraphs,
//     classifying headings and list items along the way
//   - [JoinBroken] - repairs words split across a line break by hyphenation
//
// # Two-phase pipeline
//
// Header/footer detection needs whole-document visibility, so it runs as a
// global analysis pass before any per-page transform:
//
//	detector := layout.NewHeaderFooterDetector()
//	result := detector.Detect(doc)
//	// ... later, per page:
//	if !result.Flagged(ref) { keep the line }
//
// Reflow then operates per page over the surviving lines:
//
//	reflower := layout.NewReflower()
//	paragraphs := reflower.Reflow(lines)
//
// # Configuration
//
// Every heuristic is a pure function over local context with explicit,
// tunable thresholds:
//
//	config := layout.DefaultReflowConfig()
//	config.SpacingFactor = 2.0
//	reflower := layout.NewReflowerWithConfig(config)
//
// Given the same input and configuration, every detector produces
// byte-identical output.
package layout
