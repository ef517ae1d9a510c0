package galley

import "errors"

// The conversion error taxonomy. Front ends surface these as distinct
// result codes; normalization heuristics themselves never fail, so every
// error here names a condition of the input, not of the pipeline.
var (
	// ErrUnsupportedType means the input's type is not handled (unknown
	// extension, or no extractor registered for it)
	ErrUnsupportedType = errors.New("galley: unsupported input type")

	// ErrExtractionFailed means the source document was malformed and
	// could not be decoded
	ErrExtractionFailed = errors.New("galley: extraction failed")

	// ErrScannedNoText means the document is valid but holds only scanned
	// images with no extractable text. OCR is out of scope, so this is a
	// terminal, actionable condition rather than an empty success.
	ErrScannedNoText = errors.New("galley: no extractable text (scanned images only)")
)
