// Package extract defines the contract between external document decoders
// and the galley normalization pipeline.
//
// Binary-format parsing (PDF, DOCX) lives outside this module. A decoder
// implements [Extractor] and produces the model.Document token stream; the
// package ships one built-in extractor, the document-JSON interchange codec
// in [DocumentCodec], which is also the wire shape decoders use to hand
// documents to the galley CLI.
//
// Extraction failures are reported as [*Error] with an explicit [ErrorKind];
// errors.Is works against the galley root sentinels across package
// boundaries.
package extract

import (
	"fmt"

	"github.com/galleydoc/galley"
	"github.com/galleydoc/galley/format"
	"github.com/galleydoc/galley/model"
)

// Extractor turns raw document bytes into the token model. Implementations
// must set Page.Scanned for image-only pages rather than returning empty
// text, so the pipeline can tell "no extractable text" from "empty page".
type Extractor interface {
	Extract(data []byte, declaredMIME string) (*model.Document, error)
}

// ErrorKind classifies extraction failures
type ErrorKind int

const (
	// KindUnsupported means no decoder handles the input type
	KindUnsupported ErrorKind = iota
	// KindCorrupt means the input claimed a supported type but could not
	// be decoded
	KindCorrupt
	// KindScannedNoText means the document is valid but contains only
	// scanned images with no extractable text
	KindScannedNoText
)

func (k ErrorKind) String() string {
	switch k {
	case KindCorrupt:
		return "corrupt"
	case KindScannedNoText:
		return "scanned-no-text"
	default:
		return "unsupported"
	}
}

// Error is an extraction failure with its classification and, where known,
// the underlying cause
type Error struct {
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract: %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("extract: %s", e.Kind)
}

// Unwrap exposes both the matching galley sentinel and the underlying
// cause, so errors.Is works against either
func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// sentinel maps the kind onto the galley error taxonomy
func (e *Error) sentinel() error {
	switch e.Kind {
	case KindCorrupt:
		return galley.ErrExtractionFailed
	case KindScannedNoText:
		return galley.ErrScannedNoText
	default:
		return galley.ErrUnsupportedType
	}
}

// Registry maps input formats to the extractor that decodes them. A nil
// Registry behaves like an empty one.
type Registry struct {
	extractors map[format.Format]Extractor
}

// NewRegistry creates a registry with the built-in document-JSON extractor
// already installed.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[format.Format]Extractor)}
	r.Register(format.JSON, &DocumentCodec{})
	return r
}

// Register installs an extractor for a format, replacing any previous one
func (r *Registry) Register(f format.Format, e Extractor) {
	r.extractors[f] = e
}

// Lookup returns the extractor for a format, or nil if none is registered
func (r *Registry) Lookup(f format.Format) Extractor {
	if r == nil {
		return nil
	}
	return r.extractors[f]
}

// Extract detects the input format from content and dispatches to the
// registered extractor. Inputs nothing is registered for yield a
// KindUnsupported error naming the detected format.
func (r *Registry) Extract(data []byte, declaredMIME string) (*model.Document, error) {
	f := format.DetectBytes(data)
	if f == format.Unknown {
		f = format.DetectMIME(declaredMIME)
	}

	e := r.Lookup(f)
	if e == nil {
		return nil, &Error{
			Kind:  KindUnsupported,
			Cause: fmt.Errorf("no extractor registered for %s input", f),
		}
	}

	return e.Extract(data, declaredMIME)
}
