// Package format provides input format detection for the galley converter.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// JSON indicates an extracted-document JSON interchange file.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// MIME returns the canonical MIME type for the format.
func (f Format) MIME() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case JSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// DetectMIME determines format from a declared MIME type.
func DetectMIME(mime string) Format {
	// Parameters like "; charset=utf-8" are ignored
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case "application/pdf":
		return PDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return DOCX
	case "application/json", "text/json":
		return JSON
	default:
		return Unknown
	}
}

// DetectBytes inspects content to determine format. This is more reliable
// than extension-based detection: it checks the PDF magic, unpacks ZIP
// containers to confirm a DOCX payload, and accepts JSON documents by their
// first structural byte. Returns Unknown if nothing matches.
func DetectBytes(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF-
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return PDF
	}

	// ZIP magic (DOCX is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return detectZIPFormat(data)
	}

	if looksLikeJSON(data) {
		return JSON
	}

	return Unknown
}

// Matches reports whether content matches the format the filename claims.
// Unknown-named files never match; this is the extension/content mismatch
// gate front ends use before dispatching to an extractor.
func Matches(filename string, data []byte) bool {
	claimed := Detect(filename)
	if claimed == Unknown {
		return false
	}
	return DetectBytes(data) == claimed
}

// detectZIPFormat inspects a ZIP archive for the DOCX document part.
func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}

	return Unknown
}

// looksLikeJSON reports whether data begins with a JSON object or array.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
