package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetect_Extensions(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.pdf", PDF},
		{"REPORT.PDF", PDF},
		{"letter.docx", DOCX},
		{"extracted.json", JSON},
		{"notes.txt", Unknown},
		{"archive.zip", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		mime string
		want Format
	}{
		{"application/pdf", PDF},
		{"application/json", JSON},
		{"application/json; charset=utf-8", JSON},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", DOCX},
		{"text/plain", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := DetectMIME(tt.mime); got != tt.want {
			t.Errorf("DetectMIME(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}

func TestDetectBytes_PDF(t *testing.T) {
	if got := DetectBytes([]byte("%PDF-1.7\n...")); got != PDF {
		t.Errorf("Expected PDF, got %v", got)
	}
}

func TestDetectBytes_JSON(t *testing.T) {
	if got := DetectBytes([]byte(`  {"source": "x", "pages": []}`)); got != JSON {
		t.Errorf("Expected JSON, got %v", got)
	}
}

func TestDetectBytes_TooShortOrUnknown(t *testing.T) {
	if got := DetectBytes([]byte("%P")); got != Unknown {
		t.Errorf("Expected Unknown for short input, got %v", got)
	}
	if got := DetectBytes([]byte("plain text content")); got != Unknown {
		t.Errorf("Expected Unknown for plain text, got %v", got)
	}
}

func TestDetectBytes_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<w:document/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if got := DetectBytes(buf.Bytes()); got != DOCX {
		t.Errorf("Expected DOCX, got %v", got)
	}
}

func TestDetectBytes_PlainZIPIsNotDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("readme.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if got := DetectBytes(buf.Bytes()); got != Unknown {
		t.Errorf("Expected Unknown for plain ZIP, got %v", got)
	}
}

func TestMatches(t *testing.T) {
	pdfData := []byte("%PDF-1.4 content")

	if !Matches("doc.pdf", pdfData) {
		t.Error("Expected PDF data to match .pdf name")
	}
	if Matches("doc.docx", pdfData) {
		t.Error("Expected PDF data not to match .docx name")
	}
	if Matches("doc.weird", pdfData) {
		t.Error("Expected unknown extension never to match")
	}
}

func TestFormat_Strings(t *testing.T) {
	if PDF.String() != "PDF" || PDF.Extension() != ".pdf" || PDF.MIME() != "application/pdf" {
		t.Error("Unexpected PDF format metadata")
	}
	if Unknown.String() != "Unknown" || Unknown.Extension() != "" {
		t.Error("Unexpected Unknown format metadata")
	}
	if JSON.MIME() != "application/json" {
		t.Error("Unexpected JSON MIME")
	}
}
