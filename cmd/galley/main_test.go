package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/galleydoc/galley"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, exitSuccess},
		{galley.ErrUnsupportedType, exitUnsupportedType},
		{galley.ErrExtractionFailed, exitExtractionFailed},
		{galley.ErrScannedNoText, exitScannedNoText},
		{fmt.Errorf("wrapped: %w", galley.ErrScannedNoText), exitScannedNoText},
		{fmt.Errorf("something else"), exitUsage},
	}

	for _, c := range cases {
		if got := exitCodeFor(c.err); got != c.want {
			t.Errorf("exitCodeFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cases := map[string]string{
		"report.pdf":          "report.md",
		"sub/dir/notes.docx":  "sub/dir/notes.md",
		"doc.extracted.json":  "doc.extracted.md",
		"noextension":         "noextension.md",
	}

	for in, want := range cases {
		if got := outputPath(in); got != want {
			t.Errorf("outputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindInputs(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.json", "b.pdf", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.docx"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	flat, err := findInputs(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(flat) != 2 {
		t.Errorf("Expected 2 top-level inputs, got %v", flat)
	}

	deep, err := findInputs(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(deep) != 3 {
		t.Errorf("Expected 3 recursive inputs, got %v", deep)
	}
}
