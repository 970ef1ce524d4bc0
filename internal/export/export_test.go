package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"txt", FormatText, false},
		{"TEXT", FormatText, false},
		{"html", FormatHTML, false},
		{" pdf ", FormatPDF, false},
		{"word", FormatDOCX, false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestExportText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "# Jane Doe\nplain content"

	got, err := New(nil).Export(content, Options{Format: FormatText, Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Expected absolute path, got %s", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("Text export must be byte-for-byte, got %q", data)
	}
}

func TestExportHTMLWithMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")

	_, err := New(nil).Export("# Jane Doe\n\nSummary text", Options{Format: FormatHTML, Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	doc := string(data)
	if !strings.Contains(doc, "<!DOCTYPE html>") || !strings.Contains(doc, `<meta charset="UTF-8">`) {
		t.Errorf("Expected a standalone HTML document, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<h1") {
		t.Errorf("Expected markdown heading conversion, got:\n%s", doc)
	}
	if strings.Contains(doc, "<pre>") {
		t.Errorf("Converter available, should not use <pre> fallback:\n%s", doc)
	}
}

func TestExportHTMLDarkMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")

	_, err := New(nil).Export("# Jane", Options{Format: FormatHTML, Path: path, DarkMode: true})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "background-color: #121212") {
		t.Errorf("Expected dark CSS variant, got:\n%s", data)
	}
}

func TestExportHTMLFallbackWithoutMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")
	content := "# Jane <Doe>"

	_, err := NewWithoutMarkdown(nil).Export(content, Options{Format: FormatHTML, Path: path})
	if err != nil {
		t.Fatalf("Export must not fail without the markdown capability: %v", err)
	}

	data, _ := os.ReadFile(path)
	doc := string(data)
	if !strings.Contains(doc, "<!DOCTYPE html>") {
		t.Errorf("Fallback must still be a standalone document:\n%s", doc)
	}
	if !strings.Contains(doc, "<pre># Jane &lt;Doe&gt;</pre>") {
		t.Errorf("Expected literal text in an escaped <pre> block:\n%s", doc)
	}
}

func TestExportDOCXAndPDFWriteFiles(t *testing.T) {
	dir := t.TempDir()
	text := "# Jane Doe\n**Engineer**\n- Built things\n\n====================\nDetails with **bold** inline"

	for _, format := range []Format{FormatDOCX, FormatPDF} {
		path := filepath.Join(dir, "resume."+string(format))
		if _, err := New(nil).Export(text, Options{Format: format, Path: path}); err != nil {
			t.Fatalf("Export %s failed: %v", format, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Expected %s output file: %v", format, err)
		}
		if info.Size() == 0 {
			t.Errorf("Expected non-empty %s file", format)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New(nil).Export("text", Options{Format: Format("xlsx")})
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
}

func TestReplaceExt(t *testing.T) {
	if got := replaceExt("out/resume.pdf", "txt"); got != "out/resume.txt" {
		t.Errorf("replaceExt = %s", got)
	}
	if got := replaceExt("", "txt"); got != "" {
		t.Errorf("replaceExt on empty path = %s", got)
	}
}
