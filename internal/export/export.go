// Package export writes rendered resume text to disk in plain text, HTML,
// DOCX, or PDF form. HTML and the binary formats are optional capabilities;
// when one is missing the exporter degrades instead of failing the operation.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resumeforge/internal/errors"
)

// Format names a supported export format.
type Format string

const (
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatHTML, FormatDOCX, FormatPDF}
}

// ParseFormat normalizes a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text", "plain":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "docx", "doc", "word":
		return FormatDOCX, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("unsupported export format: %s", s), nil)
	}
}

// Options controls a single export.
type Options struct {
	Format   Format
	Path     string
	DarkMode bool
}

// Exporter dispatches resume text to a format backend. markdown is an
// optional capability; when nil the HTML backend wraps the text in a <pre>
// block instead of converting it.
type Exporter struct {
	markdown MarkdownConverter
	logger   *errors.Logger
}

// New returns an Exporter with the markdown capability enabled.
func New(logger *errors.Logger) *Exporter {
	return &Exporter{markdown: newGoldmarkConverter(), logger: logger}
}

// NewWithoutMarkdown returns an Exporter with no markdown converter. HTML
// export falls back to the <pre> shell.
func NewWithoutMarkdown(logger *errors.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes text to opts.Path in opts.Format and returns the absolute
// path of the written file. A missing backend surfaces as an export error
// whose cause is Unavailable; callers are expected to retry as plain text.
func (e *Exporter) Export(text string, opts Options) (string, error) {
	path := opts.Path
	if path == "" {
		path = "resume." + string(opts.Format)
	}

	var err error
	switch opts.Format {
	case FormatText:
		err = writeText(text, path)
	case FormatHTML:
		err = e.writeHTML(text, path, opts.DarkMode)
	case FormatDOCX:
		err = writeDOCX(text, path)
	case FormatPDF:
		err = writePDF(text, path)
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("unsupported export format: %s", opts.Format), nil)
	}
	if err != nil {
		return "", err
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return path, nil
	}
	return abs, nil
}

// ExportWithFallback behaves like Export but degrades to plain text when the
// requested format's backend is unavailable, mirroring the contract that no
// export failure is fatal. The returned format tells the caller what was
// actually written.
func (e *Exporter) ExportWithFallback(text string, opts Options) (string, Format, error) {
	path, err := e.Export(text, opts)
	if err == nil {
		return path, opts.Format, nil
	}
	if !errors.IsUnavailable(err) {
		return "", opts.Format, err
	}

	if e.logger != nil {
		e.logger.Warn("export backend unavailable, falling back to plain text",
			"format", string(opts.Format))
	}
	fallback := Options{Format: FormatText, Path: replaceExt(opts.Path, "txt")}
	path, err = e.Export(text, fallback)
	return path, FormatText, err
}

func replaceExt(path, ext string) string {
	if path == "" {
		return ""
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// writeText is the byte-for-byte plain text backend.
func writeText(text, path string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
