package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"resumeforge/internal/errors"
)

// docxWriter drives a Word document through the shared line classification.
// Headings are emulated with bold sized runs and bullets with a bullet glyph
// prefix, which keeps the generated file free of style-part dependencies.
type docxWriter struct {
	doc *docx.Docx
}

// Heading sizes in half-points: 16pt, 14pt, 12pt.
var docxHeadingSizes = map[int]string{1: "32", 2: "28", 3: "24"}

func (w *docxWriter) Heading(level int, text string) {
	size, ok := docxHeadingSizes[level]
	if !ok {
		size = docxHeadingSizes[3]
	}
	w.doc.AddParagraph().AddText(text).Size(size).Bold()
}

func (w *docxWriter) BoldLine(text string) {
	w.doc.AddParagraph().AddText(text).Bold()
}

func (w *docxWriter) Bullet(text string) {
	w.doc.AddParagraph().AddText("• " + text)
}

func (w *docxWriter) Paragraph(text string) {
	w.doc.AddParagraph().AddText(text)
}

func (w *docxWriter) StyledParagraph(runs []Run) {
	para := w.doc.AddParagraph()
	for _, run := range runs {
		r := para.AddText(run.Text)
		if run.Bold {
			r.Bold()
		}
	}
}

func (w *docxWriter) Break() {
	// Word renders paragraph spacing itself; blank source lines add nothing.
}

func (w *docxWriter) Separator() {
	w.doc.AddParagraph().AddText(strings.Repeat("_", 50))
}

func writeDOCX(text, path string) error {
	writer := &docxWriter{doc: docx.New().WithDefaultTheme()}
	writeDocument(writer, ClassifyLines(text))

	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	if _, err := writer.doc.WriteTo(f); err != nil {
		return errors.NewExportError(errors.ErrCodeExportUnavailable,
			"DOCX backend failed to write document",
			errors.NewUnavailableError(errors.ErrCodeExportUnavailable, "docx writer error", err))
	}
	return nil
}
