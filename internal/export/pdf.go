package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"resumeforge/internal/errors"
)

// pdfWriter drives an fpdf page through the shared line classification. The
// core fonts are cp1252 so text passes through the unicode translator before
// rendering.
type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

var pdfHeadingSizes = map[int]float64{1: 16, 2: 14, 3: 12}

func newPDFWriter() *pdfWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	return &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (w *pdfWriter) Heading(level int, text string) {
	size, ok := pdfHeadingSizes[level]
	if !ok {
		size = pdfHeadingSizes[3]
	}
	w.pdf.SetFont("Arial", "B", size)
	w.pdf.CellFormat(0, 10, w.tr(text), "", 1, "", false, 0, "")
	w.pdf.SetFont("Arial", "", 12)
}

func (w *pdfWriter) BoldLine(text string) {
	w.pdf.SetFont("Arial", "B", 12)
	w.pdf.CellFormat(0, 10, w.tr(text), "", 1, "", false, 0, "")
	w.pdf.SetFont("Arial", "", 12)
}

func (w *pdfWriter) Bullet(text string) {
	w.pdf.CellFormat(10, 10, w.tr("•"), "", 0, "", false, 0, "")
	w.pdf.CellFormat(0, 10, w.tr(text), "", 1, "", false, 0, "")
}

func (w *pdfWriter) Paragraph(text string) {
	w.pdf.MultiCell(0, 10, w.tr(text), "", "", false)
}

func (w *pdfWriter) StyledParagraph(runs []Run) {
	for _, run := range runs {
		style := ""
		if run.Bold {
			style = "B"
		}
		w.pdf.SetFont("Arial", style, 12)
		w.pdf.CellFormat(w.pdf.GetStringWidth(w.tr(run.Text))+1, 10, w.tr(run.Text), "", 0, "", false, 0, "")
	}
	w.pdf.SetFont("Arial", "", 12)
	w.pdf.Ln(10)
}

func (w *pdfWriter) Break() {
	w.pdf.Ln(5)
}

func (w *pdfWriter) Separator() {
	w.pdf.Line(10, w.pdf.GetY(), 200, w.pdf.GetY())
	w.pdf.Ln(5)
}

func writePDF(text, path string) error {
	writer := newPDFWriter()
	writeDocument(writer, ClassifyLines(text))

	if err := writer.pdf.OutputFileAndClose(path); err != nil {
		return errors.NewExportError(errors.ErrCodeExportUnavailable,
			fmt.Sprintf("PDF backend failed to write %s", path),
			errors.NewUnavailableError(errors.ErrCodeExportUnavailable, "pdf writer error", err))
	}
	return nil
}
