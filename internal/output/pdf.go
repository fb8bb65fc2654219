package output

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"

	"github.com/anilsoylu/contentforge/internal/models"
)

// PDFExporter writes a simple print layout of the generated content:
// title, optional comparison table, section headings and raw body
// text. It works from the assembled content, not from the rendered
// markup.
type PDFExporter struct {
	logger arbor.ILogger
}

// NewPDFExporter creates a PDF exporter
func NewPDFExporter(logger arbor.ILogger) *PDFExporter {
	return &PDFExporter{logger: logger}
}

// Export writes the document as a PDF to path
func (e *PDFExporter) Export(path, title string, content models.GeneratedContent, headings []string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate what they can represent
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	pdf.Ln(4)

	e.writeBody(pdf, tr, content.Intro)

	if strings.TrimSpace(content.TableMD) != "" {
		e.writeHeading(pdf, tr, "Comparison")
		pdf.SetFont("Courier", "", 8)
		for _, line := range strings.Split(strings.TrimSpace(content.TableMD), "\n") {
			pdf.MultiCell(0, 4, tr(line), "", "L", false)
		}
		pdf.Ln(3)
	}

	for i, heading := range headings {
		if i >= len(content.Sections) {
			break
		}
		e.writeHeading(pdf, tr, heading)
		e.writeBody(pdf, tr, content.Sections[i])
	}

	e.writeHeading(pdf, tr, "Conclusion")
	e.writeBody(pdf, tr, content.Conclusion)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}

	e.logger.Info().Str("file", path).Msg("PDF exported")
	return nil
}

func (e *PDFExporter) writeHeading(pdf *fpdf.Fpdf, tr func(string) string, heading string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.MultiCell(0, 7, tr(heading), "", "L", false)
	pdf.Ln(1)
}

func (e *PDFExporter) writeBody(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Arial", "", 10)
	for _, paragraph := range strings.Split(strings.TrimSpace(text), "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		pdf.MultiCell(0, 5, tr(paragraph), "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(3)
}
