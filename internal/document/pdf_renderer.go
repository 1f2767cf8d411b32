package document

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer produces the flowed-text paginated format.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) Ext() string         { return "pdf" }
func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Render(title string, sections []Section) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; the translator keeps the Spanish accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, s := range sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(s.Label), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		if len(s.Items) > 0 {
			for _, item := range s.Items {
				pdf.MultiCell(0, 6, tr(item), "", "L", false)
			}
		} else {
			pdf.MultiCell(0, 6, tr(s.Text), "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
