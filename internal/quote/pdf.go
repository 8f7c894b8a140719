package quote

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/swagcl/storefront/pkg/money"
)

// PDFGenerator renders a quote as a print-ready A4 document: title, the
// labeled quote fields in a fixed vertical layout, then a word-wrapped
// notes block.
type PDFGenerator struct{}

// NewPDFGenerator creates a PDF generator.
func NewPDFGenerator() *PDFGenerator { return &PDFGenerator{} }

// Generate renders the quote and returns the document bytes.
func (g *PDFGenerator) Generate(q Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotización SWAG", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Cotización SWAG"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Emitida: %s", q.CreatedAt.Format("02-01-2006 15:04"))))
	pdf.Ln(10)

	rows := []struct {
		label string
		value string
	}{
		{"Producto", fmt.Sprintf("%s (SKU: %s)", q.Product.Name, q.Product.SKU)},
		{"Cantidad", fmt.Sprintf("%d unidades", q.Quantity)},
		{"Precio unitario", money.FormatCLP(q.UnitPrice, money.DisplayCode)},
		{"Total", money.FormatCLP(q.Total, money.DisplayCode)},
		{"Empresa", q.Company},
		{"RUT", q.RUT},
		{"Contacto", q.Contact},
		{"Email", q.Email},
		{"Teléfono", q.Phone},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 7, tr(row.label+":"))
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, tr(row.value))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, tr("Notas"))
	pdf.Ln(7)
	notes := q.Notes
	if notes == "" {
		notes = "-"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(notes), "", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Generado: %s", time.Now().Format(time.RFC3339))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote PDF: %w", err)
	}
	return buf.Bytes(), nil
}
