// Package quote composes price quotes and renders them for export.
package quote

import (
	"fmt"
	"regexp"
	"time"

	"github.com/swagcl/storefront/internal/catalog"
	"github.com/swagcl/storefront/pkg/money"
)

// Request carries the contact details submitted with a quote. A quote is
// only composable when company, RUT, contact name and a plausible email
// are present; the PDF variant additionally requires a phone number.
type Request struct {
	Quantity any    `json:"quantity"`
	Company  string `json:"company" validate:"required"`
	RUT      string `json:"rut"     validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Email    string `json:"email"   validate:"required,contains=@"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

// Quote is an ephemeral, fully priced quote record. It is never persisted.
type Quote struct {
	Product   catalog.Product
	Quantity  int
	UnitPrice int64
	Total     int64
	Company   string
	RUT       string
	Contact   string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
}

// Compose builds a quote for the product: the requested quantity is clamped
// into the product's valid range and priced at the best applicable tier.
func Compose(p catalog.Product, req Request, now time.Time) Quote {
	quantity := catalog.ClampRaw(p, req.Quantity)
	unitPrice := catalog.BestUnitPrice(p, quantity)
	return Quote{
		Product:   p,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice * int64(quantity),
		Company:   req.Company,
		RUT:       req.RUT,
		Contact:   req.Contact,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedAt: now,
	}
}

// Summary renders the fixed-layout plain-text quote.
func (q Quote) Summary() string {
	notes := q.Notes
	if notes == "" {
		notes = "-"
	}
	return fmt.Sprintf(
		"Cotización SWAG\n\n"+
			"Producto: %s (SKU: %s)\n"+
			"Cantidad: %d\n"+
			"Precio unitario: %s\n"+
			"Total: %s\n\n"+
			"Empresa: %s\n"+
			"RUT: %s\n"+
			"Contacto: %s\n"+
			"Email: %s\n"+
			"Teléfono: %s\n\n"+
			"Notas: %s\n",
		q.Product.Name, q.Product.SKU,
		q.Quantity,
		money.FormatCLP(q.UnitPrice, money.DisplayCode),
		money.FormatCLP(q.Total, money.DisplayCode),
		q.Company, q.RUT, q.Contact, q.Email, q.Phone,
		notes,
	)
}

// Filename derives the deterministic export name for the given extension:
// cotizacion_<sanitized-sku>_<millisecond timestamp>.<ext>.
func (q Quote) Filename(ext string) string {
	return fmt.Sprintf("cotizacion_%s_%d.%s", sanitizeSKU(q.Product.SKU), q.CreatedAt.UnixMilli(), ext)
}

var unsafeSKUChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// sanitizeSKU strips every character outside [a-zA-Z0-9_-].
func sanitizeSKU(sku string) string {
	return unsafeSKUChars.ReplaceAllString(sku, "")
}
