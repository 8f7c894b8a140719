// Package rest provides the HTTP handlers of the storefront.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/swagcl/storefront/internal/cart"
	"github.com/swagcl/storefront/internal/catalog"
	"github.com/swagcl/storefront/internal/quote"
	"github.com/swagcl/storefront/pkg/money"
	"github.com/swagcl/storefront/pkg/web"
)

type Handler struct {
	catalog   *catalog.Store
	cart      *cart.Store
	view      *catalog.View
	pdf       *quote.PDFGenerator
	exporter  quote.Exporter
	clipboard quote.Clipboard
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates the storefront HTTP API over the given collaborators.
func NewHandler(
	catalogStore *catalog.Store,
	cartStore *cart.Store,
	view *catalog.View,
	exporter quote.Exporter,
	clipboard quote.Clipboard,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:   catalogStore,
		cart:      cartStore,
		view:      view,
		pdf:       quote.NewPDFGenerator(),
		exporter:  exporter,
		clipboard: clipboard,
		validate:  validator.New(),
		logger:    logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes of the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.FindProducts)
		r.Get("/products/{id}", h.FindProductByID)
		r.Get("/products/{id}/price", h.PriceProduct)
		r.Get("/categories", h.ListCategories)
		r.Get("/suppliers", h.ListSuppliers)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Delete("/items/{id}", h.RemoveCartItem)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Post("/", h.CreateQuote)
			r.Post("/export", h.ExportQuote)
			r.Post("/clipboard", h.CopyQuote)
		})

		r.Route("/session", func(r chi.Router) {
			r.Put("/filters", h.UpdateSessionFilters)
			r.Get("/products", h.SessionProducts)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// FindProducts runs the filter/sort pipeline over the catalog.
func (h *Handler) FindProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	spec := filterSpecFromQuery(r.URL.Query())
	mLogger.DebugContext(r.Context(), "Received request to list products", "spec", fmt.Sprintf("%+v", spec))
	list := catalog.Apply(h.catalog.All(), spec)
	mLogger.DebugContext(r.Context(), "Successfully filtered products", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindProductByID retrieves a product by its ID.
func (h *Handler) FindProductByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	found, ok := h.findProduct(w, r, mLogger, id)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// priceResponse carries the priced quantity for a product.
type priceResponse struct {
	ProductID         int64          `json:"productId"`
	Quantity          int            `json:"quantity"`
	Bounds            catalog.Bounds `json:"bounds"`
	UnitPrice         int64          `json:"unitPrice"`
	TotalPrice        int64          `json:"totalPrice"`
	UnitPriceDisplay  string         `json:"unitPriceDisplay"`
	TotalPriceDisplay string         `json:"totalPriceDisplay"`
}

// PriceProduct resolves the unit price for a requested quantity. Invalid or
// out-of-range quantities are silently clamped, not rejected.
func (h *Handler) PriceProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	found, ok := h.findProduct(w, r, mLogger, id)
	if !ok {
		return
	}

	quantity := catalog.ClampRaw(*found, r.URL.Query().Get("quantity"))
	unitPrice := catalog.BestUnitPrice(*found, quantity)
	total := unitPrice * int64(quantity)
	mLogger.DebugContext(r.Context(), "Priced product", "ID", id, "quantity", quantity, "unitPrice", unitPrice)

	web.RespondJSON(w, mLogger, http.StatusOK, priceResponse{
		ProductID:         id,
		Quantity:          quantity,
		Bounds:            catalog.BoundsFor(*found),
		UnitPrice:         unitPrice,
		TotalPrice:        total,
		UnitPriceDisplay:  money.FormatCLP(unitPrice, money.DisplayCode),
		TotalPriceDisplay: money.FormatCLP(total, money.DisplayCode),
	})
}

// ListCategories returns the distinct catalog categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.Categories())
}

// ListSuppliers returns the supplier reference list.
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.catalog.Suppliers())
}

// cartResponse is the cart view: items in display order plus the derived count.
type cartResponse struct {
	Items []cart.Item `json:"items"`
	Count int         `json:"count"`
}

// addItemRequest asks for a product to be added to the cart. Quantity is
// loosely typed on purpose: invalid values clamp to the product's minimum.
type addItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  any   `json:"quantity"`
}

// GetCart returns the cart items and derived count.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, cartResponse{
		Items: h.cart.Items(),
		Count: h.cart.Count(),
	})
}

// AddCartItem adds a product to the cart, merging with any existing item.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, req) {
		return
	}
	found, ok := h.findProduct(w, r, mLogger, req.ProductID)
	if !ok {
		return
	}

	quantity := catalog.ClampRaw(*found, req.Quantity)
	item := h.cart.Add(*found, quantity)
	mLogger.InfoContext(r.Context(), "Product added to cart", "ID", found.ID, "quantity", item.Quantity)
	web.RespondJSON(w, mLogger, http.StatusCreated, cartResponse{
		Items: h.cart.Items(),
		Count: h.cart.Count(),
	})
}

// RemoveCartItem deletes one cart item; removing an absent item succeeds.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	h.cart.Remove(id)
	mLogger.InfoContext(r.Context(), "Cart item removed", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	h.cart.Clear()
	mLogger.InfoContext(r.Context(), "Cart cleared")
	w.WriteHeader(http.StatusNoContent)
}

// quoteDto is the quote submission: product reference plus contact fields.
type quoteDto struct {
	ProductID int64 `json:"productId" validate:"required"`
	quote.Request
}

// quoteResponse returns the composed quote summary and amounts.
type quoteResponse struct {
	Summary           string `json:"summary"`
	Quantity          int    `json:"quantity"`
	UnitPrice         int64  `json:"unitPrice"`
	TotalPrice        int64  `json:"totalPrice"`
	UnitPriceDisplay  string `json:"unitPriceDisplay"`
	TotalPriceDisplay string `json:"totalPriceDisplay"`
}

// CreateQuote validates the contact data and composes the quote summary.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	composed, ok := h.composeQuote(w, r, mLogger)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, quoteResponse{
		Summary:           composed.Summary(),
		Quantity:          composed.Quantity,
		UnitPrice:         composed.UnitPrice,
		TotalPrice:        composed.Total,
		UnitPriceDisplay:  money.FormatCLP(composed.UnitPrice, money.DisplayCode),
		TotalPriceDisplay: money.FormatCLP(composed.Total, money.DisplayCode),
	})
}

// ExportQuote renders the quote as a text or PDF artifact, archives it via
// the exporter port and returns it as a download.
func (h *Handler) ExportQuote(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}
	if format != "txt" && format != "pdf" {
		web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Unsupported export format: %s", format))
		return
	}

	composed, ok := h.composeQuote(w, r, mLogger)
	if !ok {
		return
	}

	var data []byte
	contentType := "text/plain; charset=utf-8"
	if format == "pdf" {
		// the document variant additionally needs a phone number
		if composed.Phone == "" {
			web.RespondJSON(w, mLogger, http.StatusBadRequest,
				map[string]any{"validation_errors": map[string]string{"Phone": "failed on rule: required"}})
			return
		}
		rendered, err := h.pdf.Generate(composed)
		if err != nil {
			mLogger.ErrorContext(r.Context(), "Error rendering quote PDF", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to render quote document")
			return
		}
		data = rendered
		contentType = "application/pdf"
	} else {
		data = []byte(composed.Summary())
	}

	filename := composed.Filename(format)
	if err := h.exporter.Export(data, filename); err != nil {
		// archiving is best-effort; the download below still succeeds
		mLogger.WarnContext(r.Context(), "Failed to archive quote artifact", "filename", filename, "error", err)
	}
	mLogger.InfoContext(r.Context(), "Quote exported", "filename", filename, "format", format)
	web.RespondAttachment(w, contentType, filename, data)
}

// CopyQuote writes the quote summary to the clipboard port. Failure is
// reported to the caller, never thrown.
func (h *Handler) CopyQuote(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	composed, ok := h.composeQuote(w, r, mLogger)
	if !ok {
		return
	}
	if err := h.clipboard.Write(composed.Summary()); err != nil {
		mLogger.WarnContext(r.Context(), "Clipboard write failed", "error", err)
		web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
			"copied":  false,
			"message": "No se pudo copiar. Intenta exportar el archivo.",
		})
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]any{
		"copied":  true,
		"message": "Resumen copiado al portapapeles",
	})
}

// sessionFilters mirrors the catalog view criteria.
type sessionFilters struct {
	Category string `json:"category"`
	Supplier string `json:"supplier"`
	Query    string `json:"q"`
	Sort     string `json:"sort"`
	PriceMin *int64 `json:"priceMin"`
	PriceMax *int64 `json:"priceMax"`
}

// UpdateSessionFilters applies the submitted criteria to the catalog view.
// Query changes are debounced, so they take effect after the quiet period.
func (h *Handler) UpdateSessionFilters(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req sessionFilters
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	current := h.view.Spec()
	if req.Category != current.Category {
		h.view.SetCategory(req.Category)
	}
	if req.Supplier != current.Supplier {
		h.view.SetSupplier(req.Supplier)
	}
	if req.Sort != current.Sort {
		h.view.SetSort(req.Sort)
	}
	if !int64PtrEqual(req.PriceMin, current.PriceMin) || !int64PtrEqual(req.PriceMax, current.PriceMax) {
		h.view.SetPriceRange(req.PriceMin, req.PriceMax)
	}
	if req.Query != current.Query {
		h.view.SetQuery(req.Query)
	}
	mLogger.DebugContext(r.Context(), "Session filters updated")
	w.WriteHeader(http.StatusAccepted)
}

// SessionProducts returns the catalog view result for the effective criteria.
func (h *Handler) SessionProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.view.Products())
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// composeQuote decodes, validates and prices a quote submission.
func (h *Handler) composeQuote(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger) (quote.Quote, bool) {
	var dto quoteDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return quote.Quote{}, false
	}
	if !h.validateStruct(w, r, mLogger, dto) {
		return quote.Quote{}, false
	}
	found, ok := h.findProduct(w, r, mLogger, dto.ProductID)
	if !ok {
		return quote.Quote{}, false
	}
	return quote.Compose(*found, dto.Request, time.Now()), true
}

// findProduct resolves a product or responds with a not-found state.
func (h *Handler) findProduct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, id int64) (*catalog.Product, bool) {
	found, err := h.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
			return nil, false
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %d", id))
		return nil, false
	}
	return found, true
}

// validateStruct runs the validator and renders field errors the way the
// rest of the API does.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, payload any) bool {
	if err := h.validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func filterSpecFromQuery(values url.Values) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		Category: values.Get("category"),
		Supplier: values.Get("supplier"),
		Query:    values.Get("q"),
		Sort:     values.Get("sort"),
	}
	if v, err := strconv.ParseInt(values.Get("price_min"), 10, 64); err == nil {
		spec.PriceMin = &v
	}
	if v, err := strconv.ParseInt(values.Get("price_max"), 10, 64); err == nil {
		spec.PriceMax = &v
	}
	return spec
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
