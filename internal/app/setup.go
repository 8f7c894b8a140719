// Package app contains the application setup for the storefront service.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/swagcl/storefront/internal/cart"
	"github.com/swagcl/storefront/internal/catalog"
	"github.com/swagcl/storefront/internal/config"
	"github.com/swagcl/storefront/internal/quote"
	"github.com/swagcl/storefront/internal/transport/rest"
	"github.com/swagcl/storefront/pkg/server"
)

type Dependencies struct {
	Catalog   *catalog.Store
	Cart      *cart.Store
	View      *catalog.View
	Exporter  quote.Exporter
	Clipboard *quote.SessionClipboard
	Logger    *slog.Logger
}

// SetupDependencies loads the catalog, rehydrates the cart from the bolt
// slot and wires the quote ports.
func SetupDependencies(db *bolt.DB, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	catalogStore, err := catalog.LoadStore(cfg.Catalog.ProductsFile, cfg.Catalog.SuppliersFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cartStorage, err := cart.NewBoltStorage(db)
	if err != nil {
		return nil, fmt.Errorf("failed to set up cart storage: %w", err)
	}

	return &Dependencies{
		Catalog:   catalogStore,
		Cart:      cart.NewStore(cartStorage, logger),
		View:      catalog.NewView(catalogStore, cfg.Search.Debounce, nil),
		Exporter:  quote.NewDirExporter(cfg.Quote.ExportDir),
		Clipboard: quote.NewSessionClipboard(),
		Logger:    logger,
	}, nil
}

// SetupHttpHandler initializes the HTTP routes for the storefront.
// Used by tests to exercise the API without a listening server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Catalog, deps.Cart, deps.View, deps.Exporter, deps.Clipboard, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
