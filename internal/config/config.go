package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/swagcl/storefront/pkg/config"
	"github.com/swagcl/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Log        config.LogConfig      `koanf:"log"`
	PProf      config.PProfConfig    `koanf:"pprof"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
	Catalog    CatalogConfig         `koanf:"catalog"`
	Cart       CartConfig            `koanf:"cart"`
	Quote      QuoteConfig           `koanf:"quote"`
	Search     SearchConfig          `koanf:"search"`
}

// CatalogConfig points at the catalog reference files. Empty paths fall
// back to the embedded dataset.
type CatalogConfig struct {
	ProductsFile  string `koanf:"productsFile"`
	SuppliersFile string `koanf:"suppliersFile"`
}

func (c *CatalogConfig) Validate() error {
	return nil
}

// CartConfig configures the persisted cart slot.
type CartConfig struct {
	DBPath      string        `koanf:"dbPath"`
	OpenTimeout time.Duration `koanf:"openTimeout"`
}

func (c *CartConfig) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("cart database path is not configured")
	}
	if c.OpenTimeout <= 0 {
		return fmt.Errorf("invalid cart database open timeout: %v", c.OpenTimeout)
	}
	return nil
}

// QuoteConfig configures quote artifact export.
type QuoteConfig struct {
	ExportDir string `koanf:"exportDir"`
}

func (c *QuoteConfig) Validate() error {
	if c.ExportDir == "" {
		return fmt.Errorf("quote export directory is not configured")
	}
	return nil
}

// SearchConfig configures the text-search quiet period.
type SearchConfig struct {
	Debounce time.Duration `koanf:"debounce"`
}

func (c *SearchConfig) Validate() error {
	if c.Debounce <= 0 {
		return fmt.Errorf("invalid search debounce: %v", c.Debounce)
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Storefront ---\n")
	b.WriteString(fmt.Sprintf("  catalog.productsFile: %s\n", orEmbedded(c.Catalog.ProductsFile)))
	b.WriteString(fmt.Sprintf("  catalog.suppliersFile: %s\n", orEmbedded(c.Catalog.SuppliersFile)))
	b.WriteString(fmt.Sprintf("  cart.dbPath: %s\n", c.Cart.DBPath))
	b.WriteString(fmt.Sprintf("  cart.openTimeout: %s\n", c.Cart.OpenTimeout))
	b.WriteString(fmt.Sprintf("  quote.exportDir: %s\n", c.Quote.ExportDir))
	b.WriteString(fmt.Sprintf("  search.debounce: %s\n", c.Search.Debounce))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

func orEmbedded(path string) string {
	if path == "" {
		return "<embedded>"
	}
	return path
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Cart.Validate(); err != nil {
		return err
	}
	if err := c.Quote.Validate(); err != nil {
		return err
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return nil
}
