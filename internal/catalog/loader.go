package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

//go:embed data/products.csv
var defaultProductsCSV []byte

//go:embed data/suppliers.csv
var defaultSuppliersCSV []byte

// LoadStore builds the catalog from CSV reference files. Empty paths fall
// back to the embedded default dataset.
func LoadStore(productsPath, suppliersPath string) (*Store, error) {
	productsCSV, err := readOrDefault(productsPath, defaultProductsCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}
	suppliersCSV, err := readOrDefault(suppliersPath, defaultSuppliersCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers file: %w", err)
	}

	var products []Product
	if err := gocsv.UnmarshalBytes(productsCSV, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products CSV: %w", err)
	}
	if err := validateProducts(products); err != nil {
		return nil, err
	}

	var suppliers []Supplier
	if err := gocsv.UnmarshalBytes(suppliersCSV, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to parse suppliers CSV: %w", err)
	}

	return NewStore(products, suppliers), nil
}

func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}

func validateProducts(products []Product) error {
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product ID %d in catalog", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
