// Package cart implements the session shopping cart and its persistence.
package cart

import "github.com/swagcl/storefront/internal/catalog"

// Item is a product snapshot selected into the cart, with the quantity
// and prices computed at the time of the last add. TotalPrice always
// equals UnitPrice multiplied by Quantity.
type Item struct {
	catalog.Product
	Quantity   int   `json:"quantity"`
	UnitPrice  int64 `json:"unitPrice"`
	TotalPrice int64 `json:"totalPrice"`
}
