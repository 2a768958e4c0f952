// Package store holds the catalog of products and executes multi-line
// orders against it.
package store

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/product"
)

// ErrUnknownProduct is returned by Order for a line item without a product.
var ErrUnknownProduct = errors.New("unknown product")

// LineItem is a single (product, quantity) pair within an order.
type LineItem struct {
	Product  product.Product
	Quantity int
}

// Store is an ordered catalog of products. It keeps no stock of its own;
// stock lives in each product.
//
// Store provides no locking. Callers must serialize access when a Store or
// its products are shared between goroutines.
type Store struct {
	products []product.Product
}

// New creates a Store listing products in the given order.
func New(products ...product.Product) *Store {
	s := &Store{products: make([]product.Product, 0, len(products))}
	for _, p := range products {
		s.Add(p)
	}
	return s
}

// Add appends p to the catalog. Products with equal names are kept as
// separate entries.
func (s *Store) Add(p product.Product) {
	s.products = append(s.products, p)
}

// Products returns every product, active or not, in catalog order.
func (s *Store) Products() []product.Product {
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ActiveProducts returns the active products in catalog order.
func (s *Store) ActiveProducts() []product.Product {
	var active []product.Product
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalQuantity returns the quantity on hand summed over all products.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// Order buys every line in sequence and returns the summed charge.
//
// Order is not transactional: each line's stock is decremented as soon as it
// succeeds. The first failing line aborts the order and its error is
// returned as is; lines bought before it stay bought. Callers that need
// all-or-nothing semantics must check stock for every line up front.
func (s *Store) Order(items []LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			return decimal.Zero, ErrUnknownProduct
		}
		charge, err := item.Product.Buy(item.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(charge)
	}
	return total, nil
}
