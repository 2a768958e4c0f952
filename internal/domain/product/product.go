package product

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/promotion"
)

// Kind identifies a product variant.
type Kind string

const (
	// KindStandard is a stocked product with no extra purchase rules.
	KindStandard Kind = "standard"
	// KindUnlimited is a non-stocked product sold one unit at a time.
	KindUnlimited Kind = "unlimited"
	// KindLimited is a stocked product with a per-order maximum.
	KindLimited Kind = "limited"
)

// Product is a catalog entry. The set of implementations is closed:
// *Standard, *Unlimited and *Limited.
//
// Products are not safe for concurrent use; callers sharing a product across
// goroutines must serialize access.
type Product interface {
	Name() string
	Price() decimal.Decimal
	Quantity() int
	SetQuantity(quantity int) error

	IsActive() bool
	Activate()
	Deactivate()

	Promotion() promotion.Promotion
	// SetPromotion attaches p, replacing any previous promotion. A nil p
	// removes the promotion.
	SetPromotion(p promotion.Promotion)

	Kind() Kind
	// Show returns a one-line description for listings.
	Show() string
	// Buy purchases quantity units and returns the charged total.
	Buy(quantity int) (decimal.Decimal, error)

	sealed()
}

// validate checks the construction arguments shared by every variant.
func validate(name string, price decimal.Decimal, quantity int) error {
	switch {
	case name == "":
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	case price.IsNegative():
		return &ValidationError{Field: "price", Reason: "must be non-negative"}
	case quantity < 0:
		return &ValidationError{Field: "quantity", Reason: "must be non-negative"}
	}
	return nil
}
