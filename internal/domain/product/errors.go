package product

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for each failure kind. Every typed error below matches its
// sentinel through errors.Is.
var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrUnavailable       = errors.New("product unavailable")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrMaximumExceeded   = errors.New("maximum per order exceeded")
)

// ValidationError reports a rejected construction argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidProduct }

// InvalidQuantityError indicates a purchase or stock update with a quantity
// the product does not accept.
type InvalidQuantityError struct {
	Product  string
	Quantity int
	// Single is set when the product only sells one unit per purchase.
	Single bool
	// Stock is set when the quantity was a stock level, not a purchase.
	Stock bool
}

func (e *InvalidQuantityError) Error() string {
	switch {
	case e.Stock && e.Quantity < 0:
		return fmt.Sprintf("stock of product %q cannot be negative, got %d", e.Product, e.Quantity)
	case e.Stock:
		return fmt.Sprintf("non-stocked product %q cannot hold stock, got %d", e.Product, e.Quantity)
	case e.Single:
		return fmt.Sprintf("product %q can only be bought in quantities of 1, got %d", e.Product, e.Quantity)
	default:
		return fmt.Sprintf("quantity for product %q must be greater than 0, got %d", e.Product, e.Quantity)
	}
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidQuantity }

// UnavailableError indicates a purchase of an inactive product.
type UnavailableError struct {
	Product string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("product %q is no longer available", e.Product)
}

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// InsufficientStockError indicates a purchase larger than the quantity on hand.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough quantity of %q available: requested %d, have %d",
		e.Product, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// MaximumExceededError indicates a purchase above a limited product's
// per-order cap.
type MaximumExceededError struct {
	Product   string
	Maximum   int
	Requested int
}

func (e *MaximumExceededError) Error() string {
	return fmt.Sprintf("only %d of %q is allowed per order, requested %d",
		e.Maximum, e.Product, e.Requested)
}

func (e *MaximumExceededError) Is(target error) bool { return target == ErrMaximumExceeded }
