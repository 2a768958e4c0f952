package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var _ Product = (*Unlimited)(nil)

// Unlimited is a non-stocked product, such as a software license. Its
// quantity is always zero and says nothing about availability.
type Unlimited struct {
	Standard
}

// NewUnlimited creates an active non-stocked product.
func NewUnlimited(name string, price decimal.Decimal) (*Unlimited, error) {
	if err := validate(name, price, 0); err != nil {
		return nil, err
	}
	return &Unlimited{Standard: *newStandard(name, price, 0)}, nil
}

func (p *Unlimited) Kind() Kind { return KindUnlimited }

// SetQuantity only accepts zero.
func (p *Unlimited) SetQuantity(quantity int) error {
	if quantity != 0 {
		return &InvalidQuantityError{Product: p.name, Quantity: quantity, Stock: true}
	}
	return nil
}

func (p *Unlimited) Show() string {
	return fmt.Sprintf("%s, Price: %s, (Non-stocked, no quantity)", p.name, p.price) + p.promotionSuffix()
}

// Buy sells exactly one unit at the unit price. Stock, the active flag and
// any attached promotion are not consulted.
func (p *Unlimited) Buy(quantity int) (decimal.Decimal, error) {
	if quantity != 1 {
		return decimal.Zero, &InvalidQuantityError{Product: p.name, Quantity: quantity, Single: true}
	}
	return p.price, nil
}
