package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var _ Product = (*Limited)(nil)

// Limited is a stocked product that caps how many units one purchase may
// take, such as a shipping fee.
type Limited struct {
	Standard
	maximum int
}

// NewLimited creates an active stocked product capped at maximum units per
// purchase.
func NewLimited(name string, price decimal.Decimal, quantity, maximum int) (*Limited, error) {
	if err := validate(name, price, quantity); err != nil {
		return nil, err
	}
	if maximum <= 0 {
		return nil, &ValidationError{Field: "maximum", Reason: "must be positive"}
	}
	return &Limited{
		Standard: *newStandard(name, price, quantity),
		maximum:  maximum,
	}, nil
}

// Maximum returns the per-order cap.
func (p *Limited) Maximum() int { return p.maximum }

func (p *Limited) Kind() Kind { return KindLimited }

func (p *Limited) Show() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: %d, Maximum purchase per order: %d",
		p.name, p.price, p.quantity, p.maximum) + p.promotionSuffix()
}

// Buy rejects quantities above the cap before applying the standard rules.
func (p *Limited) Buy(quantity int) (decimal.Decimal, error) {
	if quantity > p.maximum {
		return decimal.Zero, &MaximumExceededError{
			Product:   p.name,
			Maximum:   p.maximum,
			Requested: quantity,
		}
	}
	return p.Standard.Buy(quantity)
}
