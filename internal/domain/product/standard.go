package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/promotion"
)

var _ Product = (*Standard)(nil)

// Standard is a stocked product. It deactivates itself when its stock
// reaches zero.
type Standard struct {
	name      string
	price     decimal.Decimal
	quantity  int
	active    bool
	promotion promotion.Promotion
}

// NewStandard creates an active stocked product.
func NewStandard(name string, price decimal.Decimal, quantity int) (*Standard, error) {
	if err := validate(name, price, quantity); err != nil {
		return nil, err
	}
	return newStandard(name, price, quantity), nil
}

func newStandard(name string, price decimal.Decimal, quantity int) *Standard {
	return &Standard{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   true,
	}
}

func (p *Standard) Name() string           { return p.name }
func (p *Standard) Price() decimal.Decimal { return p.price }
func (p *Standard) Quantity() int          { return p.quantity }
func (p *Standard) IsActive() bool         { return p.active }
func (p *Standard) Activate()              { p.active = true }
func (p *Standard) Deactivate()            { p.active = false }
func (p *Standard) Kind() Kind             { return KindStandard }
func (p *Standard) sealed()                {}

func (p *Standard) Promotion() promotion.Promotion      { return p.promotion }
func (p *Standard) SetPromotion(pr promotion.Promotion) { p.promotion = pr }

// SetQuantity replaces the stock level. Setting it to zero deactivates the
// product.
func (p *Standard) SetQuantity(quantity int) error {
	if quantity < 0 {
		return &InvalidQuantityError{Product: p.name, Quantity: quantity, Stock: true}
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return nil
}

func (p *Standard) Show() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: %d", p.name, p.price, p.quantity) + p.promotionSuffix()
}

// Buy checks, in order, that the product is active, that quantity is
// positive and that enough stock is on hand, then charges and decrements
// the stock.
func (p *Standard) Buy(quantity int) (decimal.Decimal, error) {
	if !p.active {
		return decimal.Zero, &UnavailableError{Product: p.name}
	}
	if quantity <= 0 {
		return decimal.Zero, &InvalidQuantityError{Product: p.name, Quantity: quantity}
	}
	if quantity > p.quantity {
		return decimal.Zero, &InsufficientStockError{
			Product:   p.name,
			Requested: quantity,
			Available: p.quantity,
		}
	}

	total := p.charge(quantity)
	if err := p.SetQuantity(p.quantity - quantity); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// charge prices quantity units through the promotion, if any.
func (p *Standard) charge(quantity int) decimal.Decimal {
	if p.promotion != nil {
		return p.promotion.Price(p.price, quantity)
	}
	return p.price.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p *Standard) promotionSuffix() string {
	if p.promotion == nil {
		return ""
	}
	return ", Promotion: " + p.promotion.Name()
}
