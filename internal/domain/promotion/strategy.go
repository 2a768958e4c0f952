package promotion

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

var (
	_ Promotion = PercentDiscount{}
	_ Promotion = SecondHalfPrice{}
	_ Promotion = ThirdOneFree{}
)

// PercentDiscount takes Percent percent off the unit price.
type PercentDiscount struct {
	name    string
	percent decimal.Decimal
}

// NewPercentDiscount returns a PercentDiscount. The percent is not checked
// here; use New for validated construction.
func NewPercentDiscount(name string, percent decimal.Decimal) PercentDiscount {
	return PercentDiscount{name: name, percent: percent}
}

func (p PercentDiscount) Name() string { return p.name }

// Percent returns the configured discount percentage.
func (p PercentDiscount) Percent() decimal.Decimal { return p.percent }

// Price returns unit * (1 - percent/100) * quantity.
func (p PercentDiscount) Price(unit decimal.Decimal, quantity int) decimal.Decimal {
	factor := hundred.Sub(p.percent).Div(hundred)
	return unit.Mul(factor).Mul(qty(quantity))
}

// SecondHalfPrice pairs up units: one of each pair is charged in full and the
// other at half price. An unpaired unit is charged in full.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice returns a SecondHalfPrice promotion.
func NewSecondHalfPrice(name string) SecondHalfPrice {
	return SecondHalfPrice{name: name}
}

func (p SecondHalfPrice) Name() string { return p.name }

// Price returns ceil(q/2) full-price units plus floor(q/2) half-price units.
func (p SecondHalfPrice) Price(unit decimal.Decimal, quantity int) decimal.Decimal {
	full := (quantity + 1) / 2
	half := quantity / 2
	return unit.Mul(qty(full)).Add(unit.Mul(qty(half)).Div(two))
}

// ThirdOneFree makes one unit of every group of three free.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree returns a ThirdOneFree promotion.
func NewThirdOneFree(name string) ThirdOneFree {
	return ThirdOneFree{name: name}
}

func (p ThirdOneFree) Name() string { return p.name }

// Price charges quantity - floor(quantity/3) units.
func (p ThirdOneFree) Price(unit decimal.Decimal, quantity int) decimal.Decimal {
	paid := quantity - quantity/3
	return unit.Mul(qty(paid))
}

func qty(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
