package promotion

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Type enumerates the supported promotion strategies.
type Type string

const (
	// TypePercent takes a fixed percentage off every unit.
	TypePercent Type = "percent"
	// TypeSecondHalfPrice charges half price for every second unit.
	TypeSecondHalfPrice Type = "second_half_price"
	// TypeThirdOneFree makes every third unit free.
	TypeThirdOneFree Type = "third_one_free"
)

var (
	// ErrUnsupportedType is returned by New for an unknown promotion type.
	ErrUnsupportedType = errors.New("unsupported promotion type")
	// ErrInvalidPercent is returned by New when a percent discount is outside [0, 100].
	ErrInvalidPercent = errors.New("percent must be between 0 and 100")
)

// Promotion is a named pricing strategy. Implementations hold no mutable
// state and may be shared by any number of products.
type Promotion interface {
	// Name returns the display name of the promotion.
	Name() string
	// Price returns the charged total for quantity units at the given unit price.
	Price(unit decimal.Decimal, quantity int) decimal.Decimal
}

// Rule describes a promotion in data form, as found in inventory documents.
type Rule struct {
	Name    string
	Type    Type
	Percent decimal.Decimal
}

// New builds the promotion described by rule.
func New(rule Rule) (Promotion, error) {
	switch rule.Type {
	case TypePercent:
		if rule.Percent.IsNegative() || rule.Percent.GreaterThan(hundred) {
			return nil, errors.Wrapf(ErrInvalidPercent, "promotion %q: got %s", rule.Name, rule.Percent)
		}
		return NewPercentDiscount(rule.Name, rule.Percent), nil
	case TypeSecondHalfPrice:
		return NewSecondHalfPrice(rule.Name), nil
	case TypeThirdOneFree:
		return NewThirdOneFree(rule.Name), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%q", rule.Type)
	}
}
