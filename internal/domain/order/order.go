package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/bestbuy-store/internal/domain/store"
)

// Order represents a completed customer order.
type Order struct {
	ID        string
	Items     []store.LineItem
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Quantity returns the number of units across all lines.
func (o *Order) Quantity() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
