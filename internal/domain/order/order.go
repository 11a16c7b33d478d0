package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
)

// Order is a completed checkout. It is immutable once created: the ledger is
// append-only and entries are never modified or removed. Items is an
// independent snapshot taken at checkout time, unaffected by later cart
// mutation.
type Order struct {
	ID              string
	UserID          string
	Items           []cart.LineItem
	Total           decimal.Decimal
	DiscountApplied bool
	DiscountCode    string
	CreatedAt       time.Time
}

// Stats are the running totals derived from completed orders. Every field is
// monotonically non-decreasing and mutated only as a side effect of a
// successful checkout.
type Stats struct {
	TotalItemsPurchased int
	TotalPurchaseAmount decimal.Decimal
	TotalDiscountGiven  decimal.Decimal
}
