package cart

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Sentinel errors for cart operations.
var (
	// ErrNotFound is returned when no cart exists for the given user.
	ErrNotFound = errors.New("cart not found")
	// ErrEmpty is returned when checkout is attempted on a cart with no items.
	ErrEmpty = errors.New("cart is empty")
	// ErrItemNotFound is returned when the referenced item is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
	// ErrInvalidQuantity is returned for negative or zero quantities where a
	// positive one is required.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidPrice is returned when a line item carries a negative unit price.
	ErrInvalidPrice = errors.New("invalid price")
)

// LineItem is a single entry in a user's cart. ItemID is unique within the cart.
type LineItem struct {
	ItemID string
	Name   string
	Price  decimal.Decimal
	Qty    int
}

// Cart holds the mutable shopping cart for one user. Carts are created lazily
// on first access and cleared, never deleted, on checkout.
type Cart struct {
	UserID string
	Items  []LineItem
}

// Clone returns an independent copy of the cart. Line items hold value types
// only, so copying the slice is enough.
func (c *Cart) Clone() *Cart {
	out := &Cart{UserID: c.UserID}
	if len(c.Items) > 0 {
		out.Items = make([]LineItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// SnapshotItems returns an independent copy of the cart's line items.
func (c *Cart) SnapshotItems() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}

// Subtotal returns the sum of price * quantity across all line items.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return sum
}

// TotalQuantity returns the sum of quantities across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Qty
	}
	return total
}
