package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/storage/memory"
)

// discountRate is the flat reduction applied when a valid code is redeemed.
var discountRate = decimal.New(1, -1) // 0.1

// Checkout orchestrates cart validation, discount application, order creation,
// ledger and statistics updates, and cart reset. It also owns the discount
// issuance policy, which shares the same mutual-exclusion domain.
type Checkout struct {
	store Store

	// Hooks for tests.
	now   func() time.Time
	newID func() string
}

// NewCheckout creates a checkout service backed by the given store.
func NewCheckout(store Store) *Checkout {
	return &Checkout{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// ProcessCheckout turns the user's cart into an order.
//
// With a discount code supplied, the code must match an unused registry entry
// or the checkout fails with discount.ErrInvalidOrUsed. A matching code whose
// issuance point lies more than discount.Interval orders in the past has
// lapsed: it is consumed without benefit and the checkout fails with
// discount.ErrExpired. Otherwise a flat 10% reduction applies and the code is
// consumed.
//
// All side effects — ledger append, statistics update, cart reset — happen
// only after every validation has passed. The sole mutation on a failure path
// is the lapse consumption above.
func (s *Checkout) ProcessCheckout(ctx context.Context, userID, code string) (*order.Order, error) {
	var placed *order.Order
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			return cart.ErrNotFound
		}
		if len(c.Items) == 0 {
			return cart.ErrEmpty
		}

		total := c.Subtotal()
		finalTotal := total
		applied := false

		var dc *discount.Code
		if code != "" {
			for _, candidate := range st.Codes {
				if candidate.Code == code && !candidate.Used {
					dc = candidate
					break
				}
			}
			if dc == nil {
				return discount.ErrInvalidOrUsed
			}

			// Lapse check against the current ledger length. Detection
			// consumes the code even though the checkout fails.
			if len(st.Orders) > dc.OrderNumber+discount.Interval {
				dc.Used = true
				return discount.ErrExpired
			}

			finalTotal = total.Sub(total.Mul(discountRate))
			applied = true
		}

		// Validation passed; commit.
		o := &order.Order{
			ID:              s.newID(),
			UserID:          userID,
			Items:           c.SnapshotItems(),
			Total:           finalTotal,
			DiscountApplied: applied,
			CreatedAt:       s.now(),
		}
		if applied {
			dc.Used = true
			o.DiscountCode = code
		}

		st.Orders = append(st.Orders, o)
		st.Stats.TotalItemsPurchased += c.TotalQuantity()
		st.Stats.TotalPurchaseAmount = st.Stats.TotalPurchaseAmount.Add(finalTotal)
		if applied {
			st.Stats.TotalDiscountGiven = st.Stats.TotalDiscountGiven.Add(total.Sub(finalTotal))
		}
		c.Items = nil

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}
