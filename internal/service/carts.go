package service

import (
	"context"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/storage/memory"
)

// Carts provides cart CRUD operations. Every method returns an independent
// snapshot of the cart so callers never alias store-owned data.
type Carts struct {
	store Store
}

// NewCarts creates a cart service backed by the given store.
func NewCarts(store Store) *Carts {
	return &Carts{store: store}
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (s *Carts) GetOrCreate(ctx context.Context, userID string) (*cart.Cart, error) {
	var out *cart.Cart
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			c = &cart.Cart{UserID: userID}
			st.Carts[userID] = c
		}
		out = c.Clone()
		return nil
	})
	return out, err
}

// AddItem adds a line item to an existing cart. When the cart already holds an
// item with the same ID, the quantities are merged instead of duplicating the
// entry.
func (s *Carts) AddItem(ctx context.Context, userID string, item cart.LineItem) (*cart.Cart, error) {
	if item.Qty <= 0 {
		return nil, cart.ErrInvalidQuantity
	}
	if item.Price.IsNegative() {
		return nil, cart.ErrInvalidPrice
	}

	var out *cart.Cart
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			return cart.ErrNotFound
		}

		merged := false
		for i := range c.Items {
			if c.Items[i].ItemID == item.ItemID {
				c.Items[i].Qty += item.Qty
				merged = true
				break
			}
		}
		if !merged {
			c.Items = append(c.Items, item)
		}

		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem deletes the line item with the given ID. Removing an absent item
// is not an error; the cart is returned unchanged.
func (s *Carts) RemoveItem(ctx context.Context, userID, itemID string) (*cart.Cart, error) {
	var out *cart.Cart
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			return cart.ErrNotFound
		}

		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.ItemID != itemID {
				kept = append(kept, item)
			}
		}
		c.Items = kept

		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateQuantity sets the quantity of an existing line item. A quantity of
// zero removes the item rather than persisting a zero-quantity entry.
func (s *Carts) UpdateQuantity(ctx context.Context, userID, itemID string, qty int) (*cart.Cart, error) {
	if qty < 0 {
		return nil, cart.ErrInvalidQuantity
	}

	var out *cart.Cart
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			return cart.ErrNotFound
		}

		idx := -1
		for i := range c.Items {
			if c.Items[i].ItemID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return cart.ErrItemNotFound
		}

		if qty == 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			c.Items[idx].Qty = qty
		}

		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear empties the cart's line items. The cart record itself persists.
func (s *Carts) Clear(ctx context.Context, userID string) (*cart.Cart, error) {
	var out *cart.Cart
	err := s.store.Update(func(st *memory.State) error {
		c, ok := st.Carts[userID]
		if !ok {
			return cart.ErrNotFound
		}
		c.Items = nil
		out = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
