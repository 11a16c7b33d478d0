package service

import (
	"context"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/storage/memory"
)

// AvailableCode returns the currently claimable discount code, or nil when
// none is available.
//
// The call is read-leaning but may mutate: an unused code whose issuance point
// lies more than discount.Interval orders in the past is lazily retired here
// (marked used, nothing returned). When the registry holds no unused code and
// the order count sits exactly on an issuance boundary, a new code named
// discount.DefaultCode(orderCount) is issued on the spot. Codes are issued
// automatically exactly once per completed block of Interval orders, but only
// become visible through this polling-style check.
func (s *Checkout) AvailableCode(ctx context.Context) (*discount.Code, error) {
	var out *discount.Code
	err := s.store.Update(func(st *memory.State) error {
		if dc := st.FirstUnusedCode(); dc != nil {
			if len(st.Orders) > dc.OrderNumber+discount.Interval {
				dc.Used = true
				return nil
			}
			snapshot := *dc
			out = &snapshot
			return nil
		}

		orderCount := len(st.Orders)
		if orderCount > 0 && orderCount%discount.Interval == 0 {
			dc := &discount.Code{
				Code:        discount.DefaultCode(orderCount),
				OrderNumber: orderCount,
			}
			st.Codes = append(st.Codes, dc)
			snapshot := *dc
			out = &snapshot
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateCode issues a discount code on explicit administrative request.
// customCode may be empty, in which case the deterministic default name is
// used. The preconditions are checked in a fixed order: the ledger must be
// non-empty, no unused code may be pending, the order count must sit on an
// issuance boundary, a custom code must match [A-Z0-9]+, and the chosen code
// string must never have been issued before.
func (s *Checkout) GenerateCode(ctx context.Context, customCode string) (*discount.Code, error) {
	var out *discount.Code
	err := s.store.Update(func(st *memory.State) error {
		orderCount := len(st.Orders)
		if orderCount == 0 {
			return discount.ErrNoOrders
		}

		if existing := st.FirstUnusedCode(); existing != nil {
			return &discount.AlreadyAvailableError{Code: existing.Code}
		}

		if orderCount%discount.Interval != 0 {
			return discount.ErrNotAtBoundary
		}

		code := customCode
		if code == "" {
			code = discount.DefaultCode(orderCount)
		} else if !discount.ValidCustomCode(code) {
			return discount.ErrInvalidFormat
		}

		if st.CodeExists(code) {
			return &discount.AlreadyExistsError{Code: code}
		}

		dc := &discount.Code{Code: code, OrderNumber: orderCount}
		st.Codes = append(st.Codes, dc)
		snapshot := *dc
		out = &snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StoreStats is the aggregate report returned to administrators.
type StoreStats struct {
	Stats       order.Stats
	Codes       []discount.Code
	TotalOrders int
}

// Stats returns the current statistics, the full discount code registry
// including used and lapsed history, and the order count. Pure read.
func (s *Checkout) Stats(ctx context.Context) (*StoreStats, error) {
	out := &StoreStats{}
	s.store.View(func(st *memory.State) {
		out.Stats = st.Stats
		out.TotalOrders = len(st.Orders)
		out.Codes = make([]discount.Code, len(st.Codes))
		for i, dc := range st.Codes {
			out.Codes[i] = *dc
		}
	})
	return out, nil
}
