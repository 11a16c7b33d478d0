package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/discount"
)

func TestNewStore_EmptyState(t *testing.T) {
	s := NewStore()
	s.View(func(st *State) {
		assert.NotNil(t, st.Carts)
		assert.Empty(t, st.Orders)
		assert.Empty(t, st.Codes)
	})
}

func TestUpdate_PropagatesError(t *testing.T) {
	s := NewStore()
	sentinel := cart.ErrNotFound

	err := s.Update(func(*State) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestFirstUnusedCode(t *testing.T) {
	st := &State{
		Codes: []*discount.Code{
			{Code: "DISCOUNT5", Used: true, OrderNumber: 5},
			{Code: "DISCOUNT10", OrderNumber: 10},
			{Code: "DISCOUNT15", OrderNumber: 15},
		},
	}

	got := st.FirstUnusedCode()
	require.NotNil(t, got)
	assert.Equal(t, "DISCOUNT10", got.Code)
}

func TestFirstUnusedCode_AllUsed(t *testing.T) {
	st := &State{
		Codes: []*discount.Code{
			{Code: "DISCOUNT5", Used: true, OrderNumber: 5},
		},
	}
	assert.Nil(t, st.FirstUnusedCode())
}

func TestCodeExists(t *testing.T) {
	st := &State{
		Codes: []*discount.Code{
			{Code: "DISCOUNT5", Used: true, OrderNumber: 5},
			{Code: "SUMMER24", OrderNumber: 10},
		},
	}

	assert.True(t, st.CodeExists("DISCOUNT5"), "used codes still count")
	assert.True(t, st.CodeExists("SUMMER24"))
	assert.False(t, st.CodeExists("WINTER25"))
}

func TestUpdate_Serializes(t *testing.T) {
	s := NewStore()
	err := s.Update(func(st *State) error {
		st.Carts["counter"] = &cart.Cart{UserID: "counter"}
		return nil
	})
	require.NoError(t, err)

	const writers = 100
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(func(st *State) error {
				c := st.Carts["counter"]
				c.Items = append(c.Items, cart.LineItem{ItemID: "sku-1", Qty: 1})
				return nil
			})
		}()
	}
	wg.Wait()

	s.View(func(st *State) {
		assert.Len(t, st.Carts["counter"].Items, writers)
	})
}
