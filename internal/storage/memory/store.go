// Package memory holds the process-lifetime dataset shared by every service:
// the cart map, the order ledger, the discount code registry, and the
// aggregate statistics.
//
// A single mutex guards the entire dataset. Checkout, code issuance, and lapse
// detection all read derived state (ledger length, registry contents) and then
// write, so they must observe a serializable view for the full duration of the
// decision. Callers get that by running their whole operation inside one
// Update call.
package memory

import (
	"sync"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
)

// State is the complete in-memory dataset. Callbacks passed to Update and View
// receive the live state and must not retain references past the callback.
type State struct {
	Carts  map[string]*cart.Cart
	Orders []*order.Order
	Codes  []*discount.Code
	Stats  order.Stats
}

// FirstUnusedCode returns the first registry entry with Used == false, or nil.
func (s *State) FirstUnusedCode() *discount.Code {
	for _, c := range s.Codes {
		if !c.Used {
			return c
		}
	}
	return nil
}

// CodeExists reports whether any registry entry, used or not, carries the
// given code string.
func (s *State) CodeExists(code string) bool {
	for _, c := range s.Codes {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Store owns a State behind a single mutual-exclusion domain. It is
// constructed once at process start and injected into the services that
// operate on it.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		state: State{
			Carts: make(map[string]*cart.Cart),
		},
	}
}

// Update runs fn with exclusive access to the dataset. The error from fn is
// returned as-is; the state keeps any mutation fn made before failing, so fn
// must defer its writes until validation has passed.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// View runs fn with exclusive access to the dataset. It exists for read-only
// snapshots; fn must not mutate the state.
func (s *Store) View(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
