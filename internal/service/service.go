// Package service implements the business operations of the store: cart CRUD,
// checkout, and the discount code lifecycle. Services share one injected
// in-memory store and run every read-then-write decision inside a single
// store transaction.
package service

import (
	"github.com/xenking/storefront/internal/storage/memory"
)

// Store serializes access to the shared dataset. Implemented by memory.Store.
type Store interface {
	Update(fn func(*memory.State) error) error
	View(fn func(*memory.State))
}
