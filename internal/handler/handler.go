// Package handler is the HTTP adapter over the store services: routing,
// request decoding, response encoding, and the mapping from domain errors to
// client-facing statuses.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xenking/storefront/internal/service"
)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// AdminUserID is the identity allowed to call administrative endpoints.
	AdminUserID string
}

// Handler exposes the cart and checkout services over HTTP.
type Handler struct {
	carts    *service.Carts
	checkout *service.Checkout
	adminID  []byte
}

// NewHandler constructs a Handler with the required service dependencies.
func NewHandler(cfg Config, carts *service.Carts, checkout *service.Checkout) *Handler {
	return &Handler{
		carts:    carts,
		checkout: checkout,
		adminID:  []byte(cfg.AdminUserID),
	}
}

// Routes returns the full route table under /api.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/cart/{userID}", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addItem)
			r.Route("/items/{itemID}", func(r chi.Router) {
				r.Patch("/", h.updateItemQuantity)
				r.Delete("/", h.removeItem)
			})
		})
		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", h.processCheckout)
			r.Get("/discount", h.availableDiscount)
			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Post("/discount", h.generateDiscount)
				r.Get("/stats", h.storeStats)
			})
		})
	})
	return r
}
