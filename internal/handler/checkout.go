package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/discount"
)

func (h *Handler) processCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	code, err := decodeOptionalField(r.Body, "discountCode")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.checkout.ProcessCheckout(r.Context(), userID, code)
	if err != nil {
		h.checkoutError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeOrder(e, o) })
}

func (h *Handler) availableDiscount(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestUserID(w, r); !ok {
		return
	}

	dc, err := h.checkout.AvailableCode(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if dc == nil {
		writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
			e.ObjStart()
			e.FieldStart("message")
			e.Str("no code available")
			e.ObjEnd()
		})
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCode(e, *dc) })
}

func (h *Handler) generateDiscount(w http.ResponseWriter, r *http.Request) {
	code, err := decodeOptionalField(r.Body, "code")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dc, err := h.checkout.GenerateCode(r.Context(), code)
	if err != nil {
		h.generateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCode(e, *dc) })
}

func (h *Handler) storeStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkout.Stats(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeStoreStats(e, st) })
}

// checkoutError maps checkout domain errors to client-facing statuses.
func (h *Handler) checkoutError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrEmpty),
		errors.Is(err, discount.ErrInvalidOrUsed),
		errors.Is(err, discount.ErrExpired):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		internalError(w, r, err)
	}
}

// generateError maps issuance policy violations to client-facing statuses.
func (h *Handler) generateError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		availErr  *discount.AlreadyAvailableError
		existsErr *discount.AlreadyExistsError
	)
	switch {
	case errors.Is(err, discount.ErrNoOrders),
		errors.Is(err, discount.ErrNotAtBoundary),
		errors.Is(err, discount.ErrInvalidFormat),
		errors.As(err, &availErr),
		errors.As(err, &existsErr):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		internalError(w, r, err)
	}
}

// decodeOptionalField reads a single optional string field from a request
// body. An empty body is valid and yields "".
func decodeOptionalField(body io.Reader, field string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}
	if len(data) == 0 {
		return "", nil
	}

	var value string
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != field {
			return d.Skip()
		}
		v, err := d.Str()
		value = v
		return err
	}); err != nil {
		return "", err
	}
	return value, nil
}
