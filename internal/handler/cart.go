package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
)

// pathUserID extracts and validates the {userID} route parameter.
func pathUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "userID"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "user ID is required")
		return "", false
	}
	return id, true
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.GetOrCreate(r.Context(), userID)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCart(e, c) })
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	item, err := decodeLineItem(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid required fields")
		return
	}
	if item.ItemID == "" || item.Name == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	c, err := h.carts.AddItem(r.Context(), userID, item)
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCart(e, c) })
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), userID, chi.URLParam(r, "itemID"))
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCart(e, c) })
}

func (h *Handler) updateItemQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	qty, err := decodeQuantity(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, cart.ErrInvalidQuantity.Error())
		return
	}

	c, err := h.carts.UpdateQuantity(r.Context(), userID, chi.URLParam(r, "itemID"), qty)
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCart(e, c) })
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Clear(r.Context(), userID)
	if err != nil {
		h.cartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCart(e, c) })
}

// cartError maps cart domain errors to client-facing statuses.
func (h *Handler) cartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrNotFound), errors.Is(err, cart.ErrItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, cart.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		internalError(w, r, err)
	}
}

// decodeLineItem reads {"itemId","name","price","qty"} from the request body.
// Prices are decoded from the raw number token so "29.99" stays exact.
func decodeLineItem(body io.Reader) (cart.LineItem, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return cart.LineItem{}, errors.Wrap(err, "read body")
	}

	var item cart.LineItem
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "itemId":
			v, err := d.Str()
			item.ItemID = v
			return err
		case "name":
			v, err := d.Str()
			item.Name = v
			return err
		case "price":
			n, err := d.Num()
			if err != nil {
				return err
			}
			p, err := decimal.NewFromString(string(n))
			item.Price = p
			return err
		case "qty":
			v, err := d.Int()
			item.Qty = v
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return cart.LineItem{}, err
	}
	return item, nil
}

// decodeQuantity reads {"qty": n} from the request body.
func decodeQuantity(body io.Reader) (int, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return 0, errors.Wrap(err, "read body")
	}

	qty := -1
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "qty" {
			return d.Skip()
		}
		v, err := d.Int()
		qty = v
		return err
	}); err != nil {
		return 0, err
	}
	return qty, nil
}
