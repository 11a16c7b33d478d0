package handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/service"
)

// writeJSON encodes a response body with jx and writes it with the given
// status code.
func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError writes the {"error": message} body every rejected operation uses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("error")
		e.Str(message)
		e.ObjEnd()
	})
}

// internalError logs the unanticipated failure and responds with a generic
// 500, keeping domain error kinds distinct from collaborator malfunction.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	zctx.From(r.Context()).Error("Internal error",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "something went wrong")
}

// encodeDecimal writes a decimal as a plain JSON number, preserving exact
// digits instead of round-tripping through float64.
func encodeDecimal(e *jx.Encoder, d decimal.Decimal) {
	e.Num(jx.Num(d.String()))
}

func encodeLineItem(e *jx.Encoder, item cart.LineItem) {
	e.ObjStart()
	e.FieldStart("itemId")
	e.Str(item.ItemID)
	e.FieldStart("name")
	e.Str(item.Name)
	e.FieldStart("price")
	encodeDecimal(e, item.Price)
	e.FieldStart("qty")
	e.Int(item.Qty)
	e.ObjEnd()
}

func encodeCart(e *jx.Encoder, c *cart.Cart) {
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(c.UserID)
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range c.Items {
		encodeLineItem(e, item)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeOrder(e *jx.Encoder, o *order.Order) {
	e.ObjStart()
	e.FieldStart("orderId")
	e.Str(o.ID)
	e.FieldStart("userId")
	e.Str(o.UserID)
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range o.Items {
		encodeLineItem(e, item)
	}
	e.ArrEnd()
	e.FieldStart("total")
	encodeDecimal(e, o.Total)
	e.FieldStart("discountApplied")
	e.Bool(o.DiscountApplied)
	if o.DiscountCode != "" {
		e.FieldStart("discountCode")
		e.Str(o.DiscountCode)
	}
	e.ObjEnd()
}

func encodeCode(e *jx.Encoder, dc discount.Code) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(dc.Code)
	e.FieldStart("used")
	e.Bool(dc.Used)
	e.FieldStart("orderNumber")
	e.Int(dc.OrderNumber)
	e.ObjEnd()
}

func encodeStoreStats(e *jx.Encoder, st *service.StoreStats) {
	e.ObjStart()
	e.FieldStart("stats")
	e.ObjStart()
	e.FieldStart("totalItemsPurchased")
	e.Int(st.Stats.TotalItemsPurchased)
	e.FieldStart("totalPurchaseAmount")
	encodeDecimal(e, st.Stats.TotalPurchaseAmount)
	e.FieldStart("totalDiscountGiven")
	encodeDecimal(e, st.Stats.TotalDiscountGiven)
	e.ObjEnd()
	e.FieldStart("discountCodes")
	e.ArrStart()
	for _, dc := range st.Codes {
		encodeCode(e, dc)
	}
	e.ArrEnd()
	e.FieldStart("totalOrders")
	e.Int(st.TotalOrders)
	e.ObjEnd()
}
