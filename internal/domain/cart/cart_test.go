package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func li(id, price string, qty int) LineItem {
	return LineItem{ItemID: id, Price: decimal.RequireFromString(price), Qty: qty}
}

func TestSubtotal(t *testing.T) {
	c := &Cart{
		UserID: "alice",
		Items: []LineItem{
			li("sku-1", "29.99", 2),
			li("sku-2", "2.99", 3),
		},
	}

	// 59.98 + 8.97
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("68.95")), "got %s", c.Subtotal())
}

func TestSubtotal_Empty(t *testing.T) {
	c := &Cart{UserID: "alice"}
	assert.True(t, c.Subtotal().IsZero())
}

func TestTotalQuantity(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			li("sku-1", "1.00", 2),
			li("sku-2", "1.00", 5),
		},
	}
	assert.Equal(t, 7, c.TotalQuantity())
}

func TestClone_Independent(t *testing.T) {
	c := &Cart{
		UserID: "alice",
		Items:  []LineItem{li("sku-1", "1.00", 1)},
	}

	clone := c.Clone()
	clone.Items[0].Qty = 99

	assert.Equal(t, 1, c.Items[0].Qty)
	assert.Equal(t, "alice", clone.UserID)
}

func TestSnapshotItems_Independent(t *testing.T) {
	c := &Cart{Items: []LineItem{li("sku-1", "1.00", 1)}}

	items := c.SnapshotItems()
	items[0].Qty = 42

	assert.Equal(t, 1, c.Items[0].Qty)
}
