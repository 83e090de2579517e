package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Cart.Subtotal Tests
// ============================================================================

func TestSubtotal_SingleItem(t *testing.T) {
	c := NewCart()
	c.Add(&Product{ID: "101", Price: 9.99})
	assert.InDelta(t, 9.99, c.Subtotal(), 1e-9)
}

func TestSubtotal_MultipleItems(t *testing.T) {
	c := NewCart()
	c.Add(&Product{ID: "101", Price: 9.99})
	c.Add(&Product{ID: "102", Price: 19.5})
	c.Add(&Product{ID: "101", Price: 9.99})
	assert.InDelta(t, 39.48, c.Subtotal(), 1e-9)
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	prices := []float64{1.25, 3.5, 0.1, 20}

	forward := NewCart()
	for _, p := range prices {
		forward.Add(&Product{Price: p})
	}
	backward := NewCart()
	for i := len(prices) - 1; i >= 0; i-- {
		backward.Add(&Product{Price: prices[i]})
	}

	assert.InDelta(t, forward.Subtotal(), backward.Subtotal(), 1e-9)
	assert.InDelta(t, 24.85, forward.Subtotal(), 1e-9)
}

func TestSubtotal_EmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, NewCart().Subtotal())
}

func TestSubtotal_ZeroValueCart(t *testing.T) {
	var c Cart
	assert.Equal(t, 0.0, c.Subtotal())
	assert.True(t, c.IsEmpty())
}

// ============================================================================
// Cart mutation Tests
// ============================================================================

func TestAdd_KeepsOrderAndReferences(t *testing.T) {
	widget := &Product{ID: "101", Name: "Widget", Price: 9.99}
	gadget := &Product{ID: "102", Name: "Gadget", Price: 19.5}

	c := NewCart()
	c.Add(gadget)
	c.Add(widget)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Same(t, gadget, items[0])
	assert.Same(t, widget, items[1])
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.IsEmpty())
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := NewCart()
	c.Add(&Product{ID: "101"})

	items := c.Items()
	items[0] = &Product{ID: "tampered"}

	assert.Equal(t, "101", c.Items()[0].ID)
}

func TestClear(t *testing.T) {
	c := NewCart()
	c.Add(&Product{ID: "101", Price: 1})
	c.Add(&Product{ID: "102", Price: 2})

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.Subtotal())
}

// ============================================================================
// Receipt Tests
// ============================================================================

func TestReceipt_ItemCount(t *testing.T) {
	r := &Receipt{Lines: []Product{{ID: "101"}, {ID: "101"}, {ID: "102"}}}
	assert.Equal(t, 3, r.ItemCount())
}
