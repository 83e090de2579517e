package domain

// Cart is an ordered list of selected products. Each entry is one unit and
// points at the registry's product rather than a copy of it.
type Cart struct {
	items []*Product
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: []*Product{}}
}

// Add appends one unit of p to the cart.
func (c *Cart) Add(p *Product) {
	c.items = append(c.items, p)
}

// Items returns the cart entries in the order they were added. The returned
// slice is a copy; the products it points at are shared.
func (c *Cart) Items() []*Product {
	out := make([]*Product, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of units in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums the unit prices of all entries. No rounding is applied.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, p := range c.items {
		total += p.Price
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = []*Product{}
}
