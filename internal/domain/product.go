package domain

import "strings"

// Product is a purchasable catalog entry. Products are immutable once loaded.
type Product struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
}

// MatchesID reports whether id identifies this product. Comparison is
// case-insensitive and exact.
func (p *Product) MatchesID(id string) bool {
	return strings.EqualFold(p.ID, id)
}
