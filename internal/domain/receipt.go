package domain

import "time"

// Receipt records a completed checkout.
type Receipt struct {
	Number   string    `json:"number"`
	IssuedAt time.Time `json:"issued_at"`
	Lines    []Product `json:"lines"`
	Subtotal float64   `json:"subtotal"`
	Tendered float64   `json:"tendered"`
	Change   float64   `json:"change"`
}

// ItemCount returns the number of units sold.
func (r *Receipt) ItemCount() int {
	return len(r.Lines)
}
