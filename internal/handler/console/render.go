package console

import (
	"fmt"
	"strings"

	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/service"
)

const (
	rowFormat    = "%-10s %-30s %10s\n"
	totalFormat  = "%-41s %10s\n"
	lineWidth    = 52
	timeLayout   = "2006-01-02 15:04:05"
	receiptTitle = "RECEIPT"
)

func (s *Session) money(amount float64) string {
	return fmt.Sprintf("%s%.2f", s.currency, amount)
}

func (s *Session) renderRow(p domain.Product) {
	s.printf(rowFormat, p.ID, p.Name, s.money(p.Price))
}

func (s *Session) renderProducts(products []domain.Product) {
	s.printf(rowFormat, "ID", "Name", "Price")
	s.println(strings.Repeat("-", lineWidth))
	for _, p := range products {
		s.renderRow(p)
	}
}

func (s *Session) renderCart(view *service.CartView) {
	s.println("Your cart:")
	s.printf(rowFormat, "ID", "Name", "Price")
	s.println(strings.Repeat("-", lineWidth))
	for _, p := range view.Items {
		s.renderRow(*p)
	}
	s.println(strings.Repeat("-", lineWidth))
	s.printf("Subtotal: %s\n", s.money(view.Subtotal))
}

func (s *Session) renderReceipt(r *domain.Receipt) {
	s.println("")
	s.println(strings.Repeat("=", lineWidth))
	s.printf("%s %s\n", receiptTitle, r.Number)
	s.println(r.IssuedAt.Format(timeLayout))
	s.println(strings.Repeat("-", lineWidth))
	for _, p := range r.Lines {
		s.renderRow(p)
	}
	s.println(strings.Repeat("-", lineWidth))
	s.printf(totalFormat, "Subtotal:", s.money(r.Subtotal))
	s.printf(totalFormat, "Cash:", s.money(r.Tendered))
	s.printf(totalFormat, "Change:", s.money(r.Change))
	s.println(strings.Repeat("=", lineWidth))
	s.printf("Items: %d\n", r.ItemCount())
	s.println("Thank you for your purchase!")
}
