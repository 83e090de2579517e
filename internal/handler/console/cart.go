package console

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/nati-tewolde/online-store/internal/service"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
)

// reviewCart shows the cart and offers checkout.
func (s *Session) reviewCart(ctx context.Context) error {
	view := s.cart.GetCart(ctx)
	if view.IsEmpty() {
		s.println("Your cart is empty.")
		return nil
	}

	s.println("")
	s.renderCart(view)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := s.prompt("\nEnter C to check out, or X to go back: ")
		if errors.Is(err, errLineTooLong) {
			continue
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "c":
			return s.runCheckout(ctx, view.Subtotal)
		case "x":
			return nil
		default:
			s.println("Please enter C or X.")
		}
	}
}

// runCheckout prompts for cash until the payment is accepted.
func (s *Session) runCheckout(ctx context.Context, subtotal float64) error {
	s.printf("Amount due: %s\n", s.money(subtotal))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := s.prompt("Enter payment amount: ")
		if errors.Is(err, errLineTooLong) {
			continue
		}
		if err != nil {
			return err
		}

		tendered, ok := s.parseAmount(answer)
		if !ok {
			s.println("Please enter a valid amount.")
			continue
		}

		receipt, err := s.checkout.Checkout(ctx, service.CheckoutInput{Tendered: tendered})
		switch {
		case err == nil:
			s.renderReceipt(receipt)
			return nil
		case errors.Is(err, apperrors.ErrInsufficientPayment):
			s.println("Payment cannot be less than subtotal.")
		case errors.Is(err, apperrors.ErrInvalidInput):
			s.println("Please enter a valid amount.")
		default:
			return s.reportFailure(ctx, "check out", err)
		}
	}
}

// parseAmount parses a decimal amount, tolerating a leading currency symbol.
func (s *Session) parseAmount(answer string) (float64, bool) {
	answer = strings.TrimSpace(strings.TrimPrefix(answer, s.currency))
	if answer == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
