package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/metrics"
	"github.com/nati-tewolde/online-store/pkg/clock"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
	"github.com/nati-tewolde/online-store/pkg/logger"
	"github.com/nati-tewolde/online-store/pkg/tracing"
)

// CheckoutInput holds the cash tendered by the shopper.
type CheckoutInput struct {
	Tendered float64
}

// CheckoutService turns the cart into a receipt.
type CheckoutService struct {
	cart    *domain.Cart
	clock   clock.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCheckoutService creates a checkout service operating on the session's cart.
func NewCheckoutService(cart *domain.Cart, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		cart:    cart,
		clock:   clk,
		metrics: m,
		logger:  logger,
	}
}

// Checkout accepts payment for the whole cart. The payment must cover the
// subtotal; otherwise ErrInsufficientPayment is returned and the cart is left
// untouched. On success the receipt is returned and the cart is emptied.
// Product records are never changed by a checkout.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (receipt *domain.Receipt, err error) {
	ctx, end := tracing.TraceOperation(ctx, "checkout.Checkout",
		attribute.Int("cart.size", s.cart.Len()),
	)
	defer func() { end(err) }()

	if s.cart.IsEmpty() {
		return nil, apperrors.EmptyCart()
	}
	if math.IsNaN(input.Tendered) || math.IsInf(input.Tendered, 0) {
		return nil, apperrors.InvalidInput("payment must be a finite amount")
	}

	// Only the summed subtotal is rounded; the tendered amount is compared
	// as entered.
	subtotal := roundCents(s.cart.Subtotal())
	if input.Tendered < subtotal {
		s.metrics.CheckoutPaymentsRejected.Inc()
		return nil, apperrors.InsufficientPayment(subtotal, input.Tendered)
	}

	change := input.Tendered - subtotal

	items := s.cart.Items()
	lines := make([]domain.Product, len(items))
	for i, p := range items {
		lines[i] = *p
	}

	receipt = &domain.Receipt{
		Number:   uuid.New().String(),
		IssuedAt: s.clock.Now(),
		Lines:    lines,
		Subtotal: subtotal,
		Tendered: input.Tendered,
		Change:   change,
	}

	s.cart.Clear()

	s.metrics.CheckoutsCompleted.Inc()
	s.metrics.CheckoutAmount.Observe(subtotal)
	tracing.AddAttributes(ctx, attribute.String("receipt.number", receipt.Number))

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "checkout completed",
		slog.String("receipt", receipt.Number),
		slog.Int("items", receipt.ItemCount()),
		slog.Float64("subtotal", subtotal),
		slog.Float64("tendered", input.Tendered),
		slog.Float64("change", change),
	)

	return receipt, nil
}

// roundCents rounds an amount to whole cents, dropping the float noise a
// sum of prices accumulates.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
