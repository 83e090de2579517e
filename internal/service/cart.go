package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/metrics"
	"github.com/nati-tewolde/online-store/internal/repository"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
	"github.com/nati-tewolde/online-store/pkg/logger"
)

// CartView is a snapshot of the cart for display.
type CartView struct {
	Items    []*domain.Product
	Subtotal float64
}

// IsEmpty reports whether the snapshot has no entries.
func (v *CartView) IsEmpty() bool {
	return len(v.Items) == 0
}

// CartService implements the business logic for the shopper's cart.
type CartService struct {
	repo    repository.ProductRepository
	cart    *domain.Cart
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCartService creates a cart service operating on the session's cart.
func NewCartService(repo repository.ProductRepository, cart *domain.Cart, m *metrics.Metrics, logger *slog.Logger) *CartService {
	return &CartService{
		repo:    repo,
		cart:    cart,
		metrics: m,
		logger:  logger,
	}
}

// GetCart returns the current cart contents and subtotal.
func (s *CartService) GetCart(_ context.Context) *CartView {
	return &CartView{
		Items:    s.cart.Items(),
		Subtotal: s.cart.Subtotal(),
	}
}

// AddItem looks up productID (case-insensitive, first match) and appends one
// unit of it to the cart.
func (s *CartService) AddItem(ctx context.Context, productID string) (*domain.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.CartLookupMisses.Inc()
			return nil, err
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	s.cart.Add(product)
	s.metrics.CartItemsAdded.Inc()

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "item added to cart",
		slog.String("product_id", product.ID),
		slog.Float64("price", product.Price),
		slog.Int("cart_size", s.cart.Len()),
	)

	return product, nil
}
