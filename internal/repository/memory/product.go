package memory

import (
	"context"

	"github.com/nati-tewolde/online-store/internal/domain"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
)

// ProductRepository implements repository.ProductRepository over an ordered
// in-memory slice. It is populated once and never mutated, so it needs no
// locking.
type ProductRepository struct {
	products []domain.Product
}

// NewProductRepository creates a registry holding a copy of products in the
// given order.
func NewProductRepository(products []domain.Product) *ProductRepository {
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	return &ProductRepository{products: owned}
}

// List returns a copy of all products in catalog order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// FindByID scans the registry in order and returns the first match.
func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].MatchesID(id) {
			return &r.products[i], nil
		}
	}
	return nil, apperrors.NotFound("product", id)
}

// Count returns the number of products in the registry.
func (r *ProductRepository) Count(_ context.Context) (int, error) {
	return len(r.products), nil
}
