package repository

import (
	"context"

	"github.com/nati-tewolde/online-store/internal/domain"
)

// ProductRepository is read-only access to the product registry.
type ProductRepository interface {
	// List returns every product in catalog order.
	List(ctx context.Context) ([]domain.Product, error)

	// FindByID returns the first product whose identifier matches id,
	// ignoring case. The pointer refers to the registry's own entry.
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// Count returns the number of products in the registry.
	Count(ctx context.Context) (int, error)
}
