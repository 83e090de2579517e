package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nati-tewolde/online-store/internal/domain"
)

func TestListProducts(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	expected := []domain.Product{
		{ID: "101", Name: "Widget", Price: 9.99, Category: "Hardware"},
		{ID: "102", Name: "Gadget", Price: 19.5, Category: "Electronics"},
	}
	repo.On("List", ctx).Return(expected, nil)

	got, err := svc.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestListProducts_RepoError(t *testing.T) {
	repo := new(mockProductRepository)
	svc := NewProductService(repo, newTestLogger())
	ctx := context.Background()

	repo.On("List", ctx).Return(nil, errors.New("boom"))

	got, err := svc.ListProducts(ctx)

	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"empty registry", 0, true},
		{"populated registry", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockProductRepository)
			svc := NewProductService(repo, newTestLogger())
			ctx := context.Background()
			repo.On("Count", ctx).Return(tt.count, nil)

			got, err := svc.IsEmpty(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
