package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
	"github.com/nati-tewolde/online-store/pkg/logger"
)

// browse lists the inventory and lets the shopper add one product by ID.
func (s *Session) browse(ctx context.Context) error {
	empty, err := s.products.IsEmpty(ctx)
	if err != nil {
		return s.reportFailure(ctx, "check inventory", err)
	}
	if empty {
		s.println("The inventory is empty.")
		return nil
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return s.reportFailure(ctx, "list products", err)
	}
	s.println("")
	s.renderProducts(products)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		answer, err := s.prompt("\nEnter a product ID to add it to your cart, or X to go back: ")
		if errors.Is(err, errLineTooLong) {
			continue
		}
		if err != nil {
			return err
		}
		if answer == "" {
			s.println("Please enter a product ID.")
			continue
		}
		if isBack(answer) {
			return nil
		}

		product, err := s.cart.AddItem(ctx, answer)
		switch {
		case err == nil:
			s.printf("%s added to your cart.\n", product.Name)
		case errors.Is(err, apperrors.ErrNotFound):
			s.printf("No product matching %s.\n", answer)
		default:
			return s.reportFailure(ctx, "add item", err)
		}
		return nil
	}
}

// reportFailure prints a diagnostic for an unexpected service error and
// returns the shopper to the menu.
func (s *Session) reportFailure(ctx context.Context, op string, err error) error {
	logger.WithContext(ctx, s.logger).ErrorContext(ctx, fmt.Sprintf("failed to %s", op),
		slog.String("code", apperrors.Code(err)),
		slog.String("error", err.Error()),
	)
	s.printf("Something went wrong: %s\n", apperrors.Message(err))
	return nil
}
