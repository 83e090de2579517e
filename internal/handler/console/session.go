package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/service"
	"github.com/nati-tewolde/online-store/pkg/logger"
)

// maxInputBytes bounds one line of shopper input.
const maxInputBytes = 4 << 10

var errLineTooLong = errors.New("input line too long")

const (
	choiceBrowse = 1
	choiceCart   = 2
	choiceExit   = 3
)

// ProductCatalog is the read side of the product registry used by Browse.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	IsEmpty(ctx context.Context) (bool, error)
}

// CartManager adds items to and displays the shopper's cart.
type CartManager interface {
	AddItem(ctx context.Context, productID string) (*domain.Product, error)
	GetCart(ctx context.Context) *service.CartView
}

// Checkouter settles the cart.
type Checkouter interface {
	Checkout(ctx context.Context, input service.CheckoutInput) (*domain.Receipt, error)
}

// Session drives the interactive text menu for a single shopper.
type Session struct {
	products ProductCatalog
	cart     CartManager
	checkout Checkouter
	in       *bufio.Reader
	out      io.Writer
	currency string
	logger   *slog.Logger
}

// NewSession creates a session that reads commands from in and writes
// prompts and reports to out.
func NewSession(
	products ProductCatalog,
	cart CartManager,
	checkout Checkouter,
	in io.Reader,
	out io.Writer,
	currency string,
	logger *slog.Logger,
) *Session {
	return &Session{
		products: products,
		cart:     cart,
		checkout: checkout,
		in:       bufio.NewReader(in),
		out:      out,
		currency: currency,
		logger:   logger,
	}
}

// Run shows the main menu until the shopper exits, input ends, or ctx is
// cancelled. End of input is treated as Exit and returns nil.
func (s *Session) Run(ctx context.Context) error {
	log := logger.WithContext(ctx, s.logger)
	log.InfoContext(ctx, "session started")

	for {
		if err := ctx.Err(); err != nil {
			log.InfoContext(ctx, "session interrupted")
			return err
		}

		s.showMenu()
		line, err := s.readLine()
		if errors.Is(err, errLineTooLong) {
			continue
		}
		if err != nil {
			return s.finish(ctx, err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			s.println("Please enter 1, 2, or 3.")
			continue
		}

		switch choice {
		case choiceBrowse:
			err = s.browse(ctx)
		case choiceCart:
			err = s.reviewCart(ctx)
		case choiceExit:
			s.println("Thank you for shopping with us!")
			log.InfoContext(ctx, "session ended")
			return nil
		default:
			s.println("Invalid choice!")
			continue
		}

		if err != nil {
			return s.finish(ctx, err)
		}
	}
}

// finish maps the error that ended a sub-flow to the session result.
func (s *Session) finish(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.println("Thank you for shopping with us!")
		logger.WithContext(ctx, s.logger).InfoContext(ctx, "session ended at end of input")
		return nil
	}
	return err
}

func (s *Session) showMenu() {
	s.println("")
	s.println("Welcome to the Online Store!")
	s.println("1. Show Products")
	s.println("2. Show Cart")
	s.println("3. Exit")
	s.print("Your choice: ")
}

// readLine returns the next input line without its terminator, or io.EOF
// once input is exhausted. A line over maxInputBytes is discarded with a
// notice and errLineTooLong is returned so the caller can prompt again.
func (s *Session) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxInputBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		s.printf("Input is too long, please keep it under %d characters.\n", maxInputBytes)
		return "", errLineTooLong
	}
	return strings.TrimSuffix(string(buf), "\r"), nil
}

// prompt prints msg and reads the trimmed answer.
func (s *Session) prompt(msg string) (string, error) {
	s.print(msg)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// isBack reports whether answer is the "go back" key.
func isBack(answer string) bool {
	return strings.EqualFold(answer, "x")
}
