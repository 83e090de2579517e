package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/nati-tewolde/online-store/internal/domain"
	"github.com/nati-tewolde/online-store/internal/metrics"
	apperrors "github.com/nati-tewolde/online-store/pkg/errors"
	"github.com/nati-tewolde/online-store/pkg/tracing"
	"github.com/nati-tewolde/online-store/pkg/validator"
)

const (
	fieldSeparator = "|"
	fieldCount     = 4

	// maxLineBytes bounds a single catalog line.
	maxLineBytes = 1 << 20
)

// Reasons a catalog line is skipped. Used as the metrics label.
const (
	ReasonFieldCount = "field_count"
	ReasonPrice      = "price"
	ReasonInvalid    = "invalid"
	ReasonTooLong    = "too_long"
)

// LineError describes one skipped catalog line.
type LineError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Reason, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of reading a catalog file.
type LoadResult struct {
	Path     string
	Products []domain.Product
	Skipped  []LineError
	// Created is set when the file did not exist and an empty one was made.
	Created bool
}

// Lines returns the number of lines read, loaded or skipped.
func (r *LoadResult) Lines() int {
	return len(r.Products) + len(r.Skipped)
}

// CatalogLoader reads pipe-delimited product files.
type CatalogLoader struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	warnOut io.Writer
}

// NewCatalogLoader creates a loader. Skip warnings for the shopper are
// written to warnOut; structured records go to logger.
func NewCatalogLoader(logger *slog.Logger, m *metrics.Metrics, warnOut io.Writer) *CatalogLoader {
	return &CatalogLoader{
		logger:  logger,
		metrics: m,
		warnOut: warnOut,
	}
}

// Load reads the catalog at path. A missing file is created empty. Malformed
// lines are skipped and reported; they never abort the load. On an I/O
// failure the products read so far are returned together with the error.
func (l *CatalogLoader) Load(ctx context.Context, path string) (res *LoadResult, err error) {
	ctx, end := tracing.TraceOperation(ctx, "catalog.Load", attribute.String("catalog.path", path))
	defer func() { end(err) }()

	res = &LoadResult{
		Path:     path,
		Products: []domain.Product{},
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		res.Created = true
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		res.Created = false
		return res, apperrors.Wrap(err, "open catalog")
	}
	defer f.Close()

	if res.Created {
		l.logger.InfoContext(ctx, "catalog file created",
			slog.String("path", path),
		)
	}

	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line, tooLong, readErr := readLine(reader)
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return res, apperrors.Wrap(readErr, "read catalog")
		}
		lineNo++

		if tooLong {
			l.skip(ctx, res, LineError{
				Path:   path,
				Line:   lineNo,
				Reason: ReasonTooLong,
				Err:    apperrors.InvalidInput(fmt.Sprintf("line exceeds %d bytes", maxLineBytes)),
			})
			continue
		}

		product, reason, parseErr := ParseLine(line)
		if parseErr != nil {
			l.skip(ctx, res, LineError{Path: path, Line: lineNo, Reason: reason, Err: parseErr})
			continue
		}

		res.Products = append(res.Products, product)
		l.metrics.CatalogLinesLoaded.Inc()
	}

	tracing.AddAttributes(ctx,
		attribute.Int("catalog.products", len(res.Products)),
		attribute.Int("catalog.skipped", len(res.Skipped)),
	)

	l.logger.InfoContext(ctx, "catalog loaded",
		slog.String("path", path),
		slog.Int("products", len(res.Products)),
		slog.Int("skipped", len(res.Skipped)),
	)

	return res, nil
}

func (l *CatalogLoader) skip(ctx context.Context, res *LoadResult, lineErr LineError) {
	res.Skipped = append(res.Skipped, lineErr)
	l.metrics.CatalogLinesSkipped.WithLabelValues(lineErr.Reason).Inc()

	fmt.Fprintf(l.warnOut,
		"\nError extracting file content on line %d, please check %s for corrupted data.\n",
		lineErr.Line, lineErr.Path,
	)

	l.logger.WarnContext(ctx, "skipping malformed catalog line",
		slog.String("path", lineErr.Path),
		slog.Int("line", lineErr.Line),
		slog.String("reason", lineErr.Reason),
		slog.String("error", lineErr.Err.Error()),
	)
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed in full but returned empty with tooLong set.
// io.EOF is returned only when no line remains.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, readErr := r.ReadLine()
		if readErr != nil {
			return "", false, readErr
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// ParseLine parses one `identifier|name|price|category` record. On failure
// it returns the skip reason alongside the error. Fields other than price are
// kept verbatim.
func ParseLine(line string) (domain.Product, string, error) {
	line = strings.TrimSuffix(line, "\r")

	parts := strings.Split(line, fieldSeparator)
	if len(parts) != fieldCount {
		return domain.Product{}, ReasonFieldCount,
			apperrors.InvalidInput(fmt.Sprintf("expected %d fields, got %d", fieldCount, len(parts)))
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return domain.Product{}, ReasonPrice,
			apperrors.InvalidInput(fmt.Sprintf("price %q is not a decimal number", parts[2]))
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.Product{}, ReasonPrice,
			apperrors.InvalidInput(fmt.Sprintf("price %q is not a finite amount", parts[2]))
	}

	product := domain.Product{
		ID:       parts[0],
		Name:     parts[1],
		Price:    price,
		Category: parts[3],
	}

	if err := validator.Validate(product); err != nil {
		return domain.Product{}, ReasonInvalid, apperrors.InvalidInput(err.Error())
	}

	return product, "", nil
}
