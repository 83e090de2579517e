package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the store's in-process Prometheus collectors.
type Metrics struct {
	// CatalogLinesLoaded counts catalog lines that became products.
	CatalogLinesLoaded prometheus.Counter
	// CatalogLinesSkipped counts malformed catalog lines, by reason.
	CatalogLinesSkipped *prometheus.CounterVec
	// CartItemsAdded counts successful add-to-cart actions.
	CartItemsAdded prometheus.Counter
	// CartLookupMisses counts identifiers that matched no product.
	CartLookupMisses prometheus.Counter
	// CheckoutsCompleted counts checkouts that produced a receipt.
	CheckoutsCompleted prometheus.Counter
	// CheckoutPaymentsRejected counts tendered amounts below the subtotal.
	CheckoutPaymentsRejected prometheus.Counter
	// CheckoutAmount observes the subtotal of each completed checkout.
	CheckoutAmount prometheus.Histogram
}

// New registers the store collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to keep runs independent.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CatalogLinesLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_catalog_lines_loaded_total",
			Help: "Total number of catalog lines loaded as products",
		}),
		CatalogLinesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_catalog_lines_skipped_total",
				Help: "Total number of malformed catalog lines skipped",
			},
			[]string{"reason"},
		),
		CartItemsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_cart_items_added_total",
			Help: "Total number of products added to the cart",
		}),
		CartLookupMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_cart_lookup_misses_total",
			Help: "Total number of product lookups that matched nothing",
		}),
		CheckoutsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_checkouts_total",
			Help: "Total number of completed checkouts",
		}),
		CheckoutPaymentsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "store_checkout_rejected_payments_total",
			Help: "Total number of payments rejected for being below the subtotal",
		}),
		CheckoutAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "store_checkout_amount",
			Help:    "Subtotal of completed checkouts",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

// Sample is one flattened metric value.
type Sample struct {
	Name  string
	Value float64
}

// Summarize gathers every family from g and flattens counters and gauges to
// their summed value and histograms to their sample count. Results are
// sorted by name.
func Summarize(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(families))
	for _, fam := range families {
		var total float64
		for _, m := range fam.GetMetric() {
			total += metricValue(fam.GetType(), m)
		}
		samples = append(samples, Sample{Name: fam.GetName(), Value: total})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
