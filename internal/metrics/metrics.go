package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"tourismportal/internal/db"
)

var placeCountDesc = prometheus.NewDesc(
	"tourismportal_places_total",
	"Number of place submissions by moderation status",
	[]string{"status"},
	nil,
)

// PlaceCollector is a custom Prometheus collector that reads place counts
// from the database on each scrape.
type PlaceCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *PlaceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- placeCountDesc
}

// Collect queries the database for place counts per status and emits them as
// gauges.
func (c *PlaceCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.CountPlacesByStatus(context.Background())
	if err != nil {
		slog.Error("failed to collect place count metrics", "error", err)
		return
	}
	for status, count := range counts {
		ch <- prometheus.MustNewConstMetric(
			placeCountDesc,
			prometheus.GaugeValue,
			float64(count),
			status,
		)
	}
}

var (
	moderationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourismportal_moderation_decisions_total",
			Help: "Total moderation decisions by outcome",
		},
		[]string{"outcome"},
	)

	initOnce sync.Once
)

// Init registers the custom collector and the decision counter.
// Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&PlaceCollector{db: database})
		prometheus.MustRegister(moderationDecisions)
	})
}

// RecordModerationDecision counts an approve/reject outcome.
func RecordModerationDecision(outcome string) {
	moderationDecisions.WithLabelValues(outcome).Inc()
}
