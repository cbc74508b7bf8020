package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for allocation outcomes and the HTTP API
var (
	LotteryRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_runs_total",
			Help: "Total number of lottery runs by result",
		},
		[]string{"result"},
	)

	LotteryRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lottery_run_duration_seconds",
			Help:    "Duration of a lottery run including snapshot load and save",
			Buckets: prometheus.DefBuckets,
		},
	)

	PlacementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placements_total",
			Help: "Total number of signups placed on a trip roster",
		},
		[]string{"mode"},
	)

	WaitlistedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waitlisted_total",
			Help: "Total number of signups added to a waitlist",
		},
		[]string{"mode"},
	)

	PromotionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "waitlist_promotions_total",
			Help: "Total number of waitlisted signups promoted to a roster",
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Allocation modes used as the "mode" label.
const (
	ModeLottery = "lottery"
	ModeFCFS    = "fcfs"
	ModeLeader  = "leader"
)

var registerOnce sync.Once

// Register registers all Prometheus metrics
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LotteryRunsTotal)
		prometheus.MustRegister(LotteryRunDuration)
		prometheus.MustRegister(PlacementsTotal)
		prometheus.MustRegister(WaitlistedTotal)
		prometheus.MustRegister(PromotionsTotal)
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
	})
}
