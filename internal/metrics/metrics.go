package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal compte les requêtes HTTP par méthode et status code
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "runnalog_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "status"})

	// RequestDuration histogramme des durées de requêtes
	RequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "runnalog_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	})

	// RunsCreated compte les courses enregistrées
	RunsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "runnalog_runs_created_total",
		Help: "Total number of runs recorded",
	})

	// StridesSpent compte les strides dépensés en abonnements
	StridesSpent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "runnalog_strides_spent_total",
		Help: "Total strides spent on subscription purchases",
	})

	// LeaderboardUsers taille du dernier instantané du classement
	LeaderboardUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "runnalog_leaderboard_users",
		Help: "Number of users in the current daily leaderboard snapshot",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, RunsCreated, StridesSpent, LeaderboardUsers)
}

// ObserveRequest enregistre une requête HTTP terminée
func ObserveRequest(method string, status int, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, fmt.Sprintf("%d", status)).Inc()
	RequestDuration.Observe(duration.Seconds())
}
