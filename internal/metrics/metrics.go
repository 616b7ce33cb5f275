package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fintrack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LedgerMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_ledger_mutations_total",
			Help: "Committed ledger mutations by operation",
		},
		[]string{"operation"},
	)

	InsufficientFundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fintrack_insufficient_funds_total",
			Help: "Expenses rejected because the wallet balance was too low",
		},
	)

	WalletsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fintrack_wallets_created_total",
			Help: "Total number of wallets created",
		},
	)

	WalletsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fintrack_wallets_deleted_total",
			Help: "Total number of wallets deleted",
		},
	)

	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_reconciliations_total",
			Help: "Wallet reconciliations by outcome",
		},
		[]string{"outcome"},
	)

	BudgetsUpsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_budgets_upserted_total",
			Help: "Budget upserts by result",
		},
		[]string{"result"},
	)

	ReportCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_report_cache_total",
			Help: "Report cache lookups by result",
		},
		[]string{"result"},
	)

	ReportNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fintrack_report_notifications_total",
			Help: "Budget notifications emitted in reports",
		},
		[]string{"kind"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordLedgerMutation(operation string) {
	LedgerMutationsTotal.WithLabelValues(operation).Inc()
}

func RecordInsufficientFunds() {
	InsufficientFundsTotal.Inc()
}

func RecordWalletCreated() {
	WalletsCreatedTotal.Inc()
}

func RecordWalletDeleted() {
	WalletsDeletedTotal.Inc()
}

// RecordReconciliation counts a reconciliation as "clean" or "drift".
func RecordReconciliation(drifted bool) {
	outcome := "clean"
	if drifted {
		outcome = "drift"
	}
	ReconciliationsTotal.WithLabelValues(outcome).Inc()
}

func RecordBudgetUpsert(created bool) {
	result := "updated"
	if created {
		result = "created"
	}
	BudgetsUpsertedTotal.WithLabelValues(result).Inc()
}

func RecordReportCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ReportCacheTotal.WithLabelValues(result).Inc()
}

func RecordReportNotification(kind string) {
	ReportNotificationsTotal.WithLabelValues(kind).Inc()
}
