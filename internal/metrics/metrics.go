package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"method", "status"},
	)

	PaymentAmountCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_payment_amount_cents_total",
			Help: "Sum of recorded payment amounts in cents",
		},
		[]string{"method"},
	)

	RefundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_refunds_total",
			Help: "Total number of refunded payments",
		},
	)

	MembershipsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_memberships_created_total",
			Help: "Total number of memberships sold",
		},
		[]string{"package", "kind"},
	)

	MembershipsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_memberships_expired_total",
			Help: "Total number of memberships moved to expired by the sweep",
		},
	)

	CheckinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_checkins_total",
			Help: "Attendance scans by result",
		},
		[]string{"result"},
	)

	LateFeesAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_late_fees_applied_total",
			Help: "Number of installment late fees assessed",
		},
	)

	OverdueInstallments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gym_overdue_installments",
			Help: "Installments currently overdue",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_notifications_sent_total",
			Help: "Total number of notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gym_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPayment(method, status string, amountCents int64) {
	PaymentsTotal.WithLabelValues(method, status).Inc()
	if amountCents > 0 {
		PaymentAmountCents.WithLabelValues(method).Add(float64(amountCents))
	}
}

func RecordRefund() {
	RefundsTotal.Inc()
}

func RecordMembership(packageName, kind string) {
	MembershipsCreatedTotal.WithLabelValues(packageName, kind).Inc()
}

func RecordExpiredMemberships(n int) {
	MembershipsExpiredTotal.Add(float64(n))
}

func RecordCheckin(result string) {
	CheckinsTotal.WithLabelValues(result).Inc()
}

func RecordLateFees(n int) {
	LateFeesAppliedTotal.Add(float64(n))
}

func SetOverdueInstallments(n int) {
	OverdueInstallments.Set(float64(n))
}

func RecordNotification(kind, status string) {
	NotificationsSentTotal.WithLabelValues(kind, status).Inc()
}
