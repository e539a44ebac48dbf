package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PreferencesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_preferences_created_total",
		Help: "Total number of Mercado Pago preferences created",
	}, []string{"coupon_applied"})

	CouponRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coupons_rejected_total",
		Help: "Total number of checkouts refused because of an unknown or inactive coupon",
	})

	WebhookNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_webhook_notifications_total",
		Help: "Total number of payment notifications by outcome",
	}, []string{"outcome"})

	EnrollmentsGrantedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "enrollments_granted_total",
		Help: "Total number of course grants",
	}, []string{"source"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
