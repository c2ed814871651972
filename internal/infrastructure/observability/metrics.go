package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Card metrics
	CardValidationsTotal  *prometheus.CounterVec
	CardValidationErrors  *prometheus.CounterVec
	BrandDetectionsTotal  *prometheus.CounterVec
	TokenizationsTotal    *prometheus.CounterVec
	TokenizationDuration  *prometheus.HistogramVec

	// Transfer readiness metrics
	ReadinessChecksTotal   *prometheus.CounterVec
	ReadinessCheckDuration *prometheus.HistogramVec

	// QR metrics
	QREncodesTotal    *prometheus.CounterVec
	QRDecodesTotal    *prometheus.CounterVec
	QRDecodeErrors    *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Circuit breaker metrics
	CircuitBreakerState    *prometheus.GaugeVec
	CircuitBreakerRequests *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics against the given registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := prometheus.WrapRegistererWith(nil, reg)

	m := &Metrics{
		CardValidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "card_validations_total",
				Help:      "Total number of card validations by result",
			},
			[]string{"result"},
		),
		CardValidationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "card_validation_errors_total",
				Help:      "Total number of card validation failures by error kind",
			},
			[]string{"error_kind"},
		),
		BrandDetectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "brand_detections_total",
				Help:      "Total number of brand detections by brand",
			},
			[]string{"brand"},
		),
		TokenizationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokenizations_total",
				Help:      "Total number of vault tokenizations by vault and status",
			},
			[]string{"vault", "status"},
		),
		TokenizationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tokenization_duration_seconds",
				Help:      "Vault tokenization duration in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"vault"},
		),
		ReadinessChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "readiness_checks_total",
				Help:      "Total number of transfer readiness checks by reason",
			},
			[]string{"reason"},
		),
		ReadinessCheckDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "readiness_check_duration_seconds",
				Help:      "Transfer readiness check duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"reason"},
		),
		QREncodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_encodes_total",
				Help:      "Total number of QR payload encodes by payload type",
			},
			[]string{"type"},
		),
		QRDecodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_decodes_total",
				Help:      "Total number of QR payload decodes by payload type",
			},
			[]string{"type"},
		),
		QRDecodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_decode_errors_total",
				Help:      "Total number of QR decode failures by error kind",
			},
			[]string{"error_kind"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		CircuitBreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),
		CircuitBreakerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_requests_total",
				Help:      "Total number of circuit breaker requests",
			},
			[]string{"name", "result"},
		),
	}

	// Register all collectors
	factory.MustRegister(
		m.CardValidationsTotal,
		m.CardValidationErrors,
		m.BrandDetectionsTotal,
		m.TokenizationsTotal,
		m.TokenizationDuration,
		m.ReadinessChecksTotal,
		m.ReadinessCheckDuration,
		m.QREncodesTotal,
		m.QRDecodesTotal,
		m.QRDecodeErrors,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CircuitBreakerState,
		m.CircuitBreakerRequests,
	)

	return m
}
