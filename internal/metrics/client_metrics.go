package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// ClientMetrics interface para as métricas de operações sobre clientes
type ClientMetrics interface {
	IncOperation(operation, scope string)
	ObserveImportSize(rows int, scope string)
	IncLogin(scope string)
	IncLoginRejected()
}

type clientMetrics struct {
	log        *logger.Logger
	operations *prometheus.CounterVec
	importRows *prometheus.HistogramVec
	logins     *prometheus.CounterVec
	rejected   prometheus.Counter
}

// NewClientMetrics cria as métricas de operações sobre clientes
func NewClientMetrics(registry *prometheus.Registry, log *logger.Logger) ClientMetrics {
	operations := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_operations_total",
			Help: "The total number of client record operations",
		},
		[]string{"operation", "scope"},
	)

	importRows := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_import_rows",
			Help:    "Distribution of rows per CSV import",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6), // 1, 4, 16, 64, 256, 1024
		},
		[]string{"scope"},
	)

	logins := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "The total number of successful logins by scope",
		},
		[]string{"scope"},
	)

	rejected := promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "logins_rejected_total",
			Help: "The total number of rejected login attempts",
		},
	)

	return &clientMetrics{
		log:        log,
		operations: operations,
		importRows: importRows,
		logins:     logins,
		rejected:   rejected,
	}
}

// IncOperation incrementa o contador de uma operação sobre clientes
func (m *clientMetrics) IncOperation(operation, scope string) {
	m.operations.WithLabelValues(operation, scope).Inc()
}

// ObserveImportSize registra o tamanho de uma importação CSV
func (m *clientMetrics) ObserveImportSize(rows int, scope string) {
	m.importRows.WithLabelValues(scope).Observe(float64(rows))
}

// IncLogin incrementa o contador de logins bem-sucedidos
func (m *clientMetrics) IncLogin(scope string) {
	m.logins.WithLabelValues(scope).Inc()
}

// IncLoginRejected incrementa o contador de logins rejeitados
func (m *clientMetrics) IncLoginRejected() {
	m.rejected.Inc()
}

// NoopClientMetrics métricas descartadas, usadas nos testes.
type NoopClientMetrics struct{}

func (NoopClientMetrics) IncOperation(operation, scope string)  {}
func (NoopClientMetrics) ObserveImportSize(rows int, scope string) {}
func (NoopClientMetrics) IncLogin(scope string)                 {}
func (NoopClientMetrics) IncLoginRejected()                     {}
