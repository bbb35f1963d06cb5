package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dtek_notifier"

// Cycle results
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Delivery actions
const (
	ActionSent        = "sent"
	ActionEdited      = "edited"
	ActionNotModified = "not_modified"
	ActionFailed      = "failed"
)

type Prometheus struct {
	cyclesTotal        *prometheus.CounterVec
	deliveriesTotal    *prometheus.CounterVec
	powerOn            prometheus.Gauge
	minutesToNextEvent prometheus.Gauge
	handler            http.Handler
}

// New registers collectors in reg. The returned handler serves reg.
func New(reg *prometheus.Registry) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		cyclesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total number of monitoring cycles by result",
		}, []string{"result"}),

		deliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Total number of per-chat deliveries by action",
		}, []string{"action"}),

		powerOn: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "power_on",
			Help:      "1 when power is expected to be on at the last cycle, 0 otherwise",
		}),

		minutesToNextEvent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "minutes_to_next_event",
			Help:      "Minutes until the next power change, -1 when none is scheduled",
		}),

		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
}

func (m *Prometheus) IncCycles(result string) {
	m.cyclesTotal.WithLabelValues(result).Inc()
}

func (m *Prometheus) IncDeliveries(action string) {
	m.deliveriesTotal.WithLabelValues(action).Inc()
}

func (m *Prometheus) SetPowerStatus(hasPower bool, minutesToNextEvent int) {
	v := 0.0
	if hasPower {
		v = 1
	}
	m.powerOn.Set(v)
	m.minutesToNextEvent.Set(float64(minutesToNextEvent))
}

func (m *Prometheus) Handler() http.Handler {
	return m.handler
}

// Noop is used when metrics are disabled.
type Noop struct{}

func (Noop) IncCycles(string)         {}
func (Noop) IncDeliveries(string)     {}
func (Noop) SetPowerStatus(bool, int) {}
