package convert

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// Observer receives conversion outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	Converted(converter string, target viewmodel.Kind)
	Missed(objectType string, target viewmodel.Kind)
}

// PrometheusObserver counts conversions and dispatch misses.
type PrometheusObserver struct {
	conversions *prometheus.CounterVec
	misses      *prometheus.CounterVec
}

var _ Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the conversion counters with reg. A nil reg
// falls back to prometheus.DefaultRegisterer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journalvm",
			Name:      "conversions_total",
			Help:      "View-model conversions by converter and target kind.",
		}, []string{"converter", "target"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "journalvm",
			Name:      "conversion_misses_total",
			Help:      "Conversions that found no matching converter.",
		}, []string{"object_type", "target"}),
	}
	if err := reg.Register(o.conversions); err != nil {
		return nil, err
	}
	if err := reg.Register(o.misses); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *PrometheusObserver) Converted(converter string, target viewmodel.Kind) {
	o.conversions.WithLabelValues(converter, string(target)).Inc()
}

func (o *PrometheusObserver) Missed(objectType string, target viewmodel.Kind) {
	o.misses.WithLabelValues(objectType, string(target)).Inc()
}

// Conversions exposes the conversion counter, labelled by converter and
// target.
func (o *PrometheusObserver) Conversions() *prometheus.CounterVec { return o.conversions }

// Misses exposes the miss counter, labelled by object type and target.
func (o *PrometheusObserver) Misses() *prometheus.CounterVec { return o.misses }
