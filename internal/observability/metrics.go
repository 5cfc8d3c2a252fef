package observability

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "integra_recife"

// Observer captures telemetry for the calendar engine.
type Observer interface {
	RecordUnparseableDate()
	RecordTransition(source string, count int, duration time.Duration, err error)
	RecordIndexLookup(hit bool)
}

// PrometheusObserver exports calendar engine metrics to Prometheus.
type PrometheusObserver struct {
	unparseableDates   prometheus.Counter
	transitioned       *prometheus.CounterVec
	transitionRuns     *prometheus.CounterVec
	transitionDuration *prometheus.HistogramVec
	indexLookups       *prometheus.CounterVec
}

// NewPrometheusObserver registers the engine metrics on reg (default registerer when nil).
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	var err error
	o := &PrometheusObserver{}

	if o.unparseableDates, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unparseable_dates_total",
		Help:      "Event dates that matched no known encoding and fell back to now.",
	})); err != nil {
		return nil, err
	}
	if o.transitioned, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_concluded_total",
		Help:      "Events moved from ativo to concluido.",
	}, []string{"source"})); err != nil {
		return nil, err
	}
	if o.transitionRuns, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transition_runs_total",
		Help:      "Bulk status transition runs by source and result.",
	}, []string{"source", "result"})); err != nil {
		return nil, err
	}
	if o.transitionDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "status_transition_duration_seconds",
		Help:      "Latency of bulk status transition runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})); err != nil {
		return nil, err
	}
	if o.indexLookups, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "date_index_lookups_total",
		Help:      "Event date index cache lookups by result.",
	}, []string{"result"})); err != nil {
		return nil, err
	}
	return o, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// UnparseableDates exposes the fallback counter.
func (o *PrometheusObserver) UnparseableDates() prometheus.Counter { return o.unparseableDates }

func (o *PrometheusObserver) RecordUnparseableDate() {
	if o == nil {
		return
	}
	o.unparseableDates.Inc()
}

// RecordTransition tracks one bulk transition run.
func (o *PrometheusObserver) RecordTransition(source string, count int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.transitionDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		o.transitionRuns.WithLabelValues(source, "error").Inc()
		return
	}
	o.transitionRuns.WithLabelValues(source, "ok").Inc()
	o.transitioned.WithLabelValues(source).Add(float64(count))
}

func (o *PrometheusObserver) RecordIndexLookup(hit bool) {
	if o == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	o.indexLookups.WithLabelValues(result).Inc()
}

type nopObserver struct{}

// NewNopObserver returns an Observer that records nothing.
func NewNopObserver() Observer { return nopObserver{} }

func (nopObserver) RecordUnparseableDate() {}

func (nopObserver) RecordTransition(string, int, time.Duration, error) {}

func (nopObserver) RecordIndexLookup(bool) {}
