// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector 指标收集器：统计校验与翻译的次数、失败数与耗时。
type Collector struct {
	validationsTotal  *prometheus.CounterVec
	translationsTotal *prometheus.CounterVec
	translationErrors *prometheus.CounterVec
	translationTime   *prometheus.HistogramVec
}

// New creates a Collector registered on the given registerer.
func New(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		validationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Workflow validations by outcome.",
			},
			[]string{"outcome"},
		),
		translationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translations_total",
				Help:      "Workflow translations by target.",
			},
			[]string{"target"},
		),
		translationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translation_errors_total",
				Help:      "Failed workflow translations by target.",
			},
			[]string{"target"},
		),
		translationTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "translation_duration_seconds",
				Help:      "Translation duration by target.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"target"},
		),
	}
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide Collector, registered once on the
// default prometheus registerer.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultCollector = New("agentport", prometheus.DefaultRegisterer)
	})
	return defaultCollector
}

// ObserveValidation records one validation outcome ("success"/"failure").
func (c *Collector) ObserveValidation(outcome string) {
	c.validationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveTranslation records one translation attempt and its duration.
func (c *Collector) ObserveTranslation(target string, d time.Duration, err error) {
	c.translationsTotal.WithLabelValues(target).Inc()
	c.translationTime.WithLabelValues(target).Observe(d.Seconds())
	if err != nil {
		c.translationErrors.WithLabelValues(target).Inc()
	}
}
