// Package metrics exposes prometheus counters for the generation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the pipeline counters. Register once per process.
type Metrics struct {
	GenerationRequests *prometheus.CounterVec
	SectionsGenerated  prometheus.Counter
	SectionsFailed     prometheus.Counter
	ProviderFallbacks  prometheus.Counter
}

// New registers the counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GenerationRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegen_generation_requests_total",
			Help: "Generation requests by outcome.",
		}, []string{"status"}),
		SectionsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "sitegen_sections_generated_total",
			Help: "Sections successfully populated.",
		}),
		SectionsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "sitegen_sections_failed_total",
			Help: "Sections skipped after a population failure.",
		}),
		ProviderFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "sitegen_provider_fallbacks_total",
			Help: "Requests where the provider fell back to templates.",
		}),
	}
}

// NewNop returns metrics backed by a throwaway registry, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
