package metrics

import (
	"net/http"
	"time"

	"github.com/0xalexb/sitecfg/nav"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sitecfg"

// Recorder holds the collectors. A nil *Recorder records nothing.
type Recorder struct {
	registry            *prom.Registry
	compositions        *prom.CounterVec
	compositionDuration prom.Histogram
	sidebarNodes        *prom.GaugeVec
	requests            *prom.CounterVec
	requestDuration     *prom.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg. A nil reg
// gets a fresh registry.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	rec := &Recorder{
		registry: reg,
		compositions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "compositions_total",
			Help:      "Site configuration compositions by outcome",
		}, []string{"outcome"}),
		compositionDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "composition_duration_seconds",
			Help:      "Time spent loading and composing the site configuration",
			Buckets:   prom.DefBuckets,
		}),
		sidebarNodes: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_nodes",
			Help:      "Navigation nodes in the composed sidebar by kind",
		}, []string{"kind"}),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests served by the configuration listener",
		}, []string{"code", "method"}),
		requestDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of requests served by the configuration listener",
			Buckets:   prom.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(
		rec.compositions,
		rec.compositionDuration,
		rec.sidebarNodes,
		rec.requests,
		rec.requestDuration,
	)

	return rec
}

// ObserveComposition records one composition attempt.
func (r *Recorder) ObserveComposition(duration time.Duration, err error) {
	if r == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	r.compositions.WithLabelValues(outcome).Inc()
	r.compositionDuration.Observe(duration.Seconds())
}

// SetSidebar publishes node counts of the composed sidebar.
func (r *Recorder) SetSidebar(stats nav.Stats) {
	if r == nil {
		return
	}

	r.sidebarNodes.WithLabelValues(string(nav.KindLink)).Set(float64(stats.Links))
	r.sidebarNodes.WithLabelValues(string(nav.KindGroup)).Set(float64(stats.Groups))
	r.sidebarNodes.WithLabelValues(string(nav.KindAutogen)).Set(float64(stats.Autogen))
}

// Middleware instruments a handler with request counts and latency.
func (r *Recorder) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if r == nil {
			return next
		}

		return promhttp.InstrumentHandlerDuration(r.requestDuration,
			promhttp.InstrumentHandlerCounter(r.requests, next))
	}
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
