package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the reconciliation engine's Prometheus collectors.
// The scheduled audit job and the sweep command feed these; main mounts
// Handler() on /metrics.
type Registry struct {
	reg              *prometheus.Registry
	ProductsAudited  prometheus.Counter
	DriftDetected    prometheus.Counter
	ProductsRepaired prometheus.Counter
	RepairFailures   prometheus.Counter
	AuditRunSec      prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	audited := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_products_audited_total"})
	drift := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_drift_detected_total"})
	repaired := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_products_repaired_total"})
	failures := prometheus.NewCounter(prometheus.CounterOpts{Name: "fulfillment_repair_failures_total"})
	runSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fulfillment_audit_run_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(audited, drift, repaired, failures, runSec)
	return &Registry{
		reg:              r,
		ProductsAudited:  audited,
		DriftDetected:    drift,
		ProductsRepaired: repaired,
		RepairFailures:   failures,
		AuditRunSec:      runSec,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
