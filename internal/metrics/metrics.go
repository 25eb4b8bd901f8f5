package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collide paths.
const (
	PathHint  = "hint"
	PathIndex = "index"
	PathMiss  = "miss"
)

var (
	BuildsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadstrip_builds_total",
		Help: "Total road strip builds",
	})
	RejectedPatchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadstrip_rejected_patches_total",
		Help: "Total patches discarded by validation during builds",
	})
	StripPatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roadstrip_patches",
		Help: "Patch count of the most recently built strip",
	})
	CollideTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadstrip_collide_total",
		Help: "Ray queries by the path that answered them",
	}, []string{"path"})
	CollideCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roadstrip_collide_candidates",
		Help:    "Index candidates tested per ray query that missed the hint",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	})
)

func init() {
	prometheus.MustRegister(BuildsTotal)
	prometheus.MustRegister(RejectedPatchesTotal)
	prometheus.MustRegister(StripPatches)
	prometheus.MustRegister(CollideTotal)
	prometheus.MustRegister(CollideCandidates)
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
