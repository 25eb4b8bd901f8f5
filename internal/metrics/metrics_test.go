package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesCollectors(t *testing.T) {
	BuildsTotal.Inc()
	CollideTotal.WithLabelValues(PathHint).Inc()
	CollideCandidates.Observe(3)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"roadstrip_builds_total",
		`roadstrip_collide_total{path="hint"}`,
		"roadstrip_collide_candidates_bucket",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
