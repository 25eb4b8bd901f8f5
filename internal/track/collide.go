package track

import (
	"roadstrip/internal/aabb"
	"roadstrip/internal/metrics"

	"github.com/golang/geo/r3"
)

// Collide casts the segment origin + dir*t, t in [0, seglen], at the strip.
//
// If hint is a valid patch position that patch is tried first and a hit on
// it is returned straight away, even if another patch is closer. Otherwise
// every patch the index reports is tested and the hit nearest to origin
// wins; on equal distance the lower position wins. Contact.Patch is the hint
// to pass next time. On a miss the caller should keep its old hint.
func (s *Strip) Collide(origin, dir r3.Vector, seglen float64, hint int) (Contact, bool) {
	if p := s.PatchAt(hint); p != nil {
		if point, normal, ok := p.Collide(origin, dir, seglen); ok {
			metrics.CollideTotal.WithLabelValues(metrics.PathHint).Inc()
			return Contact{Point: point, Normal: normal, Patch: hint}, true
		}
	}

	var (
		best     Contact
		bestDist float64
		found    bool
	)
	candidates := s.index.Query(aabb.NewRay(origin, dir, seglen))
	metrics.CollideCandidates.Observe(float64(len(candidates)))
	for _, i := range candidates {
		point, normal, ok := s.patches[i].Collide(origin, dir, seglen)
		if !ok {
			continue
		}
		d := point.Sub(origin).Norm2()
		if !found || d < bestDist {
			best = Contact{Point: point, Normal: normal, Patch: i}
			bestDist = d
			found = true
		}
	}

	if !found {
		metrics.CollideTotal.WithLabelValues(metrics.PathMiss).Inc()
		return Contact{}, false
	}
	metrics.CollideTotal.WithLabelValues(metrics.PathIndex).Inc()
	return best, true
}

// Probe remembers the last patch it hit so consecutive casts from a moving
// origin start with that patch. A Probe is not safe for concurrent use; give
// each caster its own.
type Probe struct {
	Hint int
}

// NewProbe returns a probe without a hint.
func NewProbe() *Probe {
	return &Probe{Hint: NoPatch}
}

// Cast runs Collide with the probe's hint and keeps the hit patch.
func (p *Probe) Cast(s *Strip, origin, dir r3.Vector, seglen float64) (Contact, bool) {
	c, ok := s.Collide(origin, dir, seglen, p.Hint)
	if ok {
		p.Hint = c.Patch
	}
	return c, ok
}

// Reset drops the hint, for use after the strip is rebuilt.
func (p *Probe) Reset() {
	p.Hint = NoPatch
}
