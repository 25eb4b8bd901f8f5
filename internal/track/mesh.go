package track

import (
	"math"

	"roadstrip/internal/common"
)

// Waypoint represents a racing line point, projected onto the ground plane.
type Waypoint struct {
	ID       int         // Patch position in the strip
	Position common.Vec2 // World coordinates (x, y)
	Height   float64     // World z
	Normal   common.Vec2 // Unit vector perpendicular to the track direction (pointing Right)
	Width    float64     // Width of the patch front edge
	Distance float64     // Distance from start (s-coordinate)
}

// TrackMesh represents the curvilinear coordinate system of the track.
type TrackMesh struct {
	Waypoints []Waypoint
	TotalLen  float64
	Closed    bool
}

// NewMesh walks the strip in order and places one waypoint per patch.
func NewMesh(s *Strip) *TrackMesh {
	m := &TrackMesh{Closed: s.Closed()}
	if s.Len() == 0 {
		return m
	}
	m.Waypoints = make([]Waypoint, s.Len())
	dist := 0.0
	for i := 0; i < s.Len(); i++ {
		p := s.PatchAt(i)
		rl := p.RacingLine()
		pos := common.TopDown(rl)
		if i > 0 {
			dist += pos.Sub(m.Waypoints[i-1].Position).Len()
		}
		// Right hand side of the front edge.
		right := common.TopDown(p.FR()).Sub(common.TopDown(p.FL()))
		m.Waypoints[i] = Waypoint{
			ID:       i,
			Position: pos,
			Height:   rl.Z,
			Normal:   right.Normalize(),
			Width:    p.FL().Distance(p.FR()),
			Distance: dist,
		}
	}
	m.TotalLen = dist
	if m.Closed {
		m.TotalLen += m.Waypoints[0].Position.Sub(m.Waypoints[len(m.Waypoints)-1].Position).Len()
	}
	return m
}

// GetClosestWaypoint finds the waypoint closest to the given world position.
// Returns the waypoint and its index.
// Linear search; strips are a few hundred patches.
func (m *TrackMesh) GetClosestWaypoint(pos common.Vec2) (Waypoint, int) {
	minDistSq := math.MaxFloat64
	closestIdx := -1

	for i, wp := range m.Waypoints {
		dx := pos.X - wp.Position.X
		dy := pos.Y - wp.Position.Y
		distSq := dx*dx + dy*dy
		if distSq < minDistSq {
			minDistSq = distSq
			closestIdx = i
		}
	}

	if closestIdx == -1 {
		return Waypoint{}, -1
	}
	return m.Waypoints[closestIdx], closestIdx
}

// Ahead returns the waypoint n steps after idx, wrapping on closed tracks and
// stopping at the last waypoint otherwise.
func (m *TrackMesh) Ahead(idx, n int) Waypoint {
	if len(m.Waypoints) == 0 {
		return Waypoint{}
	}
	j := idx + n
	if m.Closed {
		j %= len(m.Waypoints)
	} else if j >= len(m.Waypoints) {
		j = len(m.Waypoints) - 1
	}
	return m.Waypoints[j]
}

// WorldToFrenet converts World (x,y) to Frenet (s,d).
// s: Progress along track
// d: Lateral offset (positive = right of center, negative = left)
func (m *TrackMesh) WorldToFrenet(pos common.Vec2) (float64, float64) {
	wp, idx := m.GetClosestWaypoint(pos)
	if idx < 0 {
		return 0, 0
	}

	// Project the offset onto the normal for d.
	d := pos.Sub(wp.Position).Dot(wp.Normal)

	// s is the waypoint's distance; good enough at one waypoint per patch.
	s := wp.Distance

	return s, d
}
