package track

import (
	"math"
	"testing"

	"roadstrip/internal/common"
	"roadstrip/internal/trackgen"
)

func TestNewMeshStraight(t *testing.T) {
	s, _ := build(t, trackgen.Straight(4, 10, 6), false)
	m := NewMesh(s)
	if len(m.Waypoints) != 4 || m.Closed {
		t.Fatalf("waypoints=%d closed=%v", len(m.Waypoints), m.Closed)
	}
	for i, wp := range m.Waypoints {
		if math.Abs(wp.Distance-float64(i)*10) > 1e-9 || math.Abs(wp.Width-6) > 1e-9 {
			t.Errorf("waypoint %d = %+v", i, wp)
		}
	}
	if math.Abs(m.TotalLen-30) > 1e-9 {
		t.Errorf("TotalLen = %v, want 30", m.TotalLen)
	}

	s2, d := m.WorldToFrenet(common.Vec2{X: 2, Y: 21})
	if math.Abs(s2-10) > 1e-9 || math.Abs(d-2) > 1e-9 {
		t.Errorf("WorldToFrenet() = %v, %v; want 10, 2", s2, d)
	}
	if wp := m.Ahead(2, 5); wp.ID != 3 {
		t.Errorf("Ahead on open track = %d, want clamp to 3", wp.ID)
	}
}

func TestNewMeshClosed(t *testing.T) {
	s, _ := build(t, trackgen.Oval(20, 40, 40, 6), false)
	m := NewMesh(s)
	if !m.Closed {
		t.Fatal("mesh of a loop is not closed")
	}
	// A 20-gon around radius 40 is a bit shorter than the circle.
	if m.TotalLen < 240 || m.TotalLen > 2*math.Pi*40 {
		t.Errorf("TotalLen = %v", m.TotalLen)
	}
	if wp := m.Ahead(18, 3); wp.ID != 1 {
		t.Errorf("Ahead wraps to %d, want 1", wp.ID)
	}
	if _, idx := (&TrackMesh{}).GetClosestWaypoint(common.Vec2{}); idx != -1 {
		t.Errorf("empty mesh closest = %d", idx)
	}
}
