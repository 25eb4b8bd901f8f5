package agent

import (
	"fmt"
	"math"

	"roadstrip/internal/common"
	"roadstrip/internal/physics"
	"roadstrip/internal/track"
)

// Defaults for the racing line follower.
const (
	DefaultLookahead   = 2   // Waypoints ahead of the closest one
	DefaultTargetSpeed = 0.5 // World units per tick
	DefaultSteerGain   = 2.5
)

// State is what the agent sees of the car relative to the racing line.
type State struct {
	WaypointIdx int
	Lateral     float64 // Offset from the racing line (positive = right)
	HeadingErr  float64 // Radians to turn left to face the lookahead point
	Speed       float64
}

// Controls are the pedal and wheel inputs for one tick.
type Controls struct {
	Throttle, Brake, Steering float64
}

type Agent interface {
	Observe(c *physics.Car) State
	SelectAction(state State) Controls
	DebugInfoStr() string
}

// Follower chases a point a few waypoints ahead on the racing line.
type Follower struct {
	Mesh        *track.TrackMesh
	Lookahead   int
	TargetSpeed float64
	SteerGain   float64
}

func NewFollower(mesh *track.TrackMesh) *Follower {
	return &Follower{
		Mesh:        mesh,
		Lookahead:   DefaultLookahead,
		TargetSpeed: DefaultTargetSpeed,
		SteerGain:   DefaultSteerGain,
	}
}

// Observe measures the car against the mesh.
func (f *Follower) Observe(c *physics.Car) State {
	wp, idx := f.Mesh.GetClosestWaypoint(c.Position)
	if idx < 0 {
		return State{WaypointIdx: -1, Speed: c.Speed}
	}
	target := f.Mesh.Ahead(idx, f.Lookahead).Position.Sub(c.Position)
	return State{
		WaypointIdx: idx,
		Lateral:     c.Position.Sub(wp.Position).Dot(wp.Normal),
		HeadingErr:  wrapAngle(math.Atan2(target.Y, target.X) - c.Heading),
		Speed:       c.Speed,
	}
}

// SelectAction steers towards the lookahead point and holds the target
// speed, easing off in tight turns.
func (f *Follower) SelectAction(st State) Controls {
	if st.WaypointIdx < 0 {
		return Controls{Brake: 1}
	}
	var ctl Controls
	ctl.Steering = clamp(-st.HeadingErr*f.SteerGain, -1, 1)

	want := f.TargetSpeed * (1 - 0.5*math.Min(1, math.Abs(st.HeadingErr)/(math.Pi/4)))
	switch {
	case st.Speed < want:
		ctl.Throttle = 1
	case st.Speed > want*1.2:
		ctl.Brake = 1
	}
	return ctl
}

func (f *Follower) DebugInfoStr() string {
	return fmt.Sprintf("Agent Type: Follower\nLookahead: %d\nTarget: %.2f", f.Lookahead, f.TargetSpeed)
}

// TrackProgress moves the car's checkpoint to the closest waypoint and counts
// a lap when it wraps from the end of a closed track back to the start.
func TrackProgress(c *physics.Car, mesh *track.TrackMesh) {
	_, idx := mesh.GetClosestWaypoint(c.Position)
	if idx < 0 {
		return
	}
	n := len(mesh.Waypoints)
	if mesh.Closed && c.Checkpoint > n*3/4 && idx < n/4 {
		c.Laps++
	}
	c.Checkpoint = idx
}

// Spawn places a car on waypoint idx facing the next waypoint.
func Spawn(mesh *track.TrackMesh, idx int) *physics.Car {
	if len(mesh.Waypoints) == 0 {
		return physics.NewCar(0, 0)
	}
	if idx < 0 || idx >= len(mesh.Waypoints) {
		idx = 0
	}
	wp := mesh.Waypoints[idx]
	next := mesh.Ahead(idx, 1).Position
	dir := next.Sub(wp.Position)
	if dir == (common.Vec2{}) {
		// Last waypoint of an open track: face along the track tangent.
		dir = wp.Normal.Perp()
	}
	c := physics.NewCar(wp.Position.X, wp.Position.Y)
	c.Height = wp.Height
	c.Heading = math.Atan2(dir.Y, dir.X)
	c.Checkpoint = idx
	return c
}

func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
