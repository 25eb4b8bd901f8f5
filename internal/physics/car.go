package physics

import (
	"math"

	"roadstrip/internal/common"
	"roadstrip/internal/track"

	"github.com/golang/geo/r3"
)

const (
	MaxSpeed     = 0.8 // World units per tick
	Acceleration = 0.02
	Braking      = 0.04
	Friction     = 0.005 // Air resistance / Rolling resistance
	TurnSpeed    = 0.04  // Radians per tick
)

// DefaultProbeLength is how far below the car body a wheel looks for road.
const DefaultProbeLength = 4.0

var down = r3.Vector{Z: -1}

// Wheel is one ground contact of the car. Its probe keeps the last patch it
// landed on, so the next tick usually resolves with a single patch test.
type Wheel struct {
	Offset  common.Vec2 // Local offset (x forward, y left)
	Probe   *track.Probe
	Contact track.Contact
	OnRoad  bool
}

type Car struct {
	Position common.Vec2
	Height   float64 // Mean road height under the wheels
	Velocity common.Vec2
	Heading  float64 // Radians
	Speed    float64 // Scalar speed (forward/backward)
	Crashed  bool    // Set when a wheel leaves the strip

	// Dimensions (world units)
	Width  float64
	Length float64

	Wheels      [4]Wheel
	ProbeLength float64

	// Race State
	Checkpoint     int // Index of the last passed waypoint
	Laps           int
	CurrentLapTime int // Ticks for current lap
	LastLapTime    int // Ticks for previous lap
}

func NewCar(x, y float64) *Car {
	c := &Car{
		Position:    common.Vec2{X: x, Y: y},
		Width:       1.8,
		Length:      4.2,
		ProbeLength: DefaultProbeLength,
		Checkpoint:  -1, // Not started
	}
	halfW := c.Width / 2
	halfL := c.Length / 2
	offsets := [4]common.Vec2{
		{X: halfL, Y: -halfW},  // Front Right
		{X: halfL, Y: halfW},   // Front Left
		{X: -halfL, Y: -halfW}, // Rear Right
		{X: -halfL, Y: halfW},  // Rear Left
	}
	for i := range c.Wheels {
		c.Wheels[i] = Wheel{Offset: offsets[i], Probe: track.NewProbe()}
	}
	return c
}

// WheelPosition returns the ground-plane position of wheel i for a car at
// pos facing heading.
func (c *Car) WheelPosition(i int, pos common.Vec2, heading float64) common.Vec2 {
	off := c.Wheels[i].Offset
	cosH := math.Cos(heading)
	sinH := math.Sin(heading)
	return common.Vec2{
		X: pos.X + off.X*cosH - off.Y*sinH,
		Y: pos.Y + off.X*sinH + off.Y*cosH,
	}
}

// Settle drops the wheels onto the strip at the current position and sets
// the height. It reports false, and marks the car crashed, if any wheel
// finds no road.
func (c *Car) Settle(strip *track.Strip) bool {
	return c.touchdown(strip, c.Position)
}

func (c *Car) touchdown(strip *track.Strip, pos common.Vec2) bool {
	sum := 0.0
	for i := range c.Wheels {
		w := &c.Wheels[i]
		p := c.WheelPosition(i, pos, c.Heading)
		origin := common.Lift(p, c.Height+c.ProbeLength/2)
		w.Contact, w.OnRoad = w.Probe.Cast(strip, origin, down, c.ProbeLength)
		if !w.OnRoad {
			c.Crashed = true
			c.Speed = 0
			return false
		}
		sum += w.Contact.Point.Z
	}
	c.Height = sum / float64(len(c.Wheels))
	return true
}

// Update advances the car physics.
// throttle: 0.0 to 1.0
// brake: 0.0 to 1.0
// steering: -1.0 (left) to 1.0 (right)
func (c *Car) Update(strip *track.Strip, throttle, brake, steering float64) {
	if c.Crashed {
		return
	}

	// 1. Apply Input
	if throttle > 0 {
		c.Speed += throttle * Acceleration
	}
	if brake > 0 {
		c.Speed -= brake * Braking
	}

	// 2. Apply Drag/Friction (Natural deceleration)
	if c.Speed > 0 {
		c.Speed = math.Max(0, c.Speed-Friction)
	} else if c.Speed < 0 {
		c.Speed = math.Min(0, c.Speed+Friction)
	}
	c.Speed = math.Min(c.Speed, MaxSpeed)

	// 3. Steering, only while moving. Positive steering turns right, which
	// is clockwise seen from above.
	if math.Abs(c.Speed) > 0.01 {
		c.Heading -= steering * TurnSpeed
	}

	// 4. Velocity follows the heading with some slip.
	grip := 0.9
	target := common.Vec2{X: math.Cos(c.Heading), Y: math.Sin(c.Heading)}.Scale(c.Speed)
	c.Velocity = c.Velocity.Scale(1 - grip).Add(target.Scale(grip))

	// 5. Put the wheels down at the new position.
	newPos := c.Position.Add(c.Velocity)
	if !c.touchdown(strip, newPos) {
		return
	}
	c.Position = newPos
}
