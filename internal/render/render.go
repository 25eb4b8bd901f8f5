// Package render draws strips, scene ribbons and cars with ebiten, top down.
package render

import (
	"image/color"
	"math"

	"roadstrip/internal/aabb"
	"roadstrip/internal/common"
	"roadstrip/internal/physics"
	"roadstrip/internal/scene"
	"roadstrip/internal/track"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors
var (
	ColorRoad       = color.RGBA{80, 80, 80, 255}
	ColorRoadEdge   = color.RGBA{140, 140, 140, 255}
	ColorHitPatch   = color.RGBA{60, 110, 60, 255}
	ColorCar        = color.RGBA{255, 0, 0, 255}
	ColorCarHeading = color.RGBA{255, 255, 0, 255}
	ColorWheelOff   = color.RGBA{255, 0, 255, 255}
)

// View maps world ground-plane coordinates to screen pixels. World Y points
// up, screen Y down.
type View struct {
	Scale            float32
	OffsetX, OffsetY float32
	ScreenHeight     float32
}

// FitView centres bounds in a w x h screen, leaving a fraction of margin.
func FitView(b aabb.Box, w, h int, margin float64) View {
	size := b.Size()
	if b.IsEmpty() || size.X <= 0 || size.Y <= 0 {
		return View{Scale: 1, ScreenHeight: float32(h)}
	}
	scale := math.Min(float64(w)/size.X, float64(h)/size.Y) * margin
	v := View{Scale: float32(scale), ScreenHeight: float32(h)}
	v.OffsetX = float32((float64(w)-size.X*scale)/2 - b.Min.X*scale)
	v.OffsetY = float32((float64(h)-size.Y*scale)/2 - b.Min.Y*scale)
	return v
}

// ToScreen converts a world point.
func (v View) ToScreen(p common.Vec2) (float32, float32) {
	x := float32(p.X)*v.Scale + v.OffsetX
	y := float32(p.Y)*v.Scale + v.OffsetY
	return x, v.ScreenHeight - y
}

func (v View) fill(screen *ebiten.Image, pts []common.Vec2, clr color.Color) {
	var path vector.Path
	for i, p := range pts {
		x, y := v.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	var cs ebiten.ColorScale
	cs.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}

func (v View) line(screen *ebiten.Image, a, b common.Vec2, width float32, clr color.Color) {
	x0, y0 := v.ToScreen(a)
	x1, y1 := v.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// DrawStrip fills every patch and outlines the strip edges. Patches in
// highlight are drawn in ColorHitPatch.
func DrawStrip(screen *ebiten.Image, s *track.Strip, v View, highlight map[int]bool) {
	for i := 0; i < s.Len(); i++ {
		p := s.PatchAt(i)
		quad := []common.Vec2{
			common.TopDown(p.FL()), common.TopDown(p.FR()),
			common.TopDown(p.BR()), common.TopDown(p.BL()),
		}
		clr := ColorRoad
		if highlight[i] {
			clr = ColorHitPatch
		}
		v.fill(screen, quad, clr)
		v.line(screen, quad[0], quad[3], 1, ColorRoadEdge)
		v.line(screen, quad[1], quad[2], 1, ColorRoadEdge)
	}
}

// DrawScene fills every visible ribbon under root with its material color.
func DrawScene(screen *ebiten.Image, root *scene.Node, v View) {
	root.Walk(func(n *scene.Node) bool {
		if n.Ribbon == nil {
			return true
		}
		clr := color.Color(color.White)
		if m := n.EffectiveMaterial(); m != nil {
			clr = m.Color
		}
		pts := make([]common.Vec2, 0, len(n.Ribbon.Vertices))
		for _, p := range n.Ribbon.Vertices {
			pts = append(pts, common.TopDown(p))
		}
		v.fill(screen, pts, clr)
		return true
	})
}

// DrawCar draws the body as a rotated rectangle, a heading tick and a
// marker on any wheel that lost the road.
func DrawCar(screen *ebiten.Image, c *physics.Car, v View) {
	body := make([]common.Vec2, 0, 4)
	for _, i := range []int{0, 1, 3, 2} {
		body = append(body, c.WheelPosition(i, c.Position, c.Heading))
	}
	v.fill(screen, body, ColorCar)

	tip := c.Position.Add(common.Vec2{X: math.Cos(c.Heading), Y: math.Sin(c.Heading)}.Scale(c.Length/2 + 1))
	v.line(screen, c.Position, tip, 2, ColorCarHeading)

	for i, w := range c.Wheels {
		if w.OnRoad {
			continue
		}
		x, y := v.ToScreen(c.WheelPosition(i, c.Position, c.Heading))
		vector.FillRect(screen, x-2, y-2, 4, 4, ColorWheelOff, true)
	}
}
