package scene

import (
	"fmt"

	"roadstrip/internal/track"

	"github.com/golang/geo/r3"
)

// RibbonLift raises ribbons above the road so they do not z-fight with it.
const RibbonLift = 0.02

var up = r3.Vector{Z: 1}

// RibbonBuilder lays a ribbon between the racing line points of adjacent
// patches, under Parent and drawn with Material.
type RibbonBuilder struct {
	Parent   *Node
	Material *Material
	Width    float64

	count int
}

var _ track.RacingLineSink = (*RibbonBuilder)(nil)

// NewRibbonBuilder returns a builder adding to parent.
func NewRibbonBuilder(parent *Node, mat *Material, width float64) *RibbonBuilder {
	return &RibbonBuilder{Parent: parent, Material: mat, Width: width}
}

// AddRacingLine implements track.RacingLineSink. Pairs whose racing line
// points coincide add nothing.
func (b *RibbonBuilder) AddRacingLine(from, to track.Patch) {
	start := from.RacingLine()
	end := to.RacingLine()
	along := end.Sub(start)
	if along.Norm2() == 0 {
		return
	}
	side := along.Cross(up)
	if side.Norm2() == 0 {
		// Vertical segment; pick any horizontal side.
		side = r3.Vector{X: 1}
	}
	side = side.Normalize().Mul(b.Width / 2)
	lift := up.Mul(RibbonLift)

	n := NewNode(fmt.Sprintf("racingline.%d", b.count))
	n.Material = b.Material
	n.Ribbon = &Ribbon{Vertices: [4]r3.Vector{
		start.Sub(side).Add(lift),
		start.Add(side).Add(lift),
		end.Add(side).Add(lift),
		end.Sub(side).Add(lift),
	}}
	b.Parent.AddChild(n)
	b.count++
}

// Count returns the number of ribbons added.
func (b *RibbonBuilder) Count() int {
	return b.count
}

// CreateRacingLine adds a "racingline" node under parent holding one ribbon
// per adjacent patch pair of s, and returns it.
func CreateRacingLine(parent *Node, s *track.Strip, mat *Material, width float64) *Node {
	group := parent.AddChild(NewNode("racingline"))
	group.Material = mat
	s.EmitRacingLine(NewRibbonBuilder(group, mat, width))
	return group
}
