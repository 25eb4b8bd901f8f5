package track

import (
	"roadstrip/internal/aabb"
	"roadstrip/internal/bezier"
	"roadstrip/internal/common"

	"github.com/golang/geo/r3"
)

// Patch is one surface element of a strip.
type Patch interface {
	ReadGeometry(src *common.TokenReader) error
	CheckForProblems() bool // true when the patch must be discarded
	Reverse()
	AABB() aabb.Box
	FL() r3.Vector
	FR() r3.Vector
	BL() r3.Vector
	BR() r3.Vector
	Collide(origin, dir r3.Vector, seglen float64) (point, normal r3.Vector, ok bool)
	RacingLine() r3.Vector
}

var _ Patch = (*bezier.Patch)(nil)

// NewBezierPatch is the default patch constructor.
func NewBezierPatch() Patch {
	return &bezier.Patch{}
}

// Contact describes a ray hit on a strip.
type Contact struct {
	Point  r3.Vector
	Normal r3.Vector
	Patch  int // Position of the hit patch; pass it back as the next hint
}

// RacingLineSink receives adjacent patch pairs from EmitRacingLine.
type RacingLineSink interface {
	AddRacingLine(from, to Patch)
}
