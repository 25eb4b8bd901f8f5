package scene

import (
	"bytes"
	"image/color"
	"testing"

	"roadstrip/internal/track"
	"roadstrip/internal/trackgen"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func strip(t *testing.T, enc []byte) *track.Strip {
	t.Helper()
	return track.Build(bytes.NewReader(enc), false, nil)
}

func TestCreateRacingLineClosed(t *testing.T) {
	s := strip(t, trackgen.Encode(trackgen.Oval(10, 30, 20, 6)))
	root := NewNode("root")
	mat := &Material{Name: "racingline", Color: color.RGBA{255, 255, 0, 255}}
	group := CreateRacingLine(root, s, mat, 1)

	if len(group.Children) != 10 {
		t.Fatalf("ribbons = %d, want 10", len(group.Children))
	}
	// The last ribbon wraps back to the first racing line point.
	last := group.Children[9].Ribbon.Vertices
	end := last[2].Add(last[3]).Mul(0.5)
	want := s.PatchAt(0).RacingLine().Add(r3.Vector{Z: RibbonLift})
	if diff := cmp.Diff(want, end, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("wrap ribbon end mismatch (-want +got):\n%s", diff)
	}
	if group.Children[3].EffectiveMaterial() != mat {
		t.Error("ribbon does not use the racing line material")
	}
}

func TestRibbonWidth(t *testing.T) {
	s := strip(t, trackgen.Encode(trackgen.Straight(3, 10, 6)))
	root := NewNode("root")
	b := NewRibbonBuilder(root, nil, 2)
	s.EmitRacingLine(b)
	if b.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", b.Count())
	}
	vs := root.Children[0].Ribbon.Vertices
	if w := vs[0].Distance(vs[1]); w < 2-1e-9 || w > 2+1e-9 {
		t.Errorf("ribbon width = %v, want 2", w)
	}
}

func TestSinglePatchAddsNothing(t *testing.T) {
	s := strip(t, trackgen.Encode(trackgen.Straight(1, 10, 6)))
	root := NewNode("root")
	b := NewRibbonBuilder(root, nil, 1)
	s.EmitRacingLine(b)
	if b.Count() != 0 || len(root.Children) != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}
}

func TestWalkSkipsHidden(t *testing.T) {
	root := NewNode("root")
	a := root.AddChild(NewNode("a"))
	a.AddChild(NewNode("a1"))
	hidden := root.AddChild(NewNode("b"))
	hidden.Visible = false
	hidden.AddChild(NewNode("b1"))

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	if diff := cmp.Diff([]string{"root", "a", "a1"}, names); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}
