package trackgen

import (
	"testing"
)

func TestOvalCloses(t *testing.T) {
	patches := Oval(24, 60, 40, 8)
	if len(patches) != 24 {
		t.Fatalf("len = %d, want 24", len(patches))
	}
	first, last := patches[0], patches[len(patches)-1]
	if d := last.FL().Distance(first.BL()); d > 1e-9 {
		t.Errorf("last FL to first BL = %v", d)
	}
	if d := last.FR().Distance(first.BR()); d > 1e-9 {
		t.Errorf("last FR to first BR = %v", d)
	}
	for i, p := range patches {
		if p.CheckForProblems() {
			t.Errorf("patch %d has problems", i)
		}
		if w := p.FL().Distance(p.FR()); w < 7.99 || w > 8.01 {
			t.Errorf("patch %d width = %v, want 8", i, w)
		}
	}
}

func TestStraightIsChained(t *testing.T) {
	patches := Straight(4, 10, 6)
	for i := 1; i < len(patches); i++ {
		if patches[i-1].FL() != patches[i].BL() || patches[i-1].FR() != patches[i].BR() {
			t.Errorf("patch %d does not continue patch %d", i, i-1)
		}
	}
	if Oval(0, 1, 1, 1) != nil {
		t.Error("Oval(0) should be nil")
	}
}
