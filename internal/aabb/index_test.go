package aabb

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// row returns n unit boxes laid along X with a gap between them.
func row(n int) []Box {
	boxes := make([]Box, n)
	for i := range boxes {
		x := float64(i) * 2
		boxes[i] = Box{Min: v(x, 0, 0), Max: v(x+1, 1, 0)}
	}
	return boxes
}

func TestIndexQuery(t *testing.T) {
	ix := NewIndex(row(10))
	if got := ix.Len(); got != 10 {
		t.Fatalf("Len() = %d, want 10", got)
	}
	tests := []struct {
		name string
		ray  Ray
		want []int
	}{
		{"down onto third box", NewRay(v(4.5, 0.5, 3), v(0, 0, -1), 5), []int{2}},
		{"down into a gap", NewRay(v(5.5, 0.5, 3), v(0, 0, -1), 5), nil},
		{"along the row", NewRay(v(-1, 0.5, 0), v(1, 0, 0), 8), []int{0, 1, 2, 3}},
		{"above the row", NewRay(v(-1, 0.5, 2), v(1, 0, 0), 30), nil},
		{"ends short", NewRay(v(4.5, 0.5, 3), v(0, 0, -1), 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ix.Query(tt.ray)); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndexEmpty(t *testing.T) {
	for _, ix := range []*Index{nil, NewIndex(nil), NewIndex([]Box{Empty()})} {
		if got := ix.Query(NewRay(v(0, 0, 1), v(0, 0, -1), 10)); got != nil {
			t.Errorf("Query() on empty index = %v, want nil", got)
		}
		if ix.Len() != 0 {
			t.Errorf("Len() = %d, want 0", ix.Len())
		}
	}
}

func TestIndexKeepsPositionsWhenSkipping(t *testing.T) {
	boxes := row(3)
	boxes[1] = Empty()
	ix := NewIndex(boxes)
	got := ix.Query(NewRay(v(-1, 0.5, 0), v(1, 0, 0), 10))
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Errorf("Query() mismatch (-want +got):\n%s", diff)
	}
}

// The index may over-report but must agree with a brute force slab test on
// every box the ray really crosses.
func TestIndexMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	boxes := make([]Box, 200)
	for i := range boxes {
		p := v(rng.Float64()*100, rng.Float64()*100, rng.Float64()*5)
		boxes[i] = Of(p, p.Add(v(rng.Float64()*4, rng.Float64()*4, rng.Float64())))
	}
	ix := NewIndex(boxes)
	for i := 0; i < 500; i++ {
		origin := v(rng.Float64()*100, rng.Float64()*100, 10)
		dir := v(rng.Float64()-0.5, rng.Float64()-0.5, -1).Normalize()
		r := NewRay(origin, dir, 20)
		got := map[int]bool{}
		for _, id := range ix.Query(r) {
			got[id] = true
		}
		for id, b := range boxes {
			if b.IntersectsRay(r) && !got[id] {
				t.Fatalf("ray %d: box %d intersects but was not returned", i, id)
			}
		}
	}
}
