package track

import (
	"testing"

	"roadstrip/internal/trackgen"

	"github.com/google/go-cmp/cmp"
)

type pairRecorder struct {
	s     *Strip
	pairs [][2]int
}

func (r *pairRecorder) AddRacingLine(from, to Patch) {
	r.pairs = append(r.pairs, [2]int{r.position(from), r.position(to)})
}

func (r *pairRecorder) position(p Patch) int {
	for i := 0; i < r.s.Len(); i++ {
		if r.s.PatchAt(i) == p {
			return i
		}
	}
	return NoPatch
}

func TestEmitRacingLine(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][2]int
	}{
		{"empty", 0, nil},
		{"single", 1, [][2]int{{0, 0}}},
		{"open strip wraps", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := build(t, trackgen.Straight(tt.n, 10, 6), false)
			rec := &pairRecorder{s: s}
			s.EmitRacingLine(rec)
			if diff := cmp.Diff(tt.want, rec.pairs); diff != "" {
				t.Errorf("pairs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
