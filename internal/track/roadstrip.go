package track

import (
	"fmt"
	"io"

	"roadstrip/internal/aabb"
	"roadstrip/internal/common"
	"roadstrip/internal/logger"
	"roadstrip/internal/metrics"
)

// CloseTolerance is how far the last patch's front corners may be from the
// first patch's back corners for the strip to count as a loop.
const CloseTolerance = 0.1

// NoPatch marks a missing successor or hint.
const NoPatch = -1

// Strip is an ordered chain of road patches, optionally closed into a loop,
// with a spatial index over the patch boxes. A Strip does not change after
// Build returns, so queries may run concurrently.
type Strip struct {
	patches  []Patch
	next     []int
	closed   bool
	index    *aabb.Index
	rejected int
}

// Build reads a strip of Bezier patches. See BuildWith.
func Build(r io.Reader, reverse bool, diag io.Writer) *Strip {
	return BuildWith(r, NewBezierPatch, reverse, diag)
}

// BuildWith reads a patch count and then that many patch records from r.
// Patches failing validation are dropped and their number is reported to
// diag once. Building never fails: a bad count or a stream that ends early
// just yields fewer patches.
func BuildWith(r io.Reader, newPatch func() Patch, reverse bool, diag io.Writer) *Strip {
	src := common.NewTokenReader(r)
	l := logger.L()

	num, err := src.Int()
	if err != nil || num < 0 {
		l.Warn("strip_bad_count", "err", err, "count", num)
		num = 0
	}

	s := &Strip{}
	for i := 0; i < num; i++ {
		p := newPatch()
		if err := p.ReadGeometry(src); err != nil {
			l.Warn("strip_source_exhausted", "declared", num, "read", i, "err", err)
			break
		}
		if p.CheckForProblems() {
			s.rejected++
			continue
		}
		s.patches = append(s.patches, p)
	}

	if s.rejected > 0 {
		if diag != nil {
			fmt.Fprintf(diag, "Rejected %d bezier patch(es) from roadstrip due to errors\n", s.rejected)
		}
		l.Warn("strip_patch_rejected", "count", s.rejected)
	}

	if reverse {
		for i, j := 0, len(s.patches)-1; i < j; i, j = i+1, j-1 {
			s.patches[i], s.patches[j] = s.patches[j], s.patches[i]
		}
		for _, p := range s.patches {
			p.Reverse()
		}
	}

	s.closed = endsMeet(s.patches)
	s.chain()
	s.index = buildIndex(s.patches)

	metrics.BuildsTotal.Inc()
	metrics.RejectedPatchesTotal.Add(float64(s.rejected))
	metrics.StripPatches.Set(float64(len(s.patches)))
	l.Debug("strip_build_ok", "patches", len(s.patches), "rejected", s.rejected, "closed", s.closed, "reversed", reverse)
	return s
}

// endsMeet reports whether the last patch leads back into the first.
func endsMeet(patches []Patch) bool {
	if len(patches) <= 2 {
		return false
	}
	first, last := patches[0], patches[len(patches)-1]
	return last.FL().Distance(first.BL()) < CloseTolerance &&
		last.FR().Distance(first.BR()) < CloseTolerance
}

// chain links every patch to its successor, and the last to the first when
// the strip is closed.
func (s *Strip) chain() {
	n := len(s.patches)
	s.next = make([]int, n)
	for i := range s.next {
		s.next[i] = i + 1
	}
	if n == 0 {
		return
	}
	s.next[n-1] = NoPatch
	if s.closed {
		s.next[n-1] = 0
	}
}

func buildIndex(patches []Patch) *aabb.Index {
	boxes := make([]aabb.Box, len(patches))
	for i, p := range patches {
		boxes[i] = p.AABB()
	}
	return aabb.NewIndex(boxes)
}

// Len returns the number of patches.
func (s *Strip) Len() int {
	return len(s.patches)
}

// Closed reports whether the strip forms a loop.
func (s *Strip) Closed() bool {
	return s.closed
}

// Rejected returns how many patches the build discarded.
func (s *Strip) Rejected() int {
	return s.rejected
}

// PatchAt returns the patch at position i, or nil when i is out of range.
func (s *Strip) PatchAt(i int) Patch {
	if i < 0 || i >= len(s.patches) {
		return nil
	}
	return s.patches[i]
}

// Next returns the position of the patch attached after i, or NoPatch.
func (s *Strip) Next(i int) int {
	if i < 0 || i >= len(s.next) {
		return NoPatch
	}
	return s.next[i]
}

// Bounds returns the box around every patch.
func (s *Strip) Bounds() aabb.Box {
	return s.index.Bounds()
}
