package aabb

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Pad is added around every indexed box so that flat patches get a volume
// and rounding in the slab test never drops a true hit.
const Pad = 1e-4

// Tree fan-out passed to rtreego.
const (
	minChildren = 2
	maxChildren = 8
)

// entry wraps an indexed box for rtreego storage.
type entry struct {
	id   int
	box  Box
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an immutable spatial index over (id, box) pairs where the id is
// the box position in the slice it was built from. Build a new Index instead
// of changing one; Query is safe for concurrent use.
type Index struct {
	tree   *rtreego.Rtree
	size   int
	bounds Box
}

// NewIndex bulk loads the boxes. Empty boxes are skipped and never returned
// by Query.
func NewIndex(boxes []Box) *Index {
	objs := make([]rtreego.Spatial, 0, len(boxes))
	bounds := Empty()
	for i, b := range boxes {
		if b.IsEmpty() {
			continue
		}
		b = b.Pad(Pad)
		rect, err := toRect(b)
		if err != nil {
			continue
		}
		objs = append(objs, &entry{id: i, box: b, rect: rect})
		bounds = bounds.Union(b)
	}
	return &Index{
		tree:   rtreego.NewTree(3, minChildren, maxChildren, objs...),
		size:   len(objs),
		bounds: bounds,
	}
}

// Len returns the number of indexed boxes.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.size
}

// Query returns the ids of all boxes the ray segment passes through, in
// ascending order. The result may contain boxes the underlying surface does
// not touch, but never misses one it does.
func (ix *Index) Query(r Ray) []int {
	if ix.Len() == 0 || r.Length < 0 {
		return nil
	}
	rect, err := toRect(r.Bounds().Pad(Pad))
	if err != nil {
		return nil
	}
	keepRayHits := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		return !obj.(*entry).box.IntersectsRay(r), false
	}
	found := ix.tree.SearchIntersect(rect, keepRayHits)
	if len(found) == 0 {
		return nil
	}
	ids := make([]int, 0, len(found))
	for _, obj := range found {
		ids = append(ids, obj.(*entry).id)
	}
	sort.Ints(ids)
	return ids
}

// Bounds returns the box enclosing every indexed box, padding included.
func (ix *Index) Bounds() Box {
	if ix == nil {
		return Empty()
	}
	return ix.bounds
}

func toRect(b Box) (rtreego.Rect, error) {
	size := b.Size()
	return rtreego.NewRect(
		rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z},
		[]float64{size.X, size.Y, size.Z},
	)
}
