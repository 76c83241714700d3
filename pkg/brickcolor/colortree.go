package brickcolor

import (
	"github.com/asim/quadtree"
)

// The first search box is this many steps wide on each side of the
// target. It doubles until it provably contains the nearest entry.
const initialSearchRadius = 16

// colorTree indexes palette positions on the red/green plane. Blue is
// handled by computing the real distance for every candidate the tree
// returns.
type colorTree struct {
	quadTree *quadtree.QuadTree
	entries  []Entry
	// spill holds positions the quadtree refused to store.
	spill    []int
}

func newColorTree(entries []Entry) *colorTree {
	// Add a small margin to avoid dropping points at the edges
	const halfSize = 128 + 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(127.5, 127.5, nil),
		quadtree.NewPoint(halfSize, halfSize, nil))
	t := &colorTree{
		quadTree: quadtree.New(aabb, 0, nil),
		entries:  entries,
	}

	// Entries sharing red and green hang off one point, in declaration order.
	type planeKey struct{ r, g uint8 }
	var keys []planeKey
	positions := map[planeKey][]int{}
	for i, e := range entries {
		k := planeKey{e.Color.R, e.Color.G}
		if _, found := positions[k]; !found {
			keys = append(keys, k)
		}
		positions[k] = append(positions[k], i)
	}
	for _, k := range keys {
		if !t.quadTree.Insert(quadtree.NewPoint(float64(k.r), float64(k.g), positions[k])) {
			t.spill = append(t.spill, positions[k]...)
		}
	}
	return t
}

// nearest returns the declaration position of the closest entry. It
// selects the same entry as a linear scan with first-declared tie-break.
func (t *colorTree) nearest(target RGB) int {
	best, bestDist := -1, 0
	for radius := initialSearchRadius; ; radius *= 2 {
		box := quadtree.NewAABB(
			quadtree.NewPoint(float64(target.R), float64(target.G), nil),
			quadtree.NewPoint(float64(radius), float64(radius), nil),
		)
		best, bestDist = -1, 0
		consider := func(i int) {
			d := Distance(target, t.entries[i].Color)
			if best < 0 || d < bestDist || (d == bestDist && i < best) {
				best, bestDist = i, d
			}
		}
		for _, point := range t.quadTree.Search(box) {
			for _, i := range point.Data().([]int) {
				consider(i)
			}
		}
		for _, i := range t.spill {
			consider(i)
		}
		// Anything outside the box differs by at least radius in red or
		// green, so it can neither beat nor tie a strictly closer hit.
		if best >= 0 && bestDist < radius*radius {
			return best
		}
		if radius > 255 {
			break
		}
	}
	if best < 0 {
		return scanNearest(t.entries, target)
	}
	return best
}
