package advanced

import (
	"math"
	"sort"
)

// Hole stitching folds a polygon with holes into a single ring. Each hole is
// joined to the boundary by a bridge: a pair of coincident edges running from a
// boundary vertex O to the hole's rightmost vertex H and back. The resulting
// ring visits O, H, the whole hole, H again and O again, so it still encloses
// exactly the area of the polygon, but has no holes.
//
// Bridges are chosen among a few nearby candidates first, then among every
// vertex of the ring. The classic construction only promises a bridge to one of
// the endpoints of the edge hit by a ray from H when the boundary is convex, and
// building footprints are frequently not.

// Merge every hole into the outer ring. The rings are not modified. Holes are
// reported in errors by their index in the holes slice.
func StitchHoles(outer Ring, holes []Ring) (Ring, error) {
	ids := make([]int, len(holes))
	for i := range ids {
		ids[i] = i
	}
	return stitchHoles(outer, holes, ids)
}

// As StitchHoles, reporting hole i as ids[i].
func stitchHoles(outer Ring, holes []Ring, ids []int) (Ring, error) {
	stitched, normalizedHoles := normalizeOrientation(outer, holes)
	if err := validatePolygon(stitched, normalizedHoles, ids); err != nil {
		return nil, err
	}

	for k, hole := range normalizedHoles {
		h := rightmostVertex(hole)
		// The hole being bridged is not stitched yet either, so a bridge may not
		// cut through it.
		unstitched := normalizedHoles[k:]

		o, ok := findBridge(stitched, hole, h, unstitched)
		if !ok {
			return nil, bridgeNotFound(ids[k], hole[h])
		}

		stitched = CleanRing(splice(stitched, o, hole, h))
		if !stitched.IsCCW() {
			stitched = stitched.Reverse()
		}
		if i, j, found := FindSelfIntersection(stitched, false); found {
			return nil, stitchConsistency(ids[k], i, j, len(stitched))
		}
	}
	return stitched, nil
}

// Copies of the rings with the outer ring counterclockwise and every hole
// clockwise.
func normalizeOrientation(outer Ring, holes []Ring) (Ring, []Ring) {
	outer = outer.Clone()
	if !outer.IsCCW() {
		outer = outer.Reverse()
	}
	normalized := make([]Ring, len(holes))
	for i, hole := range holes {
		normalized[i] = hole.Clone()
		if !hole.IsCW() {
			normalized[i] = hole.Reverse()
		}
	}
	return outer, normalized
}

// Check everything stitching relies on: every ring is simple, no two rings
// touch, every hole sits inside the outer ring, and no hole sits inside
// another. Nothing is repaired.
func validatePolygon(outer Ring, holes []Ring, ids []int) error {
	rings := append([]Ring{outer}, holes...)
	ringID := func(r int) int {
		if r == 0 {
			return OuterRing
		}
		return ids[r-1]
	}

	if c, found := FindCrossing(rings, true); found {
		c.RingA, c.RingB = ringID(c.RingA), ringID(c.RingB)
		return invalidCrossing(c)
	}

	for i, hole := range holes {
		centroid := hole.Centroid()
		if !PointStrictlyInside(outer, centroid) {
			return invalidPlacement(ids[i], OuterRing, centroid,
				"hole %d centroid %v is not inside the outer ring", ids[i], centroid)
		}
		// Rings don't touch, so one vertex decides for the whole hole. This
		// catches holes that surround the outer ring.
		if !PointStrictlyInside(outer, hole[0]) {
			return invalidPlacement(ids[i], OuterRing, hole[0],
				"hole %d vertex %v is not inside the outer ring", ids[i], hole[0])
		}
		for j, other := range holes {
			if i != j && PointInPolygon(other, hole[0]) {
				return invalidPlacement(ids[i], ids[j], hole[0],
					"hole %d is inside hole %d", ids[i], ids[j])
			}
		}
	}
	return nil
}

// The index of the vertex with the largest x, ties broken by the largest y.
func rightmostVertex(ring Ring) int {
	best := 0
	for i, p := range ring {
		q := ring[best]
		if p.X > q.X || (p.X == q.X && p.Y > q.Y) {
			best = i
		}
	}
	return best
}

// Cast a ray from p towards +x and return the index of the first edge it
// crosses, or -1 if it crosses none.
func rayTarget(ring Ring, p Point) int {
	target := -1
	nearest := math.Inf(1)
	for i := range ring {
		edge := ring.Edge(i)
		a, b := edge.Start, edge.End
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X && x < nearest {
			nearest = x
			target = i
		}
	}
	return target
}

// Pick the ring vertex to bridge the hole's vertex h to. Returns the vertex
// index in the ring.
func findBridge(ring Ring, hole Ring, h int, unstitched []Ring) (int, bool) {
	n := len(ring)
	var candidates []int
	if target := rayTarget(ring, hole[h]); target >= 0 {
		a, b := target, CircularIndex(target+1, n)
		candidates = []int{a, b, CircularIndex(a-1, n), CircularIndex(b+1, n)}
	}
	if o, ok := nearestValidBridge(ring, hole, h, unstitched, candidates); ok {
		return o, true
	}

	// Widen the search to the whole ring
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	return nearestValidBridge(ring, hole, h, unstitched, all)
}

func nearestValidBridge(ring Ring, hole Ring, h int, unstitched []Ring, candidates []int) (int, bool) {
	hp := hole[h]
	ordered := append([]int(nil), candidates...)
	// Stable, so equidistant candidates keep their priority order
	sort.SliceStable(ordered, func(i, j int) bool {
		return Distance(hp, ring[ordered[i]]) < Distance(hp, ring[ordered[j]])
	})
	for _, o := range ordered {
		if validBridge(ring, o, hole, h, unstitched) {
			return o, true
		}
	}
	return -1, false
}

// A bridge from ring[o] to hole[h] is valid when it leaves both vertices into
// the material, is not in line with an edge at either end, crosses no edge of
// the ring or of any unstitched hole, and its midpoint lies strictly inside the
// ring and strictly outside every unstitched hole.
func validBridge(ring Ring, o int, hole Ring, h int, unstitched []Ring) bool {
	op, hp := ring[o], hole[h]
	if op.Equal(hp) {
		return false
	}
	// Earlier bridges leave duplicate vertices behind. Only the copy whose
	// corner opens towards the hole may be used.
	if !locallyInside(ring, o, hp) || !locallyInside(hole, h, op) {
		return false
	}

	// A bridge in line with an edge at either end would leave pass-through
	// vertices that cleaning removes, folding the ring onto itself.
	n, m := len(ring), len(hole)
	neighbors := []Point{
		ring[CircularIndex(o-1, n)], ring[CircularIndex(o+1, n)],
		hole[CircularIndex(h-1, m)], hole[CircularIndex(h+1, m)],
	}
	for _, q := range neighbors {
		if Orient(op, hp, q) == 0 {
			return false
		}
	}

	incident := func(s Segment) bool {
		return s.Start.Equal(op) || s.End.Equal(op) || s.Start.Equal(hp) || s.End.Equal(hp)
	}
	for i := range ring {
		edge := ring.Edge(i)
		if !incident(edge) && SegmentsIntersect(op, hp, edge.Start, edge.End, true) {
			return false
		}
	}
	for _, other := range unstitched {
		for i := range other {
			edge := other.Edge(i)
			if !incident(edge) && SegmentsIntersect(op, hp, edge.Start, edge.End, true) {
				return false
			}
		}
	}

	mid := Segment{op, hp}.Midpoint()
	if !PointStrictlyInside(ring, mid) {
		return false
	}
	for _, other := range unstitched {
		if PointInPolygon(other, mid) || PointOnBoundary(other, mid) {
			return false
		}
	}
	return true
}

// [ring up to and including o] + [hole from h around to h] + [o] + [rest].
func splice(ring Ring, o int, hole Ring, h int) Ring {
	result := make(Ring, 0, len(ring)+len(hole)+2)
	result = append(result, ring[:o+1]...)
	for k := 0; k <= len(hole); k++ {
		result = append(result, hole[CircularIndex(h+k, len(hole))])
	}
	result = append(result, ring[o])
	return append(result, ring[o+1:]...)
}
