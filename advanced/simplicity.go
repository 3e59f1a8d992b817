package advanced

// Below this many edges the all-pairs check is used instead of the sweep.
// Typical building footprints are a few dozen vertices, where the quadratic
// check is both faster and immune to sweep ordering subtleties.
const bruteForceLimit = 64

// Find an intersecting pair of non-adjacent edges among the given rings.
// Adjacency only applies within a ring; edges from different rings are always
// compared. When includeTouching is false only proper crossings are reported,
// which is what a stitched ring with its coincident bridge edges needs.
//
// Only the touching search uses the sweep. A touch it doesn't report can leave
// the active list out of order, and a stitched ring is full of touches, so the
// crossing-only search always checks every pair.
func FindCrossing(rings []Ring, includeTouching bool) (Crossing, bool) {
	edgeCount := 0
	for _, ring := range rings {
		edgeCount += len(ring)
	}
	if !includeTouching || edgeCount <= bruteForceLimit {
		return bruteForceCrossing(rings, includeTouching)
	}
	return newSweep(rings, includeTouching).run()
}

// Report a pair of non-adjacent edges (i < j) of the ring that intersect, if
// any. Edge i runs from ring[i] to ring[i+1].
func FindSelfIntersection(ring Ring, includeTouching bool) (i, j int, found bool) {
	c, found := FindCrossing([]Ring{ring}, includeTouching)
	if !found {
		return -1, -1, false
	}
	return c.EdgeA, c.EdgeB, true
}

// Is the ring simple? Touching edges and duplicate consecutive points both make
// a ring non-simple.
func IsSimple(ring Ring) bool {
	for i, p := range ring {
		if p.Equal(ring[CircularIndex(i+1, len(ring))]) {
			return false
		}
	}
	_, _, found := FindSelfIntersection(ring, true)
	return !found
}
