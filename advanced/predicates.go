package advanced

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// These are the only primitives the rest of the package uses for geometric
// decisions. Nothing else computes a sign on its own, so ties are always broken
// the same way.

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Cross product of (a - o) and (b - o). This is twice the signed area of the
// triangle o, a, b.
func Cross(o, a, b Point) float64 {
	return r2.Cross(r2.Sub(a.vec(), o.vec()), r2.Sub(b.vec(), o.vec()))
}

func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(b.vec(), a.vec()))
}

// Orientation of the turn a -> b -> c: +1 for counterclockwise, -1 for
// clockwise, and 0 when the cross product is within Epsilon of zero.
func Orient(a, b, c Point) int {
	cross := Cross(a, b, c)
	switch {
	case cross > Epsilon:
		return 1
	case cross < -Epsilon:
		return -1
	}
	return 0
}

// Is p collinear with a-b and inside the segment's bounding box, grown by eps?
func OnSegment(a, b, p Point, eps float64) bool {
	if Orient(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// Do segments a-b and c-d intersect? With allowTouch, endpoint contact and
// collinear overlap count. Without it, only a proper crossing does, where each
// segment strictly separates the endpoints of the other.
func SegmentsIntersect(a, b, c, d Point, allowTouch bool) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	if !allowTouch {
		return false
	}

	switch {
	case o1 == 0 && OnSegment(a, b, c, Epsilon):
		return true
	case o2 == 0 && OnSegment(a, b, d, Epsilon):
		return true
	case o3 == 0 && OnSegment(c, d, a, Epsilon):
		return true
	case o4 == 0 && OnSegment(c, d, b, Epsilon):
		return true
	}
	return false
}

// Even-odd point in polygon test, casting a ray towards +x.
func PointInPolygon(ring Ring, p Point) bool {
	return ring.CrossingCount(p)%2 == 1
}

// Is p inside or on the triangle a, b, c? The point is only rejected when it is
// beyond eps on the positive side of one edge and beyond eps on the negative
// side of another, so this works for either winding.
func PointInTriangle(a, b, c, p Point, eps float64) bool {
	d1 := Cross(a, b, p)
	d2 := Cross(b, c, p)
	d3 := Cross(c, a, p)

	hasNegative := d1 < -eps || d2 < -eps || d3 < -eps
	hasPositive := d1 > eps || d2 > eps || d3 > eps
	return !(hasNegative && hasPositive)
}

// Project q onto the line through a and b, clamped to the segment.
func ClosestPointOnSegment(a, b, q Point) Point {
	ab := r2.Sub(b.vec(), a.vec())
	lengthSquared := r2.Norm2(ab)
	if lengthSquared < Epsilon*Epsilon {
		return a
	}
	t := r2.Dot(r2.Sub(q.vec(), a.vec()), ab) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return pointFromVec(r2.Add(a.vec(), r2.Scale(t, ab)))
}

// Is p within Epsilon of any edge of the ring?
func PointOnBoundary(ring Ring, p Point) bool {
	for i := range ring {
		edge := ring.Edge(i)
		if Distance(ClosestPointOnSegment(edge.Start, edge.End, p), p) <= Epsilon {
			return true
		}
	}
	return false
}

// Is p strictly inside the ring, away from its boundary?
func PointStrictlyInside(ring Ring, p Point) bool {
	return PointInPolygon(ring, p) && !PointOnBoundary(ring, p)
}

// Does the direction from ring[i] towards p point into the region on the left
// of the ring at that vertex? For a CCW ring that is the interior, and for a CW
// hole it is the material around the hole.
func locallyInside(ring Ring, i int, p Point) bool {
	n := len(ring)
	prev := ring[CircularIndex(i-1, n)]
	cur := ring[i]
	next := ring[CircularIndex(i+1, n)]

	leftOfNext := Orient(cur, next, p) > 0
	rightOfPrev := Orient(cur, p, prev) > 0
	if Orient(prev, cur, next) > 0 {
		return leftOfNext && rightOfPrev
	}
	return leftOfNext || rightOfPrev
}
