package advanced

import "math"

// Shoelace formula. Positive for counterclockwise rings.
func (r Ring) SignedArea() float64 {
	var sum float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

func (r Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

func (r Ring) IsCW() bool {
	return r.SignedArea() < 0
}

func (r Ring) Clone() Ring {
	return append(Ring(nil), r...)
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		reversed = append(reversed, r[i])
	}
	return reversed
}

// The edge leaving vertex i, wrapping around at the end of the ring.
func (r Ring) Edge(i int) Segment {
	return Segment{r[i], r[CircularIndex(i+1, len(r))]}
}

// Area centroid. Rings with (nearly) no area fall back to the vertex average.
func (r Ring) Centroid() Point {
	if len(r) == 0 {
		return Point{}
	}
	area := r.SignedArea()
	if math.Abs(area) <= Epsilon {
		var sum Point
		for _, p := range r {
			sum.X += p.X
			sum.Y += p.Y
		}
		return Point{X: sum.X / float64(len(r)), Y: sum.Y / float64(len(r))}
	}

	var cx, cy float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

func (r Ring) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range r {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Crossing count helper for the even-odd rule. Edges are half open in Y, so a
// vertex exactly level with the ray is only counted once.
func (r Ring) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range r {
		nextVertex := r[CircularIndex(i+1, len(r))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Remove consecutive duplicate points (including a closing point that repeats
// the first one) and vertices that sit on the straight line between their
// neighbors. Collinear removal never takes the ring below three vertices.
func CleanRing(ring Ring) Ring {
	cleaned := make(Ring, 0, len(ring))
	for _, p := range ring {
		if len(cleaned) > 0 && p.Equal(cleaned[len(cleaned)-1]) {
			continue
		}
		cleaned = append(cleaned, p)
	}
	for len(cleaned) > 1 && cleaned[0].Equal(cleaned[len(cleaned)-1]) {
		cleaned = cleaned[:len(cleaned)-1]
	}

	// Removing a vertex can make its neighbor collinear, so repeat until stable
	for changed := true; changed && len(cleaned) > 3; {
		changed = false
		for i := 0; i < len(cleaned) && len(cleaned) > 3; {
			n := len(cleaned)
			prev := cleaned[CircularIndex(i-1, n)]
			next := cleaned[CircularIndex(i+1, n)]
			if OnSegment(prev, next, cleaned[i], Epsilon) {
				cleaned = append(cleaned[:i], cleaned[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
	return cleaned
}
