package advanced

import "math"

func (t Triangle) SignedArea() float64 {
	return Cross(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// The same triangle, wound counterclockwise.
func (t Triangle) Oriented() Triangle {
	if t.SignedArea() < 0 {
		return Triangle{t.A, t.C, t.B}
	}
	return t
}

func (t Triangle) Contains(p Point) bool {
	return PointInTriangle(t.A, t.B, t.C, p, Epsilon)
}

func (list TriangleList) Area() float64 {
	var area float64
	for _, t := range list {
		area += t.Area()
	}
	return area
}

// Each triangle as its own three point ring. Mostly useful for feeding the
// output back through ring based checks.
func (list TriangleList) ToRings() []Ring {
	rings := make([]Ring, len(list))
	for i, t := range list {
		rings[i] = Ring{t.A, t.B, t.C}
	}
	return rings
}
