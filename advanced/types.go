package advanced

import "fmt"

type Point struct {
	X float64
	Y float64
}

// A ring is an implicitly closed sequence of points. The edge from the last
// point back to the first is never stored.
type Ring []Point

type Segment struct {
	Start Point
	End   Point
}

type Triangle struct {
	A, B, C Point
}

type TriangleList []Triangle

// An outer boundary plus any number of holes. Orientation of the input rings
// doesn't matter; stitching normalizes the outer ring to CCW and holes to CW.
type PolygonWithHoles struct {
	Outer Ring
	Holes []Ring
}

func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v %v %v}", t.A, t.B, t.C)
}
