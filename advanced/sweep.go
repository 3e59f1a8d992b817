package advanced

import (
	"math"
	"sort"
)

// Shamos-Hoey sweep over the edges of one or more rings. Edges are swept left
// to right; the active list holds the edges crossing the sweep line ordered by
// their y value there. Two edges can only cross after becoming neighbors in the
// active list, so each insertion tests the new edge against its neighbors and
// each removal tests the two edges that close up around the removed one.

type sweepEdge struct {
	ring  int // position in the rings slice
	index int // edge index within its ring
	// left is the lexicographically smaller endpoint (x, then y)
	left, right Point
}

type sweepEvent struct {
	p      Point
	edge   int
	insert bool
}

// A reported intersection between two edges. Ring numbers are positions in the
// slice handed to the sweep, and (RingA, EdgeA) sorts before (RingB, EdgeB).
type Crossing struct {
	RingA, EdgeA int
	RingB, EdgeB int
}

func newCrossing(a, b sweepEdge) Crossing {
	if b.ring < a.ring || (b.ring == a.ring && b.index < a.index) {
		a, b = b, a
	}
	return Crossing{RingA: a.ring, EdgeA: a.index, RingB: b.ring, EdgeB: b.index}
}

func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

type sweep struct {
	rings           []Ring
	edges           []sweepEdge
	events          []sweepEvent
	active          []int
	includeTouching bool
}

func newSweep(rings []Ring, includeTouching bool) *sweep {
	s := &sweep{rings: rings, includeTouching: includeTouching}
	for r, ring := range rings {
		for i := range ring {
			segment := ring.Edge(i)
			if segment.Length() < Epsilon {
				continue
			}
			edge := sweepEdge{ring: r, index: i, left: segment.Start, right: segment.End}
			if pointLess(edge.right, edge.left) {
				edge.left, edge.right = edge.right, edge.left
			}
			id := len(s.edges)
			s.edges = append(s.edges, edge)
			s.events = append(s.events,
				sweepEvent{p: edge.left, edge: id, insert: true},
				sweepEvent{p: edge.right, edge: id, insert: false},
			)
		}
	}

	sort.SliceStable(s.events, func(i, j int) bool {
		a, b := s.events[i], s.events[j]
		if a.p.X != b.p.X {
			return a.p.X < b.p.X
		}
		if a.p.Y != b.p.Y {
			return a.p.Y < b.p.Y
		}
		return a.insert && !b.insert
	})
	return s
}

// Edges that share a ring vertex by index never count as intersecting.
func (s *sweep) adjacent(a, b sweepEdge) bool {
	if a.ring != b.ring {
		return false
	}
	n := len(s.rings[a.ring])
	return CircularIndex(a.index+1, n) == b.index || CircularIndex(b.index+1, n) == a.index
}

func (s *sweep) test(a, b int) (Crossing, bool) {
	ea, eb := s.edges[a], s.edges[b]
	if s.adjacent(ea, eb) {
		return Crossing{}, false
	}
	if SegmentsIntersect(ea.left, ea.right, eb.left, eb.right, s.includeTouching) {
		return newCrossing(ea, eb), true
	}
	return Crossing{}, false
}

// The y value of an edge at the sweep position. Near vertical edges use their
// lower endpoint.
func yAt(e sweepEdge, x float64) float64 {
	dx := e.right.X - e.left.X
	if dx < Epsilon {
		return math.Min(e.left.Y, e.right.Y)
	}
	t := (x - e.left.X) / dx
	t = math.Max(0, math.Min(1, t))
	return e.left.Y + t*(e.right.Y-e.left.Y)
}

// Order two edges at the sweep position. Edges meeting at the same y are
// ordered by where they head next, which is their slope.
func (s *sweep) below(a, b int, x float64) bool {
	ea, eb := s.edges[a], s.edges[b]
	ya, yb := yAt(ea, x), yAt(eb, x)
	if math.Abs(ya-yb) > Epsilon {
		return ya < yb
	}
	return slope(ea) < slope(eb)
}

func vertical(e sweepEdge) bool {
	return e.right.X-e.left.X < Epsilon
}

// Vertical edges are keyed by their lower end, so their neighbors in the active
// list don't cover their whole extent. Test them against every active edge
// passing through their y range at the sweep position.
func (s *sweep) testVertical(edge int, x float64) (Crossing, bool) {
	e := s.edges[edge]
	for _, other := range s.active {
		if other == edge {
			continue
		}
		o := s.edges[other]
		var v, w sweepEdge
		switch {
		case vertical(e) && vertical(o):
			if c, ok := s.test(edge, other); ok {
				return c, true
			}
			continue
		case vertical(e):
			v, w = e, o
		case vertical(o):
			v, w = o, e
		default:
			continue
		}
		y := yAt(w, x)
		low, high := math.Min(v.left.Y, v.right.Y), math.Max(v.left.Y, v.right.Y)
		if y < low-Epsilon || y > high+Epsilon {
			continue
		}
		if c, ok := s.test(edge, other); ok {
			return c, true
		}
	}
	return Crossing{}, false
}

func slope(e sweepEdge) float64 {
	dx := e.right.X - e.left.X
	if dx < Epsilon {
		return math.Inf(1)
	}
	return (e.right.Y - e.left.Y) / dx
}

func (s *sweep) insert(edge int, x float64) int {
	position := len(s.active)
	for i, other := range s.active {
		if s.below(edge, other, x) {
			position = i
			break
		}
	}
	s.active = append(s.active, 0)
	copy(s.active[position+1:], s.active[position:])
	s.active[position] = edge
	return position
}

func (s *sweep) position(edge int) int {
	for i, other := range s.active {
		if other == edge {
			return i
		}
	}
	fatalf("edge %d is not in the active list", edge)
	return -1
}

func (s *sweep) run() (Crossing, bool) {
	for _, event := range s.events {
		if event.insert {
			i := s.insert(event.edge, event.p.X)
			if i > 0 {
				if c, ok := s.test(s.active[i-1], event.edge); ok {
					return c, true
				}
			}
			if i < len(s.active)-1 {
				if c, ok := s.test(event.edge, s.active[i+1]); ok {
					return c, true
				}
			}
			if c, ok := s.testVertical(event.edge, event.p.X); ok {
				return c, true
			}
			continue
		}

		i := s.position(event.edge)
		if i > 0 && i < len(s.active)-1 {
			if c, ok := s.test(s.active[i-1], s.active[i+1]); ok {
				return c, true
			}
		}
		s.active = append(s.active[:i], s.active[i+1:]...)
	}
	return Crossing{}, false
}

// Brute force all-pairs check with the same adjacency rule. Cheaper than the
// sweep for small inputs, and the reference the sweep is tested against.
func bruteForceCrossing(rings []Ring, includeTouching bool) (Crossing, bool) {
	s := &sweep{rings: rings, includeTouching: includeTouching}
	for r, ring := range rings {
		for i := range ring {
			segment := ring.Edge(i)
			if segment.Length() < Epsilon {
				continue
			}
			s.edges = append(s.edges, sweepEdge{ring: r, index: i, left: segment.Start, right: segment.End})
		}
	}
	for a := range s.edges {
		for b := a + 1; b < len(s.edges); b++ {
			if c, ok := s.test(a, b); ok {
				return c, true
			}
		}
	}
	return Crossing{}, false
}
