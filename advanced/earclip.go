package advanced

// Ear clipping over an index based circular doubly linked list. Vertices are
// never moved; clipping an ear just unlinks its index, which keeps removal and
// neighbor lookup O(1).
//
// The input must be a simple, counterclockwise ring without holes (a stitched
// ring qualifies: its bridge duplicates are coincident, never crossing).

type vertexList struct {
	ring      Ring
	next      []int
	prev      []int
	removed   []bool
	remaining int
}

func newVertexList(ring Ring) *vertexList {
	n := len(ring)
	list := &vertexList{
		ring:      ring,
		next:      make([]int, n),
		prev:      make([]int, n),
		removed:   make([]bool, n),
		remaining: n,
	}
	for i := range ring {
		list.next[i] = CircularIndex(i+1, n)
		list.prev[i] = CircularIndex(i-1, n)
	}
	return list
}

func (l *vertexList) unlink(i int) {
	if l.removed[i] {
		fatalf("vertex %d unlinked twice", i)
	}
	l.next[l.prev[i]] = l.next[i]
	l.prev[l.next[i]] = l.prev[i]
	l.removed[i] = true
	l.remaining--
}

// Is vertex i an ear? It must turn strictly counterclockwise, no other active
// vertex may be inside or on its triangle, and the diagonal that replaces it
// may not cross any active edge.
func (l *vertexList) isEar(i int) bool {
	p, q := l.prev[i], l.next[i]
	a, b, c := l.ring[p], l.ring[i], l.ring[q]
	if Orient(a, b, c) <= 0 {
		return false
	}

	for j := l.next[q]; j != p; j = l.next[j] {
		v := l.ring[j]
		// Bridge duplicates sit exactly on a corner. They are not inside.
		if v.Equal(a) || v.Equal(b) || v.Equal(c) {
			continue
		}
		if PointInTriangle(a, b, c, v, Epsilon) {
			return false
		}
	}

	// Edges touching either end of the diagonal can't cross it
	for j := l.next[q]; l.next[j] != p; j = l.next[j] {
		if SegmentsIntersect(a, c, l.ring[j], l.ring[l.next[j]], false) {
			return false
		}
	}
	return true
}

// Triangulate a simple counterclockwise ring. An n vertex ring produces n - 2
// triangles. Rings with fewer than three vertices produce none.
func EarClip(ring Ring) (TriangleList, error) {
	n := len(ring)
	if n < 3 {
		return nil, nil
	}

	list := newVertexList(ring)
	triangles := make(TriangleList, 0, n-2)

	// Each pass either clips an ear or fails, so this only guards against a
	// bug turning into a hang.
	guard := 4 * n
	cur := 0
	for list.remaining > 3 {
		guard--
		if guard < 0 {
			return nil, noEarFound(list.remaining, n)
		}

		// Scan from wherever the last ear was clipped, rather than from the
		// start, so the first vertices aren't favored.
		clipped := false
		i := cur
		for scanned := 0; scanned < list.remaining; scanned++ {
			if list.isEar(i) {
				triangles = appendTriangle(triangles, Triangle{ring[list.prev[i]], ring[i], ring[list.next[i]]})
				cur = list.next[i]
				list.unlink(i)
				clipped = true
				break
			}
			i = list.next[i]
		}
		if !clipped {
			return nil, noEarFound(list.remaining, n)
		}
	}

	a := cur
	b := list.next[a]
	c := list.next[b]
	return append(triangles, Triangle{ring[a], ring[b], ring[c]}.Oriented()), nil
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles TriangleList, tri Triangle) TriangleList {
	if !tri.IsCCW() {
		fatalf("triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
