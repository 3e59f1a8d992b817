package advanced

// Triangulate the polygon: clean every ring, drop holes that have collapsed to
// fewer than three points, validate, stitch the holes in, and clip ears.
//
// An outer ring with fewer than three points (or with all of its points on one
// line) after cleaning is degenerate and produces no triangles and no error. Holes are reported in
// errors by their index in p.Holes, even when earlier holes were dropped.
func (p PolygonWithHoles) Triangulate() (TriangleList, error) {
	outer, holes, ids := p.cleaned()
	if outer == nil {
		return TriangleList{}, nil
	}

	stitched, err := stitchHoles(outer, holes, ids)
	if err != nil {
		return nil, err
	}
	return EarClip(stitched)
}

// Cleaned rings, with the caller's index of each surviving hole. The outer ring
// is nil when it is degenerate.
func (p PolygonWithHoles) cleaned() (outer Ring, holes []Ring, ids []int) {
	outer = CleanRing(p.Outer)
	if degenerate(outer) {
		return nil, nil, nil
	}
	for i, hole := range p.Holes {
		hole = CleanRing(hole)
		if degenerate(hole) {
			continue
		}
		holes = append(holes, hole)
		ids = append(ids, i)
	}
	return outer, holes, ids
}

// Fewer than three points, or every point on one line. A ring can have zero
// signed area without being degenerate (a symmetric bowtie), and that has to
// reach validation.
func degenerate(ring Ring) bool {
	n := len(ring)
	if n < 3 {
		return true
	}
	for i := range ring {
		if Orient(ring[CircularIndex(i-1, n)], ring[i], ring[CircularIndex(i+1, n)]) != 0 {
			return false
		}
	}
	return true
}

// Vertex count after cleaning, and the number of holes that survive cleaning.
// A successful triangulation has vertices + 2*holes - 2 triangles.
func (p PolygonWithHoles) CleanedSize() (vertices, holes int) {
	outer, cleanedHoles, _ := p.cleaned()
	if outer == nil {
		return 0, 0
	}
	vertices = len(outer)
	for _, hole := range cleanedHoles {
		vertices += len(hole)
	}
	return vertices, len(cleanedHoles)
}

// Area of the outer ring minus the area of its holes.
func (p PolygonWithHoles) Area() float64 {
	area := p.Outer.Area()
	for _, hole := range p.Holes {
		area -= hole.Area()
	}
	return area
}
