package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are V + 2h - 2 triangles, counted on the cleaned rings.
// 2. Every triangle is counterclockwise with positive area.
// 3. Every triangle corner is a point of the input.
// 4. The triangle areas add up to the area of the polygon.
// 5. Sampled points inside the polygon are in exactly one triangle, and
//    points outside are in none.
func AssertValidTriangulation(t *testing.T, polygon PolygonWithHoles, triangles TriangleList) {
	vertices, holes := polygon.CleanedSize()
	require.Len(t, triangles, vertices+2*holes-2, "triangle count")

	inputPoints := append(Ring(nil), polygon.Outer...)
	for _, hole := range polygon.Holes {
		inputPoints = append(inputPoints, hole...)
	}
	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise or flat triangle: %s", tri)
		for _, corner := range []Point{tri.A, tri.B, tri.C} {
			require.True(t, containsPoint(inputPoints, corner), "corner %v of %s is not an input point", corner, tri)
		}
	}

	area := polygon.Area()
	require.InDelta(t, area, triangles.Area(), Epsilon*math.Max(1, area), "sum of the areas of all triangles is equal to the area of the polygon")

	validateTrianglesBySampling(t, polygon, triangles)
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

func validateTrianglesBySampling(t *testing.T, polygon PolygonWithHoles, triangles TriangleList) {
	min, max := polygon.Outer.Bounds()

	// Pad the bounding box by 10%
	xPadding := (max.X - min.X) * 0.1
	yPadding := (max.Y - min.Y) * 0.1
	min.X -= xPadding
	min.Y -= yPadding
	max.X += xPadding
	max.Y += yPadding

	step := math.Max(max.X-min.X, max.Y-min.Y) / 50
	rings := triangles.ToRings()

	// The odd offsets keep samples off of grid aligned edges and vertices
	for y := min.Y + step*0.37; y <= max.Y; y += step {
		for x := min.X + step*0.61; x <= max.X; x += step {
			p := Point{X: x, Y: y}
			if onAnyBoundary(polygon, rings, p) {
				continue
			}

			count := 0
			for _, ring := range rings {
				if PointInPolygon(ring, p) {
					count++
				}
			}
			if insidePolygon(polygon, p) {
				assert.Equal(t, 1, count, "point %v should be in exactly one triangle", p)
			} else {
				assert.Equal(t, 0, count, "point %v should not be in any triangle", p)
			}
		}
	}
}

func insidePolygon(polygon PolygonWithHoles, p Point) bool {
	if !PointInPolygon(polygon.Outer, p) {
		return false
	}
	for _, hole := range polygon.Holes {
		if PointInPolygon(hole, p) {
			return false
		}
	}
	return true
}

func onAnyBoundary(polygon PolygonWithHoles, triangles []Ring, p Point) bool {
	if PointOnBoundary(polygon.Outer, p) {
		return true
	}
	for _, hole := range polygon.Holes {
		if PointOnBoundary(hole, p) {
			return true
		}
	}
	for _, ring := range triangles {
		if PointOnBoundary(ring, p) {
			return true
		}
	}
	return false
}
