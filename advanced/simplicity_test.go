package advanced

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSelfIntersection(t *testing.T) {
	t.Run("bowtie", func(t *testing.T) {
		bowtie := Ring{{0, 0}, {1, 1}, {1, 0}, {0, 1}}
		i, j, found := FindSelfIntersection(bowtie, true)
		require.True(t, found)
		assert.Equal(t, 0, i)
		assert.Equal(t, 2, j)
		assert.False(t, IsSimple(bowtie))
	})

	t.Run("convex polygons are simple", func(t *testing.T) {
		for _, n := range []int{3, 4, 7, 64, 65, 200} {
			ring := RegularPolygon(n, 10)
			_, _, found := FindSelfIntersection(ring, true)
			assert.False(t, found, "%d-gon", n)
			assert.True(t, IsSimple(ring), "%d-gon", n)
		}
	})

	t.Run("adjacent edges never count", func(t *testing.T) {
		triangle := Ring{{0, 0}, {1, 0}, {0, 1}}
		assert.True(t, IsSimple(triangle))
	})

	t.Run("touching", func(t *testing.T) {
		// A vertex that lands on a non-adjacent edge. Only a touch, not a crossing.
		ring := Ring{{0, 0}, {4, 0}, {4, 4}, {2, 0}, {0, 4}}
		_, _, found := FindSelfIntersection(ring, true)
		assert.True(t, found)
		_, _, found = FindSelfIntersection(ring, false)
		assert.False(t, found)
	})

	t.Run("duplicate consecutive points", func(t *testing.T) {
		ring := Ring{{0, 0}, {4, 0}, {4, 0}, {4, 4}, {0, 4}}
		assert.False(t, IsSimple(ring))
	})

	t.Run("stitched ring", func(t *testing.T) {
		// Bridge edges coincide, so they touch but never cross
		stitched := Ring{{0, 0}, {4, 0}, {4, 4}, {3, 3}, {3, 1}, {1, 1}, {1, 3}, {3, 3}, {4, 4}, {0, 4}}
		_, _, found := FindSelfIntersection(stitched, false)
		assert.False(t, found)
		assert.False(t, IsSimple(stitched))
	})
}

func TestFindCrossingBetweenRings(t *testing.T) {
	outer := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	t.Run("separate rings", func(t *testing.T) {
		hole := Ring{{1, 1}, {1, 3}, {3, 3}, {3, 1}}
		_, found := FindCrossing([]Ring{outer, hole}, true)
		assert.False(t, found)
	})

	t.Run("crossing rings", func(t *testing.T) {
		hole := Ring{{3, 1}, {3, 3}, {5, 3}, {5, 1}}
		c, found := FindCrossing([]Ring{outer, hole}, true)
		require.True(t, found)
		assert.Equal(t, 0, c.RingA)
		assert.Equal(t, 1, c.RingB)
	})

	t.Run("first and last edges of different rings are not adjacent", func(t *testing.T) {
		// The hole's closing edge lies on the outer ring's first edge
		hole := Ring{{1, 0}, {2, 1}, {3, 0}}
		_, found := FindCrossing([]Ring{outer, hole}, true)
		assert.True(t, found)
	})
}

// The sweep is checked against the all-pairs search on inputs big enough that
// FindCrossing would pick the sweep.

func TestSweepMatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(1))

	t.Run("random polygons", func(t *testing.T) {
		for trial := 0; trial < 200; trial++ {
			ring := randomRing(random, 3+random.Intn(80))
			_, bruteFound := bruteForceCrossing([]Ring{ring}, true)
			_, sweepFound := newSweep([]Ring{ring}, true).run()
			assert.Equal(t, bruteFound, sweepFound, "trial %d: %v", trial, ring)
		}
	})

	t.Run("random star polygons", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			ring := randomStar(random, 10+random.Intn(100), 0, 0)
			_, bruteFound := bruteForceCrossing([]Ring{ring}, true)
			_, sweepFound := newSweep([]Ring{ring}, true).run()
			assert.False(t, bruteFound, "trial %d", trial)
			assert.False(t, sweepFound, "trial %d", trial)
		}
	})

	t.Run("star polygons with one vertex pulled out", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			ring := randomStar(random, 10+random.Intn(100), 0, 0)
			ring[random.Intn(len(ring))] = Point{X: random.Float64()*30 - 15, Y: random.Float64()*30 - 15}
			_, bruteFound := bruteForceCrossing([]Ring{ring}, false)
			_, sweepFound := newSweep([]Ring{ring}, false).run()
			assert.Equal(t, bruteFound, sweepFound, "trial %d: %v", trial, ring)
		}
	})

	t.Run("several rings", func(t *testing.T) {
		star := randomStar(random, 40, 0, 0)
		inside := RegularPolygon(30, 3)
		_, found := newSweep([]Ring{star, inside}, true).run()
		assert.False(t, found)

		straddling := make(Ring, len(inside))
		for i, p := range inside {
			straddling[i] = Point{X: p.X + 8, Y: p.Y}
		}
		c, found := newSweep([]Ring{star, straddling}, true).run()
		require.True(t, found)
		assert.Equal(t, 0, c.RingA)
		assert.Equal(t, 1, c.RingB)
	})

	t.Run("grid aligned rings", func(t *testing.T) {
		// A row of separate unit squares pushes the edge count past the
		// brute force limit. Vertical edges and shared coordinates everywhere.
		var rings []Ring
		for k := 0; k < 16; k++ {
			x := float64(10 * k)
			rings = append(rings, Ring{{x, 50}, {x + 1, 50}, {x + 1, 51}, {x, 51}})
		}

		// (2, 2)-(2, 4) crosses (1, 3)-(3, 3)
		crossing := append(append([]Ring(nil), rings...),
			Ring{{2, 2}, {2, 4}, {0, 4}, {0, 2}},
			Ring{{1, 3}, {3, 3}, {3, 5}, {1, 5}},
		)
		for _, includeTouching := range []bool{true, false} {
			expected, bruteFound := bruteForceCrossing(crossing, includeTouching)
			require.True(t, bruteFound)
			c, found := FindCrossing(crossing, includeTouching)
			require.True(t, found, "includeTouching %v", includeTouching)
			if !includeTouching {
				assert.Equal(t, Crossing{RingA: 16, EdgeA: 0, RingB: 17, EdgeB: 0}, expected)
				assert.Equal(t, expected, c)
			}
		}

		// Squares meeting at a corner touch without crossing
		touching := append(append([]Ring(nil), rings...),
			Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			Ring{{1, 1}, {2, 1}, {2, 2}, {1, 2}},
		)
		_, found := FindCrossing(touching, true)
		assert.True(t, found)
		_, found = newSweep(touching, true).run()
		assert.True(t, found)
		_, found = FindCrossing(touching, false)
		assert.False(t, found)
	})

	t.Run("random grid aligned rings", func(t *testing.T) {
		for trial := 0; trial < 300; trial++ {
			var rings []Ring
			for k := 0; k < 20; k++ {
				x, y := float64(random.Intn(8)), float64(random.Intn(8))
				w, h := float64(1+random.Intn(3)), float64(1+random.Intn(3))
				rings = append(rings, Ring{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
			}
			expected, bruteFound := bruteForceCrossing(rings, false)
			c, found := FindCrossing(rings, false)
			require.Equal(t, bruteFound, found, "trial %d", trial)
			assert.Equal(t, expected, c, "trial %d", trial)
		}
	})

	t.Run("bowtie", func(t *testing.T) {
		c, found := newSweep([]Ring{{{0, 0}, {1, 1}, {1, 0}, {0, 1}}}, true).run()
		require.True(t, found)
		assert.Equal(t, Crossing{RingA: 0, EdgeA: 0, RingB: 0, EdgeB: 2}, c)
	})
}

// Helpers

func randomRing(random *rand.Rand, n int) Ring {
	ring := make(Ring, n)
	for i := range ring {
		ring[i] = Point{X: random.Float64() * 100, Y: random.Float64() * 100}
	}
	return ring
}

// A star shaped ring around (x, y), with jittered angles and radii between 6
// and 10. Always simple.
func randomStar(random *rand.Rand, n int, x, y float64) Ring {
	ring := make(Ring, n)
	for i := range ring {
		angle := (float64(i) + random.Float64()*0.8) * 2 * math.Pi / float64(n)
		r := 6 + random.Float64()*4
		ring[i] = Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)}
	}
	return ring
}
