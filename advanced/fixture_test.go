package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads the svg fixtures and builds polygons out of them. It is not a
// full (or even correct) svg parser. It collects every <polygon> element in
// document order: the first one is the outer ring and the rest are holes. If
// anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) PolygonWithHoles {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var result PolygonWithHoles
	for i, polygonEl := range polygons {
		ring := parsePoints(polygonEl.Attributes["points"])
		if i == 0 {
			result.Outer = ring
		} else {
			result.Holes = append(result.Holes, ring)
		}
	}
	return result
}

func parsePoints(pointString string) Ring {
	var ring Ring
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		ring = append(ring, Point{x, y})
	}
	return ring
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64, points int) Ring {
	var ring Ring
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(points*2)
		ring = append(ring, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return ring
}

func SimpleStar() PolygonWithHoles {
	return PolygonWithHoles{Outer: makeStar(0, 0, 5, 2, 5)}
}

func SquareWithHole() PolygonWithHoles {
	return PolygonWithHoles{
		Outer: Ring{
			{X: -5, Y: -5},
			{X: 5, Y: -5},
			{X: 5, Y: 5},
			{X: -5, Y: 5},
		},
		Holes: []Ring{{
			{X: -2, Y: -2},
			{X: -2, Y: 2},
			{X: 2, Y: 2},
			{X: 2, Y: -2},
		}},
	}
}

// A star with a thinner star cut out of it, leaving only the outline
func StarOutline() PolygonWithHoles {
	return PolygonWithHoles{
		Outer: makeStar(0, 0, 10, 5, 5),
		Holes: []Ring{makeStar(0, 0, 8, 3, 5).Reverse()},
	}
}

// A 10x10 square with a column of three 2x1 slots
func SlotColumn() PolygonWithHoles {
	slot := func(y float64) Ring {
		return Ring{{X: 4, Y: y}, {X: 6, Y: y}, {X: 6, Y: y + 1}, {X: 4, Y: y + 1}}
	}
	return PolygonWithHoles{
		Outer: Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Holes: []Ring{slot(1), slot(4), slot(7)},
	}
}

// Regular n-gon centered on the origin
func RegularPolygon(n int, radius float64) Ring {
	ring := make(Ring, n)
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return ring
}
