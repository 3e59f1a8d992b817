package main

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/earclip"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Input is one polygon read from an input file. Name may be empty.
type Input struct {
	Name    string
	Polygon earclip.Polygon
}

// InputFile is the YAML input format:
//
//	polygons:
//	  - name: lobby
//	    outer: [[0, 0], [10, 0], [10, 10], [0, 10]]
//	    holes:
//	      - [[2, 2], [4, 2], [4, 4], [2, 4]]
type InputFile struct {
	Polygons []InputPolygon `yaml:"polygons"`
}

type InputPolygon struct {
	Name  string        `yaml:"name"`
	Outer [][]float64   `yaml:"outer"`
	Holes [][][]float64 `yaml:"holes"`
}

func (f *InputFile) Parse(data []byte) error {
	return yaml.Unmarshal(data, f)
}

func (f *InputFile) Inputs() ([]Input, error) {
	var inputs []Input
	for i, p := range f.Polygons {
		input := Input{Name: p.Name}
		var err error
		input.Polygon.Outer, err = yamlRing(p.Outer)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d outer ring", i)
		}
		for j, h := range p.Holes {
			hole, err := yamlRing(h)
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d hole %d", i, j)
			}
			input.Polygon.Holes = append(input.Polygon.Holes, hole)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func yamlRing(coords [][]float64) (earclip.Ring, error) {
	ring := make(earclip.Ring, 0, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, expected 2", i, len(c))
		}
		ring = append(ring, earclip.Point{X: c[0], Y: c[1]})
	}
	return ring, nil
}

// Format names accepted by --format
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatYAML = "yaml"
	FormatSVG  = "svg"
)

// DetectFormat picks a format from a file name. Anything unrecognized, stdin
// included, is read as text.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".svg":
		return FormatSVG
	}
	return FormatText
}

func ReadInputs(r io.Reader, format string) ([]Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	switch format {
	case FormatText:
		return ParseText(data)
	case FormatYAML:
		var f InputFile
		if err := f.Parse(data); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
		return f.Inputs()
	case FormatSVG:
		return ParseSVG(data)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// ParseText reads newline separated points in the form "x y", with each ring
// separated by a blank line. Lines starting with # are ignored.
//
// Rings are grouped into polygons by containment: a ring lying inside an
// earlier polygon is a hole in it, and any other ring starts a new polygon, so
// an island inside a hole is a polygon of its own. Winding order doesn't
// matter.
func ParseText(data []byte) ([]Input, error) {
	var rings []earclip.Ring
	var ring earclip.Ring
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return groupRings(rings, nil), nil
}

func parsePoint(line string) (earclip.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return earclip.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return earclip.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return earclip.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return earclip.Point{X: x, Y: y}, nil
}

// ParseSVG collects every <polygon> element in document order and groups them
// the same way ParseText does. A polygon's id attribute names it. Only the
// points attribute is read, so transforms are ignored.
func ParseSVG(data []byte) ([]Input, error) {
	root, err := svgparser.Parse(bytes.NewReader(data), true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var rings []earclip.Ring
	var names []string
	for i, el := range root.FindAll("polygon") {
		ring, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		rings = append(rings, ring)
		names = append(names, el.Attributes["id"])
	}
	return groupRings(rings, names), nil
}

// Points are separated by whitespace, and coordinates by a comma. Plain
// whitespace separated coordinates are also accepted.
func parseSVGPoints(points string) (earclip.Ring, error) {
	fields := strings.Fields(strings.ReplaceAll(points, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", points)
	}
	var ring earclip.Ring
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, err
		}
		ring = append(ring, point)
	}
	return ring, nil
}

func groupRings(rings []earclip.Ring, names []string) []Input {
	var inputs []Input
	for i, ring := range rings {
		owner := -1
		if len(ring) > 0 {
			for j := range inputs {
				if contains(inputs[j].Polygon, ring[0]) {
					owner = j
					break
				}
			}
		}
		if owner >= 0 {
			inputs[owner].Polygon.Holes = append(inputs[owner].Polygon.Holes, ring)
			continue
		}
		input := Input{Polygon: earclip.Polygon{Outer: ring}}
		if i < len(names) {
			input.Name = names[i]
		}
		inputs = append(inputs, input)
	}
	return inputs
}

// Is p inside the polygon's material? Points in its holes are not.
func contains(polygon earclip.Polygon, p earclip.Point) bool {
	if !advanced.PointStrictlyInside(polygon.Outer, p) {
		return false
	}
	for _, hole := range polygon.Holes {
		if advanced.PointInPolygon(hole, p) {
			return false
		}
	}
	return true
}
