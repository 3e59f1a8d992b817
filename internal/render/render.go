// Package render draws polygons and their triangulations to PNG images, and
// can show them inline in terminals that support it (iTerm).
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/earclip/advanced"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const Padding = 20

// Shape is one polygon and whatever triangulation was computed for it. A shape
// with Failed set is drawn in a warning color with no triangles.
type Shape struct {
	Label     string
	Polygon   advanced.PolygonWithHoles
	Triangles advanced.TriangleList
	Failed    bool
}

var ErrNothingToDraw = errors.New("nothing to draw")

// Draw renders shapes with scale pixels per unit. The y axis points up.
func Draw(shapes []Shape, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", scale)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, shape := range shapes {
		for _, ring := range shape.rings() {
			for _, p := range ring {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return nil, ErrNothingToDraw
	}

	width := int(math.Ceil(scale*(maxX-minX))) + Padding*2
	height := int(math.Ceil(scale*(maxY-minY))) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(Padding, Padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, shape := range shapes {
		shape.draw(c)
	}
	return c, nil
}

// SavePNG draws shapes and writes the image to path.
func SavePNG(path string, shapes []Shape, scale float64) error {
	c, err := Draw(shapes, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "writing %s", path)
}

// EncodePNG draws shapes and writes the image to w.
func EncodePNG(w io.Writer, shapes []Shape, scale float64) error {
	c, err := Draw(shapes, scale)
	if err != nil {
		return err
	}
	return c.EncodePNG(w)
}

// Show prints a saved image to w using the iTerm inline image protocol.
func Show(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func (s Shape) rings() []advanced.Ring {
	return append([]advanced.Ring{s.Polygon.Outer}, s.Polygon.Holes...)
}

func (s Shape) draw(c *gg.Context) {
	// Body, with holes cut out by the even-odd rule
	for _, ring := range s.rings() {
		tracePath(c, ring)
	}
	if s.Failed {
		c.SetRGBA(0.8, 0.1, 0.1, 0.6)
	} else {
		c.SetRGBA(0, 0.5, 0, 0.6)
	}
	c.Fill()

	c.SetLineWidth(1)
	c.SetRGB(1, 1, 0)
	for _, tri := range s.Triangles {
		tracePath(c, advanced.Ring{tri.A, tri.B, tri.C})
		c.Stroke()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, ring := range s.rings() {
		tracePath(c, ring)
		c.Stroke()
	}

	if s.Label != "" && len(s.Polygon.Outer) > 0 {
		center := s.Polygon.Outer.Centroid()
		// Text has to be drawn without the flip, so go back to pixel space
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(s.Label, x, y, 0.5, 0.5)
		c.Pop()
	}
}

func tracePath(c *gg.Context, ring advanced.Ring) {
	if len(ring) < 2 {
		return
	}
	c.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
