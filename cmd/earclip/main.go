// Command earclip triangulates polygons read from a file or stdin, prints the
// triangles, and optionally draws them.
//
// Input is plain text, YAML, or SVG. In plain text, each ring is a list of
// newline separated points in the form "x y", and rings are separated by an
// extra newline. A ring inside an earlier polygon is a hole in it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip"
	"github.com/osuushi/earclip/internal/dbg"
	"github.com/osuushi/earclip/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	Input     string
	Format    string
	Workers   int
	Triangles bool
	PNG       string
	Scale     float64
	Imgcat    bool
	NoColor   bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("earclip", "Triangulate polygons with holes by ear clipping.")
	app.Arg("input", "Input file, or - for stdin.").Default("-").StringVar(&opts.Input)
	app.Flag("format", "Input format. By default it is picked from the file extension.").
		Short('f').Default(FormatAuto).EnumVar(&opts.Format, FormatAuto, FormatText, FormatYAML, FormatSVG)
	app.Flag("workers", "Polygons to triangulate at once. Zero means one per CPU.").
		Short('w').Default("0").IntVar(&opts.Workers)
	app.Flag("triangles", "Print every triangle.").Short('t').BoolVar(&opts.Triangles)
	app.Flag("png", "Draw the result to this PNG file.").StringVar(&opts.PNG)
	app.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64Var(&opts.Scale)
	app.Flag("imgcat", "Show the drawing in the terminal (iTerm only).").BoolVar(&opts.Imgcat)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.NoColor)
	return app
}

func main() {
	var opts options
	app := newApp(&opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	failed, err := run(opts, os.Stdin, os.Stdout)
	app.FatalIfError(err, "")
	if failed > 0 {
		os.Exit(1)
	}
}

// run triangulates everything in the input and reports on out. It returns the
// number of polygons that failed to triangulate.
func run(opts options, stdin io.Reader, out io.Writer) (int, error) {
	inputs, err := readInputs(opts, stdin)
	if err != nil {
		return 0, err
	}
	au := aurora.NewAurora(!opts.NoColor)

	polygons := make([]earclip.Polygon, len(inputs))
	for i, input := range inputs {
		polygons[i] = input.Polygon
	}
	results := earclip.TriangulateAll(polygons, opts.Workers)

	var shapes []render.Shape
	failed := 0
	for i, result := range results {
		label := dbg.Label(au, inputs[i].Name, i)
		name := inputs[i].Name
		if name == "" {
			name = dbg.Name(i)
		}
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "%s: %s\n", label, au.Red(result.Err))
		} else {
			fmt.Fprintf(out, "%s: %d triangles, area %g\n",
				label, au.Green(len(result.Triangles)), totalArea(result.Triangles))
			if opts.Triangles {
				for _, tri := range result.Triangles {
					fmt.Fprintf(out, "  %s\n", tri)
				}
			}
		}
		shapes = append(shapes, render.Shape{
			Label:     name,
			Polygon:   inputs[i].Polygon,
			Triangles: result.Triangles,
			Failed:    result.Err != nil,
		})
	}
	fmt.Fprintln(out, au.Bold(fmt.Sprintf("triangulated %d of %d polygons", len(results)-failed, len(results))))

	if err := draw(opts, shapes, out); err != nil {
		return failed, err
	}
	return failed, nil
}

func readInputs(opts options, stdin io.Reader) ([]Input, error) {
	format := opts.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(opts.Input)
	}
	if opts.Input == "" || opts.Input == "-" {
		return ReadInputs(stdin, format)
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return ReadInputs(f, format)
}

func draw(opts options, shapes []render.Shape, out io.Writer) error {
	path := opts.PNG
	if path == "" {
		if !opts.Imgcat {
			return nil
		}
		f, err := os.CreateTemp("", "earclip-*.png")
		if err != nil {
			return errors.Wrap(err, "creating temporary image")
		}
		f.Close()
		path = f.Name()
		defer os.Remove(path)
	}

	if err := render.SavePNG(path, shapes, opts.Scale); err != nil {
		return err
	}
	if opts.Imgcat {
		render.Show(path, out)
	}
	return nil
}

func totalArea(triangles []earclip.Triangle) float64 {
	var area float64
	for _, tri := range triangles {
		area += tri.Area()
	}
	return area
}
