// Ear clipping triangulation of polygons with holes.
//
// This package converts a simple polygon, which may be non-convex and may
// contain holes, into a set of non-overlapping triangles containing only the
// original points. Holes are folded into the outer boundary with bridge edges
// first, and the resulting single ring is triangulated by ear clipping.
//
// Every call is a pure function of its input, so independent polygons can be
// triangulated concurrently. TriangulateAll does exactly that.
package earclip

import (
	"runtime"
	"sync"

	"github.com/osuushi/earclip/advanced"
)

type Point = advanced.Point
type Ring = advanced.Ring
type Triangle = advanced.Triangle
type Polygon = advanced.PolygonWithHoles
type Error = advanced.Error
type Kind = advanced.Kind

const (
	InternalError            = advanced.InternalError
	InvalidInput             = advanced.InvalidInput
	BridgeNotFound           = advanced.BridgeNotFound
	StitchConsistencyFailure = advanced.StitchConsistencyFailure
	NoEarFound               = advanced.NoEarFound
)

// Take an outer boundary and a list of holes, and convert them into triangles.
//
// The boundary and holes must each be simple, holes must lie inside the
// boundary, and no two rings may touch. Winding order doesn't matter. Holes
// with fewer than three points are ignored, and a boundary with fewer than
// three points produces no triangles and no error.
//
// On failure the error is an *Error, and no triangles are returned.
func Triangulate(outer []Point, holes [][]Point) (result []Triangle, err error) {
	polygon := Polygon{Outer: outer}
	for _, hole := range holes {
		polygon.Holes = append(polygon.Holes, hole)
	}
	return TriangulatePolygon(polygon)
}

func TriangulatePolygon(polygon Polygon) (result []Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return polygon.Triangulate()
}

type Result struct {
	Triangles []Triangle
	Err       error
}

// Triangulate many independent polygons on a pool of workers. Results are in
// the same order as the input. A worker count below one means one worker per
// CPU.
func TriangulateAll(polygons []Polygon, workers int) []Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(polygons))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				triangles, err := TriangulatePolygon(polygons[i])
				results[i] = Result{Triangles: triangles, Err: err}
			}
		}()
	}
	for i := range polygons {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
