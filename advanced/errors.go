package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Every failure the pipeline can report is an *Error carrying one of these
// kinds. None of them come with partial output.
type Kind int

const (
	// An invariant inside the package was broken. Recovered from a panic at the
	// public API; seeing one is a bug.
	InternalError Kind = iota
	// A ring is not simple, a hole is outside the outer ring, or rings touch.
	InvalidInput
	// No hole-to-boundary bridge survived even the exhaustive search.
	BridgeNotFound
	// A ring produced by splicing in a hole failed re-validation.
	StitchConsistencyFailure
	// Ear clipping could not make progress.
	NoEarFound
)

var kindNames = [...]string{
	"internal error",
	"invalid input",
	"bridge not found",
	"stitch consistency failure",
	"no ear found",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Ring index used in diagnostics for the outer boundary. Holes are reported by
// their index in the caller's hole list.
const OuterRing = -1

// Diagnostic fields are only meaningful for the kinds that set them:
//
//	InvalidInput:             Rings, Edges (for intersections) or Point (for containment)
//	BridgeNotFound:           Rings[0] (the hole), Point (its rightmost vertex)
//	StitchConsistencyFailure: Rings[0] (the hole just spliced), Edges in the stitched ring
//	NoEarFound:               Remaining, Size
type Error struct {
	Kind      Kind
	Rings     [2]int
	Edges     [2]int
	Point     Point
	Remaining int
	Size      int
	err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Cause lets errors.Cause from github.com/pkg/errors see through the kind.
func (e *Error) Cause() error {
	return e.err
}

// The kind of err, if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func ringName(ring int) string {
	if ring == OuterRing {
		return "outer ring"
	}
	return fmt.Sprintf("hole %d", ring)
}

func invalidCrossing(c Crossing) *Error {
	var err error
	if c.RingA == c.RingB {
		err = errors.Errorf("%s is self-intersecting at edges %d and %d", ringName(c.RingA), c.EdgeA, c.EdgeB)
	} else {
		err = errors.Errorf("%s edge %d intersects %s edge %d", ringName(c.RingA), c.EdgeA, ringName(c.RingB), c.EdgeB)
	}
	return &Error{
		Kind:  InvalidInput,
		Rings: [2]int{c.RingA, c.RingB},
		Edges: [2]int{c.EdgeA, c.EdgeB},
		err:   err,
	}
}

func invalidPlacement(hole, other int, p Point, format string, args ...interface{}) *Error {
	return &Error{
		Kind:  InvalidInput,
		Rings: [2]int{hole, other},
		Point: p,
		err:   errors.Errorf(format, args...),
	}
}

func bridgeNotFound(hole int, h Point) *Error {
	return &Error{
		Kind:  BridgeNotFound,
		Rings: [2]int{hole, OuterRing},
		Point: h,
		err:   errors.Errorf("no valid bridge from hole %d at %v", hole, h),
	}
}

func stitchConsistency(hole, i, j, size int) *Error {
	cause := errors.Errorf("edges %d and %d cross", i, j)
	return &Error{
		Kind:  StitchConsistencyFailure,
		Rings: [2]int{hole, hole},
		Edges: [2]int{i, j},
		Size:  size,
		err:   errors.Wrapf(cause, "stitched ring of %d vertices is not simple after splicing hole %d", size, hole),
	}
}

func noEarFound(remaining, size int) *Error {
	return &Error{
		Kind:      NoEarFound,
		Remaining: remaining,
		Size:      size,
		err:       errors.Errorf("no ear among %d remaining vertices of a %d vertex ring", remaining, size),
	}
}

// Internal invariants are checked with panics, since threading an error out of
// code that can only fail on a bug adds noise for nothing. The public API
// recovers them with HandleTriangulatePanicRecover.
func fatalf(format string, args ...interface{}) {
	panic(&Error{Kind: InternalError, err: errors.Errorf(format, args...)})
}

// Convert a recovered panic into an error. Panics that aren't errors at all are
// re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if e, ok := r.(*Error); ok {
		return e
	}
	if err, ok := r.(error); ok {
		return &Error{Kind: InternalError, err: errors.WithStack(err)}
	}
	panic(r)
}
