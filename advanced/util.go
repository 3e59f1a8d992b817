package advanced

import "math"

// Tolerance shared by every predicate. A point judged to be on an edge by one
// component is judged to be on it by all of them, so this is a constant rather
// than something threaded through each call.
const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
