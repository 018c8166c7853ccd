package core

import "math"

// Epsilon is the tolerance used for floating point comparisons
const Epsilon = 1e-9

// NearlyEqual reports whether two floats are equal within Epsilon
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// LessOrNearlyEqual reports whether a is less than b or nearly equal to it
func LessOrNearlyEqual(a, b float64) bool {
	return a < b || NearlyEqual(a, b)
}

// GreaterOrNearlyEqual reports whether a is greater than b or nearly equal to it
func GreaterOrNearlyEqual(a, b float64) bool {
	return a > b || NearlyEqual(a, b)
}
