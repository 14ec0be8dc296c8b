// Package grid holds the layout core of the board: percent vectors, scale
// functions, resize sessions and the slot assignment with its drag-swap
// protocol. Nothing in here knows about terminals or files.
package grid

import "math"

// Total is the value every percent vector sums to.
const Total = 100.0

// Tolerance is the accepted floating-point drift on sums and minimums.
const Tolerance = 1e-6

// Vector is an ordered sequence of non-negative percentages summing to Total.
type Vector []float64

// Sum returns the sum of all entries.
func (v Vector) Sum() float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// Clone returns a copy that shares no storage with v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether both vectors have the same length and every entry
// differs by at most tol.
func (v Vector) Equal(other Vector, tol float64) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// Normalize scales every entry by Total/sum so the result sums to Total.
// A vector whose sum is not a positive finite number is returned unchanged.
func Normalize(v Vector) Vector {
	out := v.Clone()
	sum := v.Sum()
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return out
	}
	factor := Total / sum
	for i := range out {
		out[i] *= factor
	}
	return out
}
