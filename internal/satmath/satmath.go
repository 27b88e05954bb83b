// Package satmath provides saturating arithmetic for fixed-width integers.
//
// Every helper clamps at the representable range of its type instead of
// wrapping, so results fed to output hardware never jump from one end of the
// range to the other.
package satmath

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// Bounds returns the smallest and largest values representable by T.
func Bounds[T constraints.Integer]() (lo, hi T) {
	var zero T
	if !Signed[T]() {
		return 0, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	hi = T(1)<<(bits-1) - 1
	return -hi - 1, hi
}

// Add returns a+b clamped to the range of T.
func Add[T constraints.Integer](a, b T) T {
	lo, hi := Bounds[T]()
	r := a + b
	if b > 0 && r < a {
		return hi
	}
	if b < 0 && r > a {
		return lo
	}
	return r
}

// Sub returns a-b clamped to the range of T. For unsigned types a result
// below zero becomes zero.
func Sub[T constraints.Integer](a, b T) T {
	lo, hi := Bounds[T]()
	r := a - b
	if b > 0 && r > a {
		return lo
	}
	if b < 0 && r < a {
		return hi
	}
	return r
}

// ToFloat32 widens v to float32, rounding to nearest for magnitudes above 2^24.
func ToFloat32[T constraints.Integer](v T) float32 {
	return float32(v)
}

// FromFloat32 truncates f toward zero and clamps it to the range of T.
// NaN converts to 0.
func FromFloat32[T constraints.Integer](f float32) T {
	if math.IsNaN(float64(f)) {
		return 0
	}
	lo, hi := Bounds[T]()
	v := math.Trunc(float64(f))
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return T(v)
}
