// Package scale maps integer values from one bounded range onto another.
//
// A Scaler normalizes a value against its source range and re-expands it into
// the destination range. Every subtraction and addition saturates, so an input
// outside the source range, or a range that does not fit its type, produces a
// clamped value rather than a wrapped one.
package scale

import "github.com/laserkit/beam/internal/satmath"

// Integer is the set of value types a Scaler converts between.
type Integer interface {
	~uint16 | ~uint32 | ~int16 | ~int32
}

// Scaler maps values in [MinSrc, MaxSrc] onto [MinDest, MaxDest].
//
// The zero value maps everything through a zero-width source range. Bounds
// are not validated; callers are expected to supply min <= max.
type Scaler[S, D Integer] struct {
	MinSrc  S
	MaxSrc  S
	MinDest D
	MaxDest D
}

// New returns a Scaler for the given source and destination ranges.
func New[S, D Integer](minSrc, maxSrc S, minDest, maxDest D) Scaler[S, D] {
	return Scaler[S, D]{
		MinSrc:  minSrc,
		MaxSrc:  maxSrc,
		MinDest: minDest,
		MaxDest: maxDest,
	}
}

// Scale converts v from the source range into the destination range.
//
// The intermediate ratio is computed in float32 and truncated toward zero.
// Scale(MinSrc) is MinDest and Scale(MaxSrc) is MaxDest. When MinSrc equals
// MaxSrc the ratio is NaN or infinite and the result is meaningless, though
// still within the range of D: NaN yields MinDest and infinity saturates.
func (s Scaler[S, D]) Scale(v S) D {
	num := satmath.Sub(v, s.MinSrc)
	den := satmath.Sub(s.MaxSrc, s.MinSrc)
	norm := satmath.ToFloat32(num) / satmath.ToFloat32(den)
	span := satmath.ToFloat32(satmath.Sub(s.MaxDest, s.MinDest))

	scaled := satmath.FromFloat32[D](norm * span)
	return satmath.Add(scaled, s.MinDest)
}
