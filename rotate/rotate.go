// Package rotate orients pipeline points about a conceptual axis.
//
// Angles are in radians and may be any real value; rotation is periodic in
// 2π. AboutX and AboutY only foreshorten a single coordinate, which produces
// the tilt effect used when projecting onto a flat surface. AboutZ is a
// planar rotation.
package rotate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/laserkit/beam/point"
)

// ErrUnknownAxis is returned by ParseAxis for names other than x, y or z.
var ErrUnknownAxis = errors.New("unknown rotation axis")

// Axis names the conceptual axis of a rotation.
type Axis uint8

// Valid axes; the zero Axis is invalid.
const (
	X Axis = iota + 1
	Y
	Z
)

// ParseAxis accepts x, y or z in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// AboutX rotates p about the x-axis, scaling Y by cos(theta).
func AboutX(p *point.PipelinePoint, theta float32) {
	p.Y *= cos32(theta)
}

// AboutY rotates p about the y-axis, scaling X by cos(theta).
func AboutY(p *point.PipelinePoint, theta float32) {
	p.X *= cos32(theta)
}

// AboutZ rotates p counter-clockwise in the XY plane.
func AboutZ(p *point.PipelinePoint, theta float32) {
	sin, cos := sincos32(theta)
	x := p.X*cos - p.Y*sin
	y := p.Y*cos + p.X*sin
	p.X = x
	p.Y = y
}

// About dispatches to the rotation for axis. Unknown axes leave p unchanged.
func About(axis Axis, p *point.PipelinePoint, theta float32) {
	switch axis {
	case X:
		AboutX(p, theta)
	case Y:
		AboutY(p, theta)
	case Z:
		AboutZ(p, theta)
	}
}

func cos32(theta float32) float32 {
	return float32(math.Cos(float64(theta)))
}

func sincos32(theta float32) (sin, cos float32) {
	s, c := math.Sincos(float64(theta))
	return float32(s), float32(c)
}
