// Package pipeline projects points onto integer output ranges.
//
// A Projector orients each point with a sequence of rotations and then scales
// both coordinates into the output type, for example a signed 16-bit galvo
// control word.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laserkit/beam/internal/satmath"
	"github.com/laserkit/beam/point"
	"github.com/laserkit/beam/rotate"
	"github.com/laserkit/beam/scale"
)

// Rotation is one orientation step applied before scaling.
type Rotation struct {
	Axis  rotate.Axis
	Theta float32
}

// ParseRotation parses "axis:theta", e.g. "z:1.5708".
func ParseRotation(s string) (Rotation, error) {
	name, theta, ok := strings.Cut(s, ":")
	if !ok {
		return Rotation{}, fmt.Errorf("rotation %q: expected axis:theta", s)
	}
	axis, err := rotate.ParseAxis(name)
	if err != nil {
		return Rotation{}, fmt.Errorf("rotation %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(theta), 32)
	if err != nil {
		return Rotation{}, fmt.Errorf("rotation %q: %w", s, err)
	}
	return Rotation{Axis: axis, Theta: float32(v)}, nil
}

func (r Rotation) String() string {
	return fmt.Sprintf("%s:%g", r.Axis, r.Theta)
}

// Projector rotates points and scales their coordinates from S to D.
//
// Coordinates are truncated into S with saturation before scaling, so the
// source range of X and Y is expressed in S.
type Projector[S, D scale.Integer] struct {
	Rotations []Rotation
	X         scale.Scaler[S, D]
	Y         scale.Scaler[S, D]
}

// Project returns the output sample for p. p itself is not modified.
func (pr Projector[S, D]) Project(p point.PipelinePoint) Sample[D] {
	for _, r := range pr.Rotations {
		rotate.About(r.Axis, &p, r.Theta)
	}
	return Sample[D]{
		X:  pr.X.Scale(satmath.FromFloat32[S](p.X)),
		Y:  pr.Y.Scale(satmath.FromFloat32[S](p.Y)),
		On: !p.IsBlank(),
	}
}

// ProjectAll projects every point in pts, preserving order.
func (pr Projector[S, D]) ProjectAll(pts []point.PipelinePoint) []Sample[D] {
	out := make([]Sample[D], len(pts))
	for i, p := range pts {
		out[i] = pr.Project(p)
	}
	return out
}
