package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/laserkit/beam/point"
	"github.com/laserkit/beam/rotate"
)

// Rotate prints a single point after one rotation.
type Rotate struct {
	Axis    string  `help:"Rotation axis" default:"z" enum:"x,y,z" env:"BEAM_ROTATE_AXIS"`
	Theta   float32 `help:"Rotation angle, radians unless --degrees" default:"0" env:"BEAM_ROTATE_THETA"`
	Degrees bool    `help:"Interpret theta as degrees" env:"BEAM_ROTATE_DEGREES"`
	X       float32 `arg:"" help:"Point x coordinate"`
	Y       float32 `arg:"" help:"Point y coordinate"`
}

// Run is called by Kong when the rotate command is executed.
func (r *Rotate) Run(logger *slog.Logger, out io.Writer) error {
	axis, err := rotate.ParseAxis(r.Axis)
	if err != nil {
		return err
	}
	theta := r.Theta
	if r.Degrees {
		theta = float32(float64(theta) * math.Pi / 180)
	}

	p := point.XYBinary(r.X, r.Y, true)
	rotate.About(axis, &p, theta)
	logger.Debug("rotated point", "axis", axis, "theta", theta, "x", p.X, "y", p.Y)

	_, err = fmt.Fprintf(out, "Point: %s\n", p)
	return err
}
