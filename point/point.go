// Package point defines the point type that flows through a projection pipeline.
package point

import "fmt"

// Mode selects how a point's beam output is expressed.
type Mode uint8

const (
	// Binary points are either lit or blanked.
	Binary Mode = iota
	// Analog points carry a continuous intensity.
	Analog
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Analog:
		return "analog"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// PipelinePoint is a 2D coordinate plus its output mode.
//
// On is only meaningful in Binary mode and Intensity only in Analog mode.
type PipelinePoint struct {
	X, Y      float32
	Mode      Mode
	On        bool
	Intensity float32
}

// XYBinary returns a binary-mode point.
func XYBinary(x, y float32, on bool) PipelinePoint {
	return PipelinePoint{X: x, Y: y, Mode: Binary, On: on}
}

// XYAnalog returns an analog-mode point.
func XYAnalog(x, y, intensity float32) PipelinePoint {
	return PipelinePoint{X: x, Y: y, Mode: Analog, Intensity: intensity}
}

// IsBlank reports whether the beam should be off at this point.
func (p PipelinePoint) IsBlank() bool {
	if p.Mode == Analog {
		return !(p.Intensity > 0)
	}
	return !p.On
}

func (p PipelinePoint) String() string {
	if p.Mode == Analog {
		return fmt.Sprintf("(%g, %g) analog %g", p.X, p.Y, p.Intensity)
	}
	state := "off"
	if p.On {
		state = "on"
	}
	return fmt.Sprintf("(%g, %g) binary %s", p.X, p.Y, state)
}
