package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/laserkit/beam/internal/log"
	"github.com/laserkit/beam/pipeline"
	"github.com/laserkit/beam/point"
	"github.com/laserkit/beam/scale"
)

// Project rotates and scales a stream of points into output samples.
type Project struct {
	Ranges `embed:""`
	Rotate []string `help:"Rotations applied in order before scaling, as axis:theta (radians)" env:"BEAM_PROJECT_ROTATE"`
	Input  string   `help:"Point file with one 'x y [on|off|intensity]' per line, - for stdin" default:"-" env:"BEAM_PROJECT_INPUT"`
	Format string   `help:"Output format; auto writes text to a terminal and binary frames otherwise" default:"auto" enum:"auto,text,binary" env:"BEAM_PROJECT_FORMAT"`
}

// Run is called by Kong when the project command is executed.
func (p *Project) Run(logger *slog.Logger, frames log.SampleLogger, in io.Reader, out io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	src, dst, err := p.Kinds()
	if err != nil {
		return err
	}
	rots := make([]pipeline.Rotation, 0, len(p.Rotate))
	for _, s := range p.Rotate {
		r, err := pipeline.ParseRotation(s)
		if err != nil {
			return err
		}
		rots = append(rots, r)
	}
	p.warnDegenerate(logger)

	if p.Input != "-" {
		f, err := os.Open(p.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	pts, err := ReadPoints(in)
	if err != nil {
		return err
	}

	res, err := projectFor(src, dst, p.Ranges, rots, pts)
	if err != nil {
		return err
	}
	logger.Info("projected points", "points", len(pts), "rotations", len(rots), "src", src, "dst", dst, "bytes", len(res.frame))
	frames.Log(dst.String(), res.frame)

	if p.binaryOutput(out) {
		_, err = out.Write(res.frame)
		return err
	}
	for _, line := range res.lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Project) binaryOutput(out io.Writer) bool {
	switch p.Format {
	case "binary":
		return true
	case "text":
		return false
	}
	if f, ok := out.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

// ReadPoints parses whitespace separated "x y [mode]" lines. The optional
// mode is on/off (also 1/0, true/false) for binary points, or any other
// number for an analog intensity. Points without a mode are lit. Blank lines
// and lines starting with # are skipped.
func ReadPoints(r io.Reader) ([]point.PipelinePoint, error) {
	var pts []point.PipelinePoint
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: expected 'x y [mode]', got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		if len(fields) == 2 {
			pts = append(pts, point.XYBinary(float32(x), float32(y), true))
			continue
		}
		switch strings.ToLower(fields[2]) {
		case "on", "1", "true":
			pts = append(pts, point.XYBinary(float32(x), float32(y), true))
		case "off", "0", "false":
			pts = append(pts, point.XYBinary(float32(x), float32(y), false))
		default:
			v, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: mode: %w", line, err)
			}
			pts = append(pts, point.XYAnalog(float32(x), float32(y), float32(v)))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

type projected struct {
	lines []string
	frame []byte
}

func projectFor(src, dst scale.Kind, r Ranges, rots []pipeline.Rotation, pts []point.PipelinePoint) (projected, error) {
	switch src {
	case scale.Uint16:
		return projectDest[uint16](dst, r, rots, pts)
	case scale.Uint32:
		return projectDest[uint32](dst, r, rots, pts)
	case scale.Int16:
		return projectDest[int16](dst, r, rots, pts)
	case scale.Int32:
		return projectDest[int32](dst, r, rots, pts)
	}
	return projected{}, fmt.Errorf("%w: %s", scale.ErrUnknownKind, src)
}

func projectDest[S scale.Integer](dst scale.Kind, r Ranges, rots []pipeline.Rotation, pts []point.PipelinePoint) (projected, error) {
	switch dst {
	case scale.Uint16:
		return projectAs[S, uint16](r, rots, pts), nil
	case scale.Uint32:
		return projectAs[S, uint32](r, rots, pts), nil
	case scale.Int16:
		return projectAs[S, int16](r, rots, pts), nil
	case scale.Int32:
		return projectAs[S, int32](r, rots, pts), nil
	}
	return projected{}, fmt.Errorf("%w: %s", scale.ErrUnknownKind, dst)
}

func projectAs[S, D scale.Integer](r Ranges, rots []pipeline.Rotation, pts []point.PipelinePoint) projected {
	s := scale.New(S(r.SrcMin), S(r.SrcMax), D(r.DstMin), D(r.DstMax))
	pr := pipeline.Projector[S, D]{Rotations: rots, X: s, Y: s}
	samples := pr.ProjectAll(pts)

	res := projected{frame: pipeline.EncodeFrame(samples)}
	for _, smp := range samples {
		state := "off"
		if smp.On {
			state = "on"
		}
		res.lines = append(res.lines, fmt.Sprintf("%d %d %s", smp.X, smp.Y, state))
	}
	return res
}
