package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/laserkit/beam/scale"
)

// Scale prints values rescaled from the source range to the destination range.
type Scale struct {
	Ranges `embed:""`
	Step   int64   `help:"Sweep increment used when no values are given" default:"10" env:"BEAM_SCALE_STEP"`
	Values []int64 `arg:"" optional:"" help:"Values to scale; sweeps the source range when empty"`
}

// Run is called by Kong when the scale command is executed.
func (s *Scale) Run(logger *slog.Logger, out io.Writer) error {
	src, dst, err := s.Kinds()
	if err != nil {
		return err
	}
	f, err := scale.Lookup(src, dst, s.src(), s.dst())
	if err != nil {
		return fmt.Errorf("scaler %s->%s: %w", src, dst, err)
	}
	s.warnDegenerate(logger)
	logger.Debug("scaler configured",
		"src", src, "src_min", s.SrcMin, "src_max", s.SrcMax,
		"dst", dst, "dst_min", s.DstMin, "dst_max", s.DstMax)

	emit := func(v int64) error {
		if err := scale.CheckFits(src, v); err != nil {
			return fmt.Errorf("value %d: %w", v, err)
		}
		_, err := fmt.Fprintf(out, "%d scaled to target range = %d\n", v, f(v))
		return err
	}

	if len(s.Values) > 0 {
		for _, v := range s.Values {
			if err := emit(v); err != nil {
				return err
			}
		}
		return nil
	}
	if s.Step <= 0 {
		return errors.New("step must be positive")
	}
	for v := s.SrcMin; v <= s.SrcMax; v += s.Step {
		if err := emit(v); err != nil {
			return err
		}
	}
	return nil
}
