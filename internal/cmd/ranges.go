package cmd

import (
	"fmt"
	"log/slog"

	"github.com/laserkit/beam/scale"
)

// Ranges are the source and destination bounds shared by scale and project.
type Ranges struct {
	SrcType string `help:"Source value type" default:"u16" enum:"u16,u32,i16,i32" env:"BEAM_SRC_TYPE"`
	DstType string `help:"Destination value type" default:"i16" enum:"u16,u32,i16,i32" env:"BEAM_DST_TYPE"`
	SrcMin  int64  `help:"Lower bound of the source range" default:"0" env:"BEAM_SRC_MIN"`
	SrcMax  int64  `help:"Upper bound of the source range" default:"100" env:"BEAM_SRC_MAX"`
	DstMin  int64  `help:"Lower bound of the destination range" default:"-10000" env:"BEAM_DST_MIN"`
	DstMax  int64  `help:"Upper bound of the destination range" default:"10000" env:"BEAM_DST_MAX"`
}

// Kinds parses the source and destination types.
func (r *Ranges) Kinds() (src, dst scale.Kind, err error) {
	if src, err = scale.ParseKind(r.SrcType); err != nil {
		return 0, 0, fmt.Errorf("source type: %w", err)
	}
	if dst, err = scale.ParseKind(r.DstType); err != nil {
		return 0, 0, fmt.Errorf("destination type: %w", err)
	}
	return src, dst, nil
}

func (r *Ranges) src() scale.Range { return scale.Range{Min: r.SrcMin, Max: r.SrcMax} }
func (r *Ranges) dst() scale.Range { return scale.Range{Min: r.DstMin, Max: r.DstMax} }

// warnDegenerate logs ranges the scaler accepts but cannot map meaningfully.
func (r *Ranges) warnDegenerate(logger *slog.Logger) {
	switch {
	case r.SrcMin == r.SrcMax:
		logger.Warn("source range has zero width; scaled values are undefined", "min", r.SrcMin, "max", r.SrcMax)
	case r.SrcMin > r.SrcMax:
		logger.Warn("source range is inverted", "min", r.SrcMin, "max", r.SrcMax)
	}
	if r.DstMin > r.DstMax {
		logger.Warn("destination range is inverted", "min", r.DstMin, "max", r.DstMax)
	}
}

// Validate checks that every bound fits its type. Kong calls it after
// parsing; commands call it again when run directly.
func (r *Ranges) Validate() error {
	src, dst, err := r.Kinds()
	if err != nil {
		return err
	}
	for _, b := range []struct {
		name string
		k    scale.Kind
		v    int64
	}{
		{"src-min", src, r.SrcMin}, {"src-max", src, r.SrcMax},
		{"dst-min", dst, r.DstMin}, {"dst-max", dst, r.DstMax},
	} {
		if err := scale.CheckFits(b.k, b.v); err != nil {
			return fmt.Errorf("--%s: %w", b.name, err)
		}
	}
	return nil
}
