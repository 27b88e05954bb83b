package log

import (
	"context"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"
)

// SampleLogger records encoded output frames.
type SampleLogger interface {
	Log(label string, frame []byte)
}

type sampleLogger struct {
	h   slog.Handler
	now func() time.Time
	seq atomic.Uint64
}

// NewSampleLogger returns a SampleLogger emitting one LevelTrace record per
// frame through h. A nil h discards everything.
func NewSampleLogger(h slog.Handler) SampleLogger {
	return &sampleLogger{h: h, now: time.Now}
}

// Log emits a "frame" record carrying the frame sequence number, the label
// (usually the destination kind), the frame size and its hex encoding.
// Empty frames are not counted.
func (s *sampleLogger) Log(label string, frame []byte) {
	if s.h == nil || len(frame) == 0 {
		return
	}
	ctx := context.Background()
	if !s.h.Enabled(ctx, LevelTrace) {
		return
	}

	r := slog.NewRecord(s.now(), LevelTrace, "frame", 0)
	r.AddAttrs(
		slog.Uint64("seq", s.seq.Add(1)),
		slog.String("dst", label),
		slog.Int("bytes", len(frame)),
		slog.String("hex", hex.EncodeToString(frame)),
	)
	_ = s.h.Handle(ctx, r)
}
