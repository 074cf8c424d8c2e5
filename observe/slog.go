package observe

import (
	"context"
	"log/slog"
)

// SlogSink writes records as structured log entries. The record kind becomes
// the message, the epoch an int attribute and every field a float attribute:
//
//	level=INFO msg=epoch epoch=1000 mse=0.00141
type SlogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogSink creates a sink that logs at slog.LevelInfo. A nil logger uses
// slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogSink{logger: logger, level: slog.LevelInfo}
}

// WithLevel returns a copy of the sink logging at level.
func (s *SlogSink) WithLevel(level slog.Level) *SlogSink {
	return &SlogSink{logger: s.logger, level: level}
}

// Emit logs r.
func (s *SlogSink) Emit(r Record) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, s.level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(r.Fields)+1)
	if r.Kind != KindPrediction {
		attrs = append(attrs, slog.Int("epoch", r.Epoch))
	}
	for _, f := range r.Fields {
		attrs = append(attrs, slog.Float64(f.Key, f.Value))
	}
	s.logger.LogAttrs(ctx, s.level, r.Kind.String(), attrs...)
}
