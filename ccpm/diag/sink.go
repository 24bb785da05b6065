package diag

import (
	"io"

	"github.com/rs/zerolog"
)

// Sink is the ccpm engine's single diagnostic output. The zero value is not
// usable; construct with New or Disabled.
type Sink struct {
	log     zerolog.Logger
	enabled bool
}

// New returns a Sink that writes structured trace and error records to w
// when enabled is true. When enabled is false, Trace and Error are no-ops
// regardless of w.
func New(w io.Writer, enabled bool) *Sink {
	return &Sink{
		log:     zerolog.New(w).With().Timestamp().Logger(),
		enabled: enabled,
	}
}

// Disabled returns a Sink whose Trace and Error calls are no-ops.
func Disabled() *Sink {
	return &Sink{enabled: false}
}

// Trace records a pipeline stage's progress with arbitrary structured
// fields. It is a no-op if the sink is disabled.
func (s *Sink) Trace(stage string, fields map[string]any) {
	if s == nil || !s.enabled {
		return
	}
	evt := s.log.Trace().Str("stage", stage)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg("ccpm stage")
}

// Error records a pipeline stage's failure. It is a no-op if the sink is
// disabled.
func (s *Sink) Error(stage string, err error) {
	if s == nil || !s.enabled || err == nil {
		return
	}
	s.log.Error().Str("stage", stage).Err(err).Msg("ccpm stage failed")
}
