package ccpm

import "github.com/katalvlaran/ccpm/ccpm/diag"

// Option configures optional behavior of MakeAoA. The zero value of every
// option's effect is "disabled", so omitting options costs nothing on the
// hot path.
type Option func(*engineOptions)

// engineOptions holds resolved settings for a single MakeAoA call.
type engineOptions struct {
	diag *diag.Sink
}

func defaultEngineOptions() engineOptions {
	return engineOptions{diag: diag.Disabled()}
}

// WithDiagnostics routes the engine's progress traces and stage errors
// through sink. Passing a nil sink has no effect (diagnostics stay
// disabled).
func WithDiagnostics(sink *diag.Sink) Option {
	return func(o *engineOptions) {
		if sink != nil {
			o.diag = sink
		}
	}
}
