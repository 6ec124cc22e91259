package settings

import (
	"fmt"
	"os"
)

// DiagnosticSink receives warning-class diagnostics, such as an override
// touching a registered complex setting.
type DiagnosticSink interface {
	Warnf(format string, args ...any)
}

// DiagnosticFunc adapts a function to DiagnosticSink.
type DiagnosticFunc func(format string, args ...any)

// Warnf implements DiagnosticSink.
func (f DiagnosticFunc) Warnf(format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}

type noopDiagnostics struct{}

func (noopDiagnostics) Warnf(string, ...any) {}

// StderrDiagnostics returns a sink that writes warnings to standard error.
func StderrDiagnostics() DiagnosticSink {
	return DiagnosticFunc(func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
	})
}

// WithDiagnostics attaches a diagnostic sink to the Settings instance.
func WithDiagnostics(sink DiagnosticSink) Option {
	return func(cfg *settingsConfig) {
		if sink == nil {
			cfg.diagnostics = noopDiagnostics{}
			return
		}
		cfg.diagnostics = sink
	}
}
