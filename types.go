package settings

import (
	"time"

	"github.com/goliatone/go-settings/pkg/notify"
)

// EvalContext carries inputs needed when evaluating an expression against a
// settings snapshot.
type EvalContext struct {
	Snapshot map[string]any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx EvalContext) withDefaultNow() EvalContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx EvalContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx EvalContext) withDefaultMaps() EvalContext {
	if ctx.Snapshot == nil {
		ctx.Snapshot = map[string]any{}
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// Evaluator executes expressions against an evaluation context.
type Evaluator interface {
	Evaluate(ctx EvalContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx EvalContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Response stores the result produced by an evaluator.
type Response struct {
	Value any
}

type Option func(*settingsConfig)

type settingsConfig struct {
	loader       Loader
	notifier     *notify.Notifier
	diagnostics  DiagnosticSink
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       EvaluatorLogger
}

func applyOptions(opts []Option) settingsConfig {
	cfg := settingsConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLoader injects the deferred root-configuration loader invoked on first
// access when Configure was never called.
func WithLoader(loader Loader) Option {
	return func(cfg *settingsConfig) {
		cfg.loader = loader
	}
}

// WithNotifier attaches a change notifier. A fresh notifier is created when
// none is supplied.
func WithNotifier(notifier *notify.Notifier) Option {
	return func(cfg *settingsConfig) {
		cfg.notifier = notifier
	}
}

// WithEvaluator configures the expression evaluator used by Evaluate.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *settingsConfig) {
		cfg.evaluator = e
	}
}

func (s *Settings) evaluator() Evaluator {
	return s.cfg.evaluator
}

func (s *Settings) withEvaluator(e Evaluator) {
	s.cfg.evaluator = e
}

func (s *Settings) programCacheConfig() ProgramCache {
	return s.cfg.programCache
}

func (s *Settings) functionRegistry() *FunctionRegistry {
	return s.cfg.functions
}

func (s *Settings) evaluatorLogger() EvaluatorLogger {
	if s.cfg.logger != nil {
		return s.cfg.logger
	}
	return noopEvaluatorLogger{}
}

func (s *Settings) diagnostics() DiagnosticSink {
	if s.cfg.diagnostics != nil {
		return s.cfg.diagnostics
	}
	return noopDiagnostics{}
}
