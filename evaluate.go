package settings

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoEvaluator = errors.New("settings: evaluator not configured")

// Evaluate executes expr against the visible settings snapshot using the
// configured evaluator and wraps the result. Visible keys bind as variables,
// so an expression like `DEBUG && RETRIES > 2` reads the effective values of
// DEBUG and RETRIES, overrides included.
func (s *Settings) Evaluate(expr string) (Response, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return Response{}, err
	}
	return s.EvaluateWith(EvalContext{Snapshot: snapshot}, expr)
}

// EvaluateWith executes expr using ctx, falling back to the current snapshot
// when ctx.Snapshot is nil.
func (s *Settings) EvaluateWith(ctx EvalContext, expr string) (Response, error) {
	if expr == "" {
		return Response{}, fmt.Errorf("expression must not be empty")
	}
	evaluator, err := s.resolveEvaluator()
	if err != nil {
		return Response{}, err
	}
	if ctx.Snapshot == nil {
		snapshot, err := s.Snapshot()
		if err != nil {
			return Response{}, err
		}
		ctx.Snapshot = snapshot
	}
	ctx = ctx.withDefaultNow().withDefaultMaps()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(engine, expr, evalErr)
	s.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expr,
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return Response{}, evalErr
	}
	return Response{Value: value}, nil
}

func (s *Settings) resolveEvaluator() (Evaluator, error) {
	evaluator := s.evaluator()
	if evaluator != nil {
		return evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := s.programCacheConfig(); cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := s.functionRegistry(); registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	s.withEvaluator(defaultEvaluator)
	return defaultEvaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*settings.exprEvaluator":
		return "expr"
	case "*settings.celEvaluator":
		return "cel"
	case "*settings.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
