package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/report"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
)

type RunOption func(*runConfig)

type runConfig struct {
	storer storage.Storer
}

// WithStorer records every case outcome through s once the run completes.
func WithStorer(s storage.Storer) RunOption {
	return func(c *runConfig) {
		c.storer = s
	}
}

// Source returns the history source tag for evaluations recorded by a suite run.
func Source(name string) string {
	return "suite:" + name
}

// Run evaluates every case in order. It stops early, returning the partial
// report and the context error, if ctx is cancelled.
func Run(ctx context.Context, loaded *LoadedSuite, calc *eval.Calculator, opts ...RunOption) (*report.Report, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := loaded.Suite
	r := &report.Report{
		Meta: report.NewMeta(time.Now()),
		Suite: report.SuiteInfo{
			Name:        s.Name,
			Description: s.Description,
			Version:     s.Version,
		},
	}

	var records []domain.Evaluation
	if cfg.storer != nil {
		records = make([]domain.Evaluation, 0, len(s.Cases))
	}

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			r.Finish(time.Now())
			return r, err
		}

		c := &s.Cases[i]
		start := time.Now()
		res, err := calc.Calculate(c.Expression)
		elapsed := time.Since(start)

		outcome := check(c, res, err)
		outcome.Duration = elapsed
		r.Add(outcome)

		if !outcome.Passed {
			slog.Debug("suite case failed", "suite", s.Name, "case", c.ID, "message", outcome.Message)
		}

		if cfg.storer != nil {
			ev := domain.NewEvaluation(c.Expression, res, err)
			ev.Source = Source(s.Name)
			records = append(records, ev)
		}
	}

	r.Finish(time.Now())

	if cfg.storer != nil {
		if err := cfg.storer.SaveBulk(ctx, records); err != nil {
			return r, fmt.Errorf("store suite results: %w", err)
		}
		slog.Info("Suite results stored", "suite", s.Name, "count", len(records))
	}

	return r, nil
}

func check(c *Case, res *eval.Result, err error) report.CaseResult {
	out := report.CaseResult{
		ID:         c.ID,
		Expression: c.Expression,
		Want:       want(c),
		Got:        got(res, err),
	}

	valid := res != nil && res.Valid
	switch {
	case valid != c.WantValid():
		out.Message = fmt.Sprintf("expected valid=%t, got valid=%t", c.WantValid(), valid)
	case c.Error != "":
		if err == nil {
			out.Message = fmt.Sprintf("expected error %q, got none", c.Error)
		} else if !matchesError(c.Error, err) {
			out.Message = fmt.Sprintf("expected error %q, got %v", c.Error, err)
		} else {
			out.Passed = true
		}
	case !c.WantValid():
		out.Passed = true
	case err != nil:
		out.Message = fmt.Sprintf("unexpected error: %v", err)
	case !c.Matches(res.Value):
		out.Message = fmt.Sprintf("expected %s, got %s", domain.FormatNumber(*c.Value), domain.FormatNumber(res.Value))
	default:
		out.Passed = true
	}

	return out
}

func matchesError(expected string, err error) bool {
	if apperr.KindOf(err) == expected {
		return true
	}
	var ve *apperr.ValidationError
	return errors.As(err, &ve) && string(ve.Reason) == expected
}

func want(c *Case) string {
	switch {
	case c.Error != "":
		return c.Error
	case !c.WantValid():
		return "invalid"
	case c.Value != nil:
		return domain.FormatNumber(*c.Value)
	default:
		return "valid"
	}
}

func got(res *eval.Result, err error) string {
	if err != nil {
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			return string(ve.Reason)
		}
		return apperr.KindOf(err)
	}
	return domain.FormatNumber(res.Value)
}
