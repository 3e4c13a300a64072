// Package optimizer runs the production optimizer for a loaded configuration and
// collects the diagnostics shown alongside the result.
package optimizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/pkg/adapters"
	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/lp"
	"github.com/iwvelando/production-optimizer/pkg/optimization"
	"go.uber.org/zap"
)

// Runner evaluates one configuration.
type Runner struct {
	logger          *zap.Logger
	conf            *config.Configuration
	prefer          func(lp.Candidate) bool
	boundarySamples int
}

// NewRunner constructs a Runner for the provided configuration. The
// configuration is validated and the preferWhen expression compiled up front.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	prefer, err := CompilePreference(conf.Policy.PreferWhen)
	if err != nil {
		return nil, err
	}

	return &Runner{
		logger:          logger,
		conf:            conf,
		prefer:          prefer,
		boundarySamples: constants.DefaultBoundarySamples,
	}, nil
}

// Run optimizes the configured problem. A result without an eligible point is
// not an error; its Status explains the outcome.
func (r *Runner) Run() *Report {
	problem := adapters.ConfigToProblem(r.conf)
	policy := adapters.PolicyToLP(r.conf.Policy, r.prefer)

	warnings := r.conf.ValidateConfiguration()
	for _, warning := range warnings {
		r.logger.Warn(warning,
			zap.String("op", "optimizer.Run"),
		)
	}

	start := time.Now()
	res := lp.Optimize(problem, policy)
	duration := time.Since(start)

	resolver := lp.NewResolver(problem)
	report := &Report{
		Problem:    problem,
		Result:     res,
		Intercepts: resolver.AxisIntercepts(),
		Warnings:   warnings,
		Duration:   duration,
	}
	if problem.Validate() == nil {
		report.Corners = resolver.CornerPoints()
		report.Boundary = resolver.Boundary(r.boundarySamples)
		point, err := resolver.Intersection()
		report.IntersectionErr = err
		if err == nil || errors.Is(err, lp.ErrOutsideFirstQuadrant) {
			report.Intersection = &point
		}
	}
	report.Summary = optimization.Summarize(problem, res, r.conf.Output.CurrencySymbol)

	fields := []zap.Field{
		zap.String("op", "optimizer.Run"),
		zap.String("policy", string(res.Policy)),
		zap.String("status", string(res.Status)),
		zap.Float64("x", res.Best.X),
		zap.Float64("y", res.Best.Y),
		zap.Float64("profit", res.Best.Profit),
		zap.Int("candidates", len(res.Candidates)),
		zap.Duration("duration", duration),
	}
	if res.Found() {
		r.logger.Info("optimization complete", fields...)
	} else {
		r.logger.Warn("no eligible production point", append(fields, zap.Strings("notes", res.Notes))...)
	}

	return report
}
