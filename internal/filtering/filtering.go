package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/resume"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to job postings.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, p *jobposting.Postings) (*jobposting.Postings, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
	Scorer *matching.Scorer
	Facts  resume.Provider
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	Companies    []string
	MinimumMatch int
	ExcludeFile  string
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// resultCollector is implemented by filters that score postings while filtering.
type resultCollector interface {
	Results() map[string]matching.Result
}

// Default returns the standard filter chain in execution order.
func Default() []Filter {
	return []Filter{
		NewEmptyTitle(),
		NewCompanies(),
		NewExcludeFile(),
		NewMinimumMatch(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the remaining
// postings together with the match results collected on the way, keyed by source.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, p *jobposting.Postings) (*jobposting.Postings, map[string]matching.Result, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	results := make(map[string]matching.Result)
	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, p)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		p = next

		if collector, ok := step.(resultCollector); ok {
			for source, result := range collector.Results() {
				results[source] = result
			}
		}
	}

	return p, results, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
