package filtering

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/matching"
	"go.uber.org/zap"
)

type emptyTitleFilter struct{}

// NewEmptyTitle creates a filter that removes postings without a title.
func NewEmptyTitle() Filter {
	return &emptyTitleFilter{}
}

func (f *emptyTitleFilter) Name() string { return "empty_title" }

func (f *emptyTitleFilter) Disable(string) {}

func (f *emptyTitleFilter) IsEnabled() bool { return true }

func (f *emptyTitleFilter) Validate(*Config) error { return nil }

func (f *emptyTitleFilter) Apply(_ context.Context, deps Deps, p *jobposting.Postings) (*jobposting.Postings, Step, error) {
	initial := p.Len()
	dropped := p.Keep(func(posting *jobposting.Posting) bool {
		return strings.TrimSpace(posting.Title) != ""
	})
	if len(dropped) > 0 {
		deps.Logger.Info("excluding postings without a title",
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

type companiesFilter struct {
	companies []string
}

// NewCompanies creates a filter that removes postings by companies configured in the config.
func NewCompanies() Filter {
	return &companiesFilter{}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Disable(string) {}

func (f *companiesFilter) IsEnabled() bool { return true }

func (f *companiesFilter) Validate(cfg *Config) error {
	f.companies = nil
	if cfg != nil {
		f.companies = append(f.companies, cfg.Companies...)
	}
	return nil
}

func (f *companiesFilter) Apply(_ context.Context, deps Deps, p *jobposting.Postings) (*jobposting.Postings, Step, error) {
	initial := p.Len()
	if len(f.companies) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded := p.Exclude(jobposting.CompanyField, f.companies)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding postings by companies",
			zap.Strings("excluded_companies", f.companies),
			zap.Strings("excluded_postings", excluded),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	details := map[string]string{}
	if len(f.companies) > 0 {
		details["companies"] = strings.Join(f.companies, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes postings listed in an exclude file.
// Each non-empty line that does not start with '#' is a posting title or file name.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, p *jobposting.Postings) (*jobposting.Postings, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	entries, err := readExcludeFile(f.path)
	if err != nil {
		return p, Step{}, fmt.Errorf("getting excluded postings from file: %w", err)
	}

	removed := p.Keep(func(posting *jobposting.Posting) bool {
		return !slices.ContainsFunc(entries, func(entry string) bool {
			return strings.EqualFold(entry, posting.Title) || strings.EqualFold(entry, filepath.Base(posting.Source))
		})
	})
	if len(removed) > 0 {
		deps.Logger.Info("excluding postings based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_postings", removed),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

func readExcludeFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, scanner.Err()
}

type minimumMatchFilter struct {
	disabled bool
	reason   string
	minimum  int
	results  map[string]matching.Result
}

// NewMinimumMatch creates a filter that scores every posting against the resume
// and removes the ones whose overall match is below the configured minimum.
func NewMinimumMatch() Filter {
	return &minimumMatchFilter{}
}

func (f *minimumMatchFilter) Name() string { return "minimum_match" }

func (f *minimumMatchFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minimumMatchFilter) IsEnabled() bool { return !f.disabled }

func (f *minimumMatchFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg != nil {
		f.minimum = cfg.MinimumMatch
	}
	if f.minimum < 0 || f.minimum > 100 {
		return fmt.Errorf("minimum match must be within 0..100, got %d", f.minimum)
	}
	return nil
}

func (f *minimumMatchFilter) Apply(_ context.Context, deps Deps, p *jobposting.Postings) (*jobposting.Postings, Step, error) {
	initial := p.Len()
	if deps.Scorer == nil {
		return p, Step{}, errors.New("scorer is required for match filtering")
	}

	f.results = make(map[string]matching.Result, initial)
	dropped := p.Keep(func(posting *jobposting.Posting) bool {
		result := deps.Scorer.Score(posting.Requirement, deps.Facts)
		if result.Overall < f.minimum {
			deps.Logger.Info("posting rejected by match score",
				zap.String("posting", posting.Label()),
				zap.Int("overall", result.Overall),
				zap.Int("minimum", f.minimum),
			)
			return false
		}
		f.results[posting.Source] = result
		return true
	})

	return p, Step{Initial: initial, Dropped: len(dropped), Left: p.Len()}, nil
}

func (f *minimumMatchFilter) Results() map[string]matching.Result {
	if f.results == nil {
		return map[string]matching.Result{}
	}
	return f.results
}

func (f *minimumMatchFilter) Status() Status {
	details := map[string]string{"minimum_match": strconv.Itoa(f.minimum)}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
