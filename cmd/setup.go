package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/interview-sim/internal/answers"
	"github.com/spigell/interview-sim/internal/answers/gemini"
	"github.com/spigell/interview-sim/internal/filtering"
	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/logger"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/resume"
	"github.com/spigell/interview-sim/internal/secrets"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	providerCanned = "canned"
	providerGemini = "gemini"
)

// deps is everything a command needs once the config and the resume are loaded.
type deps struct {
	config *Config
	logger *zap.Logger
	facts  *resume.Facts
	scorer *matching.Scorer
}

// setup builds the logger, reads the config and loads the resume. Any failure
// is fatal since no command can proceed without them.
func setup(command string) *deps {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the "+app, zap.String("version", version), zap.String("command", command))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	facts, err := resume.Load(config.Resume)
	if err != nil {
		logger.Fatal("loading resume",
			zap.Error(err),
			zap.String("hint", "set the 'resume' key in the configuration file"),
		)
	}

	logger.Info("resume loaded",
		zap.String("path", config.Resume),
		zap.Int("skills", len(resume.SkillNames(facts))),
		zap.Int("certifications", len(facts.Certifications())),
		zap.Int("events", len(facts.Events())),
	)

	return &deps{
		config: config,
		logger: logger,
		facts:  facts,
		scorer: matching.NewScorer(logger, matching.WithCandidateLevel(config.CandidateLevel)),
	}
}

// loadPostings reads the jobs directory and runs the posting filters over it.
func (d *deps) loadPostings(ctx context.Context, skipMinimumMatch bool) (*jobposting.Postings, map[string]matching.Result, error) {
	postings, err := jobposting.LoadDir(d.config.JobsDir)
	if err != nil {
		return nil, nil, err
	}

	d.logger.Info("job postings loaded", zap.String("dir", d.config.JobsDir), zap.Int("count", postings.Len()))

	steps := filtering.Default()
	if skipMinimumMatch {
		filtering.DisableByName(steps, "minimum_match", "disabled by flag")
	}

	cfg := &filtering.Config{
		Companies:    d.config.Filters.Companies,
		MinimumMatch: d.config.Filters.MinimumMatch,
		ExcludeFile:  d.config.Filters.ExcludeFile,
	}

	filtered, results, err := filtering.Run(ctx, cfg, filtering.Deps{
		Logger: d.logger,
		Scorer: d.scorer,
		Facts:  d.facts,
	}, steps, postings)
	if err != nil {
		return nil, nil, fmt.Errorf("filtering postings: %w", err)
	}

	for _, status := range filtering.Describe(steps) {
		d.logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return filtered, results, nil
}

// matchFor returns the collected result for a posting or scores it on demand.
func (d *deps) matchFor(posting *jobposting.Posting, results map[string]matching.Result) matching.Result {
	if result, ok := results[posting.Source]; ok {
		return result
	}
	return d.scorer.Score(posting.Requirement, d.facts)
}

// answerGenerator returns the canned generator or, when configured, Gemini
// backed by the canned generator. A Gemini setup error falls back to canned.
func (d *deps) answerGenerator(ctx context.Context) answers.Generator {
	canned := answers.NewCanned(d.facts, d.logger)

	cfg := d.config.Answers
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider == "" || provider == providerCanned {
		return canned
	}

	answerer, err := newGeminiAnswerer(ctx, cfg, canned, d.facts, d.logger)
	if err != nil {
		d.logger.Warn("falling back to canned answers", zap.Error(err))
		return canned
	}
	return answerer
}

func newGeminiAnswerer(ctx context.Context, cfg *AnswersConfig, fallback answers.Generator, facts resume.Provider, log *zap.Logger) (*gemini.Answerer, error) {
	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
		Value: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set answers.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := log.With(
		zap.String(logger.FieldProvider, providerGemini),
		zap.String(logger.FieldModel, cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnswerer(generator, fallback, facts, cfg.Timeout, log), nil
}
