package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spigell/interview-sim/internal/answers"
	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/logger"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/questions"
	"github.com/spigell/interview-sim/internal/resume"
	"github.com/spigell/interview-sim/internal/utils"
	"go.uber.org/zap"
)

const answerLogLength = 120

// Engine drives interview sessions for one resume.
type Engine struct {
	facts   resume.Provider
	scorer  *matching.Scorer
	router  *questions.Router
	answers answers.Generator
	logger  *zap.Logger
	pace    time.Duration
	now     func() time.Time
}

type Option func(*Engine)

// WithPace sets the pause Run makes between two questions.
func WithPace(d time.Duration) Option {
	return func(e *Engine) {
		e.pace = d
	}
}

func NewEngine(facts resume.Provider, scorer *matching.Scorer, router *questions.Router, gen answers.Generator, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if scorer == nil {
		scorer = matching.NewScorer(log)
	}
	if router == nil {
		router = questions.NewRouter()
	}
	if gen == nil {
		gen = answers.NewCanned(facts, log)
	}

	e := &Engine{
		facts:   facts,
		scorer:  scorer,
		router:  router,
		answers: gen,
		logger:  log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start parses the raw posting and opens a new session.
func (e *Engine) Start(raw string) *Session {
	return e.StartPosting(jobposting.Parse(raw))
}

// StartPosting opens a new session for an already parsed posting. The match
// score and the question bank are computed once here.
func (e *Engine) StartPosting(job jobposting.Requirement) *Session {
	category, bank := e.router.Route(job)

	s := &Session{
		ID:        uuid.NewString(),
		Job:       job,
		Category:  category,
		Questions: bank,
		Match:     e.scorer.Score(job, e.facts),
		Turns:     make([]Turn, 0, len(bank)),
		StartedAt: e.now().UTC(),
		next:      1,
		status:    StatusInProgress,
	}

	e.sessionLogger(s).Info("interview session started", zap.Int("initial_match", s.Match.Overall))
	return s
}

// Advance asks the next question, or completes the session once every
// question has been answered. A complete session keeps returning its summary.
func (e *Engine) Advance(ctx context.Context, s *Session) (Step, error) {
	switch s.Status() {
	case StatusNotStarted:
		return Step{}, ErrNotStarted
	case StatusComplete:
		return e.summaryStep(s)
	}

	if s.next > len(s.Questions) {
		s.status = StatusComplete
		step, err := e.summaryStep(s)
		if err == nil {
			e.sessionLogger(s).Info("interview session complete",
				zap.Int("average", step.Summary.AverageScore),
				zap.Ints("scores", step.Summary.PerQuestionScores),
			)
		}
		return step, err
	}

	if err := ctx.Err(); err != nil {
		return Step{}, fmt.Errorf("advancing session %s: %w", s.ID, err)
	}

	index := s.next
	spec := s.Questions[index-1]
	answer := e.answers.Answer(ctx, s.Job, spec.Question)
	score := e.scorer.ScoreForQuestion(s.Job, e.facts, index)

	turn := Turn{Index: index, Spec: spec, Answer: answer, Score: score}
	s.Turns = append(s.Turns, turn)
	s.next++

	e.sessionLogger(s).Debug("question answered",
		zap.Int(logger.FieldQuestion, index),
		zap.Int(logger.FieldScore, score),
		zap.String("answer_preview", utils.TruncateForLog(answer, answerLogLength)),
	)

	return Step{Turn: &turn}, nil
}

// Run advances s until it completes. onTurn, when set, is called after every
// answered question. Run pauses for the configured pace between questions.
func (e *Engine) Run(ctx context.Context, s *Session, onTurn func(Turn)) (Summary, error) {
	for {
		step, err := e.Advance(ctx, s)
		if err != nil {
			return Summary{}, err
		}
		if step.Done() {
			return *step.Summary, nil
		}

		if onTurn != nil {
			onTurn(*step.Turn)
		}

		if step.Turn.Index < len(s.Questions) {
			if err := utils.WaitFor(ctx, e.pace); err != nil {
				return Summary{}, fmt.Errorf("pausing session %s: %w", s.ID, err)
			}
		}
	}
}

func (e *Engine) summaryStep(s *Session) (Step, error) {
	summary, err := s.Summary()
	if err != nil {
		return Step{}, err
	}
	return Step{Summary: &summary}, nil
}

func (e *Engine) sessionLogger(s *Session) *zap.Logger {
	return logger.WithSession(e.logger, s.ID, s.Job.Title, string(s.Category))
}
