package matching

import (
	"fmt"
	"math"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
	"go.uber.org/zap"
)

const (
	minOverall      = 15
	maxOverall      = 92
	minQuestion     = 35
	maxQuestion     = 90
	fallbackScore   = 65
	QuestionsPerJob = 5
)

// Scores holds the five independent sub-scores, each in [0, 100].
type Scores struct {
	Skill         float64 `json:"skill"`
	Level         float64 `json:"level"`
	Certification float64 `json:"certification"`
	Project       float64 `json:"project"`
	Education     float64 `json:"education"`
}

func (s Scores) Mean() float64 {
	return (s.Skill + s.Level + s.Certification + s.Project + s.Education) / 5
}

type Result struct {
	Scores  Scores `json:"scores"`
	Overall int    `json:"overall"`
	// Fallback is set when scoring failed and Overall is the fixed fallback value.
	Fallback bool `json:"fallback,omitempty"`
}

// Report is the full breakdown printed by the score command.
type Report struct {
	Result
	JobLevel       int                  `json:"job_level"`
	CandidateLevel int                  `json:"candidate_level"`
	PerQuestion    [QuestionsPerJob]int `json:"per_question"`
}

type Scorer struct {
	candidateLevel int
	logger         *zap.Logger
}

type Option func(*Scorer)

// WithCandidateLevel overrides DefaultCandidateLevel. Non-positive values are ignored.
func WithCandidateLevel(level int) Option {
	return func(s *Scorer) {
		if level > 0 {
			s.candidateLevel = level
		}
	}
}

func NewScorer(logger *zap.Logger, opts ...Option) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Scorer{candidateLevel: DefaultCandidateLevel, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scorer) CandidateLevel() int {
	return s.candidateLevel
}

// Score computes the sub-scores and the clamped overall match. It never fails:
// an internal failure is logged and yields the fallback overall score.
func (s *Scorer) Score(job jobposting.Requirement, facts resume.Provider) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("match scoring failed, using fallback score",
				zap.String("job_title", job.Title),
				zap.String("error", fmt.Sprint(r)),
			)
			result = Result{Overall: fallbackScore, Fallback: true}
		}
	}()

	view := newJobView(job)
	scores := Scores{
		Skill:         skillScore(view, resume.SkillNames(facts)),
		Level:         levelScore(s.candidateLevel, JobLevel(job)),
		Certification: certificationScore(view, facts.Certifications()),
		Project:       projectScore(view, facts.Events()),
		Education:     educationScore(view, facts.Education()),
	}

	overall := clamp(int(math.Round(scores.Mean())), minOverall, maxOverall)

	s.logger.Debug("match scored",
		zap.String("job_title", job.Title),
		zap.Float64("skill", scores.Skill),
		zap.Float64("level", scores.Level),
		zap.Float64("certification", scores.Certification),
		zap.Float64("project", scores.Project),
		zap.Float64("education", scores.Education),
		zap.Int("overall", overall),
	)

	return Result{Scores: scores, Overall: overall}
}

// Breakdown scores the pair once overall and once per interview question.
func (s *Scorer) Breakdown(job jobposting.Requirement, facts resume.Provider) Report {
	report := Report{
		Result:         s.Score(job, facts),
		JobLevel:       JobLevel(job),
		CandidateLevel: s.candidateLevel,
	}
	for i := range report.PerQuestion {
		report.PerQuestion[i] = s.ScoreForQuestion(job, facts, i+1)
	}
	return report
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
