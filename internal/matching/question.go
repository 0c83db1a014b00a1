package matching

import (
	"fmt"
	"math"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
	"go.uber.org/zap"
)

// weights blends the accuracy sub-scores for one question. Every row sums to 1.
type weights struct {
	skill, level, cert, project float64
}

var questionWeights = [QuestionsPerJob]weights{
	{skill: 0.6, project: 0.4},
	{project: 0.5, level: 0.3, cert: 0.2},
	{cert: 0.5, skill: 0.35, project: 0.15},
	{cert: 0.6, level: 0.3, skill: 0.1},
	{skill: 0.5, cert: 0.3, level: 0.2},
}

// ScoreForQuestion returns the score of question index (1..5), clamped to [35, 90].
// Out of range indexes and internal failures yield the fallback score.
func (s *Scorer) ScoreForQuestion(job jobposting.Requirement, facts resume.Provider, index int) (score int) {
	if index < 1 || index > QuestionsPerJob {
		s.logger.Warn("question index out of range, using fallback score",
			zap.Int("index", index),
			zap.Int("fallback", fallbackScore),
		)
		return fallbackScore
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("question scoring failed, using fallback score",
				zap.Int("index", index),
				zap.String("error", fmt.Sprint(r)),
			)
			score = fallbackScore
		}
	}()

	view := newJobView(job)
	skill := accuracySkillScore(view, resume.DetailedSkillNames(facts))
	level := levelScore(s.candidateLevel, JobLevel(job))
	cert := certificationScore(view, facts.Certifications())
	project := projectScore(view, facts.Events())

	w := questionWeights[index-1]
	blended := skill*w.skill + level*w.level + cert*w.cert + project*w.project

	return clamp(int(math.Round(blended)), minQuestion, maxQuestion)
}
