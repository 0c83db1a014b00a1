package matching

import (
	"testing"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestQuestionWeightsSumToOne(t *testing.T) {
	t.Parallel()

	for i, w := range questionWeights {
		assert.InDelta(t, 1.0, w.skill+w.level+w.cert+w.project, 1e-9, "question %d", i+1)
	}
}

func TestScoreForQuestion(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(zap.NewNop())
	junior := jobposting.Requirement{Title: "Junior Developer"}
	empty := resume.NewFacts(resume.Document{})

	assert.Equal(t, 50, scorer.ScoreForQuestion(junior, empty, 1))
	assert.Equal(t, 61, scorer.ScoreForQuestion(junior, empty, 2))
	assert.Equal(t, 50, scorer.ScoreForQuestion(junior, empty, 3))
	assert.Equal(t, 61, scorer.ScoreForQuestion(junior, empty, 4))
	assert.Equal(t, 57, scorer.ScoreForQuestion(junior, empty, 5))
}

func TestScoreForQuestionWeights(t *testing.T) {
	t.Parallel()

	job := jobposting.Requirement{Title: "Python Automation Engineer", Skills: []string{"Python", "Go"}}
	facts := resume.NewFacts(resume.Document{
		Skills: map[string][]resume.Entry{
			"languages": {resume.Structured(map[string]string{"lang": "Python", "proficiency": "Advanced"})},
		},
		Certifications: []resume.Entry{resume.Plain("Python for Automation")},
		Events:         []resume.Entry{resume.Plain("Automation Hackathon Mentor")},
	})

	view := newJobView(job)
	assert.Equal(t, 55.0, accuracySkillScore(view, resume.DetailedSkillNames(facts)))
	assert.Equal(t, 85.0, levelScore(DefaultCandidateLevel, JobLevel(job)))
	assert.Equal(t, 16.0, certificationScore(view, facts.Certifications()))
	assert.Equal(t, 60.0, projectScore(view, facts.Events()))

	scorer := NewScorer(nil)
	tests := []struct {
		index int
		want  int
	}{
		{index: 1, want: 57}, // .6 skill + .4 project
		{index: 2, want: 59}, // .5 project + .3 level + .2 cert
		{index: 3, want: 36}, // .5 cert + .35 skill + .15 project
		{index: 4, want: 41}, // .6 cert + .3 level + .1 skill
		{index: 5, want: 49}, // .5 skill + .3 cert + .2 level
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scorer.ScoreForQuestion(job, facts, tt.index), "question %d", tt.index)
	}
}

func TestScoreForQuestionStrategicBonus(t *testing.T) {
	t.Parallel()

	job := jobposting.Requirement{Title: "Python Automation Engineer"}
	facts := resume.NewFacts(resume.Document{Skills: map[string][]resume.Entry{
		"languages": {resume.Structured(map[string]string{"lang": "Python", "proficiency": "Advanced"})},
	}})

	scorer := NewScorer(nil)

	assert.Equal(t, 50.0, scorer.Score(job, facts).Scores.Skill)
	assert.Equal(t, 55.0, accuracySkillScore(newJobView(job), resume.DetailedSkillNames(facts)))
	assert.Equal(t, 53, scorer.ScoreForQuestion(job, facts, 1))
}

func TestScoreForQuestionFallback(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.WarnLevel)
	scorer := NewScorer(zap.New(core))
	job := jobposting.Requirement{Title: "QA Engineer"}
	facts := resume.NewFacts(resume.Document{})

	assert.Equal(t, 65, scorer.ScoreForQuestion(job, facts, 0))
	assert.Equal(t, 65, scorer.ScoreForQuestion(job, facts, 6))

	var missing resume.Provider
	assert.Equal(t, 65, scorer.ScoreForQuestion(job, missing, 2))

	assert.Equal(t, 3, observed.Len())
}

func TestScoreForQuestionRange(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(nil)
	strong := resume.NewFacts(resume.Document{
		Skills:         map[string][]resume.Entry{"web": {resume.Plain("React"), resume.Plain("Node.js")}},
		Certifications: entries([2]string{"React Developer", "react node.js"}),
		Events:         entries([2]string{"Frontend Hackathon", "react node.js framework"}),
	})
	weak := resume.NewFacts(resume.Document{
		Certifications: entries([2]string{"First Aid", ""}),
		Events:         entries([2]string{"Book Club", ""}),
	})

	jobs := []jobposting.Requirement{
		{},
		{Title: "Frontend Engineer", Skills: []string{"React", "Node.js"}},
		{Title: "Principal Architect", Skills: []string{"Haskell", "Erlang", "OCaml"}},
	}

	for _, job := range jobs {
		for _, facts := range []*resume.Facts{strong, weak, nil} {
			for i := 1; i <= QuestionsPerJob; i++ {
				got := scorer.ScoreForQuestion(job, facts, i)
				assert.GreaterOrEqual(t, got, 35)
				assert.LessOrEqual(t, got, 90)
			}
		}
	}
}

func TestBreakdown(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(nil)
	job := jobposting.Requirement{Title: "Junior Developer"}
	facts := resume.NewFacts(resume.Document{})

	report := scorer.Breakdown(job, facts)

	assert.Equal(t, 1, report.JobLevel)
	assert.Equal(t, DefaultCandidateLevel, report.CandidateLevel)
	assert.Equal(t, 59, report.Overall)
	for i, score := range report.PerQuestion {
		assert.Equal(t, scorer.ScoreForQuestion(job, facts, i+1), score)
	}
}
