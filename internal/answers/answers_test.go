package answers

import (
	"context"
	"strings"
	"testing"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testFacts() *resume.Facts {
	return resume.NewFacts(resume.Document{
		Skills: map[string][]resume.Entry{
			"languages": {resume.Plain("Go"), resume.Plain("Python")},
		},
		Certifications: []resume.Entry{resume.Structured(map[string]string{"title": "AWS Cloud Practitioner"})},
		Events:         []resume.Entry{resume.Plain("Hour of Code Mentor")},
		Education:      &resume.Education{Degree: "BS Information Technology", School: "Northfield University", Capstone: "a parking availability platform"},
	})
}

func TestCannedAnswerTopics(t *testing.T) {
	t.Parallel()

	canned := NewCanned(testFacts(), zap.NewNop())
	job := jobposting.Requirement{Title: "Backend Developer", Skills: []string{"Kotlin"}}

	tests := []struct {
		question string
		contains []string
	}{
		{
			question: "Describe your experience with Docker containers.",
			contains: []string{"Docker", `The "AWS Cloud Practitioner" certification`},
		},
		{
			question: "Tell us about yourself.",
			contains: []string{"BS Information Technology", "Northfield University", "Go, Python", "Hour of Code Mentor"},
		},
		{
			question: "What are your professional goals?",
			contains: []string{"Kotlin"},
		},
		{
			question: "How do you handle technical debt?",
			contains: []string{"Hour of Code Mentor"},
		},
		{
			question: "Walk us through a machine learning model you trained.",
			contains: []string{"my capstone, a parking availability platform"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			t.Parallel()

			answer := canned.Answer(context.Background(), job, tt.question)
			for _, want := range tt.contains {
				if !strings.Contains(answer, want) {
					t.Fatalf("expected %q in answer %q", want, answer)
				}
			}
		})
	}
}

func TestCannedAnswerDefaults(t *testing.T) {
	t.Parallel()

	canned := NewCanned(resume.NewFacts(resume.Document{}), nil)
	answer := canned.Answer(context.Background(), jobposting.Requirement{}, "What are your goals for this role?")

	if !strings.Contains(answer, "the required technologies") {
		t.Fatalf("expected default job skill in %q", answer)
	}
}

func TestCannedAnswerFallback(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.WarnLevel)

	var missing resume.Provider
	canned := NewCanned(missing, zap.New(core))

	if got := canned.Answer(context.Background(), jobposting.Requirement{}, "anything"); got != FallbackAnswer {
		t.Fatalf("expected fallback answer, got %q", got)
	}
	if observed.Len() != 1 {
		t.Fatalf("expected a warning to be logged, got %d entries", observed.Len())
	}
}
