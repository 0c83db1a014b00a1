package interview

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/questions"
)

type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusComplete:
		return "complete"
	default:
		return "not_started"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	ErrNotStarted  = errors.New("interview session is not started")
	ErrNotComplete = errors.New("interview session is not complete")
)

// Turn is one asked and answered question.
type Turn struct {
	Index  int            `json:"index"`
	Spec   questions.Spec `json:"spec"`
	Answer string         `json:"answer"`
	Score  int            `json:"score"`
}

type Summary struct {
	AverageScore      int   `json:"average_score"`
	InitialMatchScore int   `json:"initial_match_score"`
	PerQuestionScores []int `json:"per_question_scores"`
}

// Step is the outcome of Advance: either a Turn or, once all questions are
// answered, the Summary.
type Step struct {
	Turn    *Turn
	Summary *Summary
}

func (s Step) Done() bool {
	return s.Summary != nil
}

// Session holds the state of one simulated interview. It is not safe for
// concurrent use.
type Session struct {
	ID        string                 `json:"id"`
	Job       jobposting.Requirement `json:"job"`
	Category  questions.Category     `json:"category"`
	Questions questions.Bank         `json:"questions"`
	Match     matching.Result        `json:"match"`
	Turns     []Turn                 `json:"turns"`
	StartedAt time.Time              `json:"started_at"`

	// next is the 1-based index of the next question to ask.
	next   int
	status Status
}

// MarshalJSON includes the lifecycle status and the next question index,
// which are not settable from outside the package.
func (s *Session) MarshalJSON() ([]byte, error) {
	type fields Session
	return json.Marshal(struct {
		*fields
		Status       Status `json:"status"`
		NextQuestion int    `json:"next_question"`
	}{
		fields:       (*fields)(s),
		Status:       s.Status(),
		NextQuestion: s.next,
	})
}

func (s *Session) Status() Status {
	if s == nil {
		return StatusNotStarted
	}
	return s.status
}

// InitialMatchScore is the overall match computed once at session start.
func (s *Session) InitialMatchScore() int {
	return s.Match.Overall
}

func (s *Session) QuestionScores() []int {
	scores := make([]int, 0, len(s.Turns))
	for _, turn := range s.Turns {
		scores = append(scores, turn.Score)
	}
	return scores
}

// Summary returns the aggregated result of a complete session.
func (s *Session) Summary() (Summary, error) {
	switch s.Status() {
	case StatusNotStarted:
		return Summary{}, ErrNotStarted
	case StatusInProgress:
		return Summary{}, ErrNotComplete
	}

	scores := s.QuestionScores()
	return Summary{
		AverageScore:      average(scores),
		InitialMatchScore: s.InitialMatchScore(),
		PerQuestionScores: scores,
	}, nil
}

func average(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
