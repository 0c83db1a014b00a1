package answers

import (
	"context"

	"github.com/spigell/interview-sim/internal/jobposting"
)

// FallbackAnswer is returned when no other answer can be produced.
const FallbackAnswer = "I focus on applying my technical skills to solve real-world problems while maintaining code quality and collaborating effectively with teams."

// Generator produces a first-person answer to an interview question.
// Implementations always return a non-empty string.
type Generator interface {
	Answer(ctx context.Context, job jobposting.Requirement, question string) string
}
