package gemini

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/interview-sim/internal/answers"
	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/logger"
	"github.com/spigell/interview-sim/internal/resume"
	"github.com/spigell/interview-sim/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	DefaultTimeout       = 4 * time.Second
	defaultMaxLogLength  = 200
	noSkillsPlaceholder  = "Not specified"
	noResumePlaceholder  = "Limited resume information available"
	defaultSkillFallback = "the required technologies"
)

// Answerer asks Gemini to answer interview questions from the resume context.
// Any failure falls back to the wrapped generator.
type Answerer struct {
	generator contentGenerator
	fallback  answers.Generator
	facts     resume.Provider
	timeout   time.Duration
	logger    *zap.Logger
	maxLogLen int
}

func NewAnswerer(generator contentGenerator, fallback answers.Generator, facts resume.Provider, timeout time.Duration, log *zap.Logger) *Answerer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Answerer{
		generator: generator,
		fallback:  fallback,
		facts:     facts,
		timeout:   timeout,
		logger:    logger.WithFields(log, logger.ProviderFields("gemini", generator.Model())...),
		maxLogLen: defaultMaxLogLength,
	}
}

func (a *Answerer) Answer(ctx context.Context, job jobposting.Requirement, question string) string {
	prompt := buildPrompt(job, resume.Summary(a.facts), question)

	a.logger.Debug("gemini answer request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.generator.GenerateContent(callCtx, prompt)
	if err != nil {
		a.logger.Warn("gemini answer failed, using fallback", zap.Error(err))
		return a.fallbackAnswer(ctx, job, question)
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		a.logger.Warn("gemini returned an empty answer, using fallback")
		return a.fallbackAnswer(ctx, job, question)
	}

	a.logger.Debug("gemini answer response",
		zap.Int("response_length", utf8.RuneCountInString(answer)),
		zap.String("response_preview", utils.TruncateForLog(answer, a.maxLogLen)),
	)

	return answer
}

func (a *Answerer) fallbackAnswer(ctx context.Context, job jobposting.Requirement, question string) string {
	if a.fallback != nil {
		if answer := a.fallback.Answer(ctx, job, question); strings.TrimSpace(answer) != "" {
			return answer
		}
	}
	return skillFallback(job)
}

// skillFallback is the last resort answer built from the first job skill.
func skillFallback(job jobposting.Requirement) string {
	skill := defaultSkillFallback
	if len(job.Skills) > 0 && strings.TrimSpace(job.Skills[0]) != "" {
		skill = strings.TrimSpace(job.Skills[0])
	}
	return "Based on my experience with " + skill + ", I can effectively contribute to this role and team."
}

func buildPrompt(job jobposting.Requirement, resumeContext, question string) string {
	skills := strings.Join(job.Skills, ", ")
	if strings.TrimSpace(skills) == "" {
		skills = noSkillsPlaceholder
	}
	if strings.TrimSpace(resumeContext) == "" {
		resumeContext = noResumePlaceholder
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Position: {{JOB_TITLE}}\nSkills: {{JOB_SKILLS}}\n\nResume:\n{{RESUME_CONTEXT}}\n\nQuestion:\n{{QUESTION}}\n\nAnswer:"
	}

	return strings.NewReplacer(
		"{{JOB_TITLE}}", job.Title,
		"{{JOB_SKILLS}}", skills,
		"{{RESUME_CONTEXT}}", resumeContext,
		"{{QUESTION}}", question,
	).Replace(template)
}
