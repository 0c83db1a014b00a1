package answers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
	"go.uber.org/zap"
)

type topic struct {
	name    string
	pattern *regexp.Regexp
	answer  func(c profile, question string) string
}

// topics are tried in order against the lowercased question; the first match wins.
var topics = []topic{
	{"ml", regexp.MustCompile(`machine learning|\bml\b|training|model|data|preprocessing`), mlAnswer},
	{"frontend", regexp.MustCompile(`api|rest|design|frontend|component|react|svelte|framework`), frontendAnswer},
	{"fullstack", regexp.MustCompile(`full.?stack|architecture|deploy|database|postgres|mongodb`), fullStackAnswer},
	{"devops", regexp.MustCompile(`docker|kubernetes|ci.?cd|pipeline|devops|container|infrastructure`), devOpsAnswer},
	{"qa", regexp.MustCompile(`test|automation|bug|qa|coverage|quality`), qaAnswer},
	{"security", regexp.MustCompile(`security|encryption|compliance|gdpr|vulnerab`), securityAnswer},
	{"leadership", regexp.MustCompile(`maintain|refactor|technical debt|clean|mentor`), leadershipAnswer},
	{"learning", regexp.MustCompile(`learn|growth|new technolog|approach|recent`), learningAnswer},
}

// Canned answers questions from templates filled with resume facts.
type Canned struct {
	facts  resume.Provider
	logger *zap.Logger
}

func NewCanned(facts resume.Provider, logger *zap.Logger) *Canned {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Canned{facts: facts, logger: logger}
}

func (c *Canned) Answer(_ context.Context, job jobposting.Requirement, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("canned answer failed, using fallback", zap.String("error", fmt.Sprint(r)))
			answer = FallbackAnswer
		}
	}()

	p := newProfile(c.facts, job)
	lower := strings.ToLower(question)

	answer = genericAnswer(p, lower)
	for _, t := range topics {
		if t.pattern.MatchString(lower) {
			c.logger.Debug("canned answer topic selected", zap.String("topic", t.name))
			answer = t.answer(p, lower)
			break
		}
	}

	if strings.TrimSpace(answer) == "" {
		return FallbackAnswer
	}
	return answer
}

// profile is the handful of resume facts the templates refer to.
type profile struct {
	degree   string
	school   string
	capstone string
	cert     string
	event    string
	skills   string
	jobSkill string
}

func newProfile(facts resume.Provider, job jobposting.Requirement) profile {
	p := profile{
		degree:   "Computer Science",
		school:   "university",
		capstone: "my capstone project",
		cert:     "my recent certifications",
		event:    "hackathons and workshops",
		skills:   "the tools I use every day",
		jobSkill: "the required technologies",
	}

	if edu := facts.Education(); edu != nil {
		p.degree = orDefault(edu.Degree, p.degree)
		p.school = orDefault(edu.School, p.school)
		if edu.Capstone != "" {
			p.capstone = fmt.Sprintf("my capstone, %s", edu.Capstone)
		}
	}
	if certs := facts.Certifications(); len(certs) > 0 {
		p.cert = fmt.Sprintf("the %q certification", certs[0].DisplayName())
	}
	if events := facts.Events(); len(events) > 0 {
		p.event = events[0].DisplayName()
	}
	if names := resume.SkillNames(facts); len(names) > 0 {
		p.skills = strings.Join(names[:min(len(names), 3)], ", ")
	}
	if len(job.Skills) > 0 {
		p.jobSkill = orDefault(job.Skills[0], p.jobSkill)
	}

	return p
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func mlAnswer(p profile, _ string) string {
	return fmt.Sprintf("I built and evaluated models as part of %s, covering data cleaning, feature engineering, training and evaluation on held-out data. %s gave me a structured view of the ML lifecycle, and I keep monitoring and retraining in mind from the start.", p.capstone, capitalize(p.cert))
}

func frontendAnswer(p profile, _ string) string {
	return fmt.Sprintf("I build interfaces from small reusable components and keep state close to where it is used. Working with %s, I integrate REST APIs behind a thin client layer so that components stay easy to test.", p.skills)
}

func fullStackAnswer(p profile, _ string) string {
	return fmt.Sprintf("For %s I designed both the API and the data model before writing UI code, which kept the frontend and backend contracts stable. I deploy through automated pipelines and choose between relational and document databases based on the access patterns.", p.capstone)
}

func devOpsAnswer(p profile, _ string) string {
	return fmt.Sprintf("I containerize services with Docker and describe the build, test and deploy stages as code in a CI/CD pipeline. %s taught me to treat infrastructure changes like application changes: reviewed, versioned and reproducible.", capitalize(p.cert))
}

func qaAnswer(p profile, _ string) string {
	return "I combine fast unit tests with a smaller set of integration and end-to-end tests, and I document bugs with clear reproduction steps and expected behaviour. I treat coverage as a guide to untested risk rather than a target."
}

func securityAnswer(p profile, _ string) string {
	return fmt.Sprintf("I follow secure coding practices such as input validation, parameterized queries and least privilege access. %s and regular reading of vulnerability reports keep me aware of current threats and compliance expectations.", capitalize(p.cert))
}

func leadershipAnswer(p profile, _ string) string {
	return fmt.Sprintf("I keep code maintainable through small focused changes, reviews and tests that document intent. During %s I shared what I knew with others, and I find that explaining a design is the quickest way to improve it.", p.event)
}

func learningAnswer(p profile, _ string) string {
	return fmt.Sprintf("I learn by pairing structured material with a small project right away. Most recently that meant %s, and I try to apply each new tool to a real problem within the same week.", p.cert)
}

func genericAnswer(p profile, lower string) string {
	switch {
	case strings.Contains(lower, "experience") || strings.Contains(lower, "yourself"):
		return fmt.Sprintf("I am a %s student at %s with hands-on experience in %s. I have applied it in %s and in %s.", p.degree, p.school, p.skills, p.capstone, p.event)
	case strings.Contains(lower, "goal") || strings.Contains(lower, "align") || strings.Contains(lower, "role"):
		return fmt.Sprintf("This role matches the skills I have been building, especially %s. I want to keep growing in a team where I can contribute from the first weeks.", p.jobSkill)
	default:
		return fmt.Sprintf("I bring a solid foundation from my %s studies, practical work with %s and a habit of learning quickly and collaborating openly.", p.degree, p.skills)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
