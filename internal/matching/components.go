package matching

import (
	"slices"
	"strings"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/resume"
)

const (
	// DefaultCandidateLevel places the candidate early in their career.
	DefaultCandidateLevel = 2

	defaultJobLevel   = 3
	noSkillsScore     = 50
	emptyEntriesScore = 50
	noEducationScore  = 60
)

var (
	strengthAreas  = []string{"ai", "machine learning", "automation", "react", "node.js", "python", "cybersecurity", "devops", "full-stack"}
	strategicAreas = []string{"ai", "automation", "react", "node", "python", "cybersecurity", "devops"}

	capstoneKeywords = []string{"ai", "machine learning", "automation", "system", "application", "platform", "framework", "database", "api", "cloud"}
	degreeKeywords   = []string{"computer", "information", "engineering", "technology"}
)

type levelRule struct {
	keywords []string
	level    int
}

var titleLevels = []levelRule{
	{[]string{"principal", "architect"}, 8},
	{[]string{"lead", "staff"}, 6},
	{[]string{"senior"}, 5},
	{[]string{"mid-level", "mid level"}, 3},
	{[]string{"junior", "entry", "graduate"}, 1},
}

var experienceLevels = []levelRule{
	{[]string{"10+"}, 8},
	{[]string{"7+", "7-10"}, 6},
	{[]string{"5+", "5-7"}, 5},
	{[]string{"3-5", "3 to 5"}, 4},
	{[]string{"2-3", "2 to 3"}, 3},
	{[]string{"1-2", "0-1", "entry"}, 1},
}

// jobView is the lowercased projection of a requirement that every sub-score reads.
type jobView struct {
	title  string
	skills []string
}

func newJobView(job jobposting.Requirement) jobView {
	view := jobView{title: strings.ToLower(job.Title)}
	for _, skill := range job.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || slices.Contains(view.skills, skill) {
			continue
		}
		view.skills = append(view.skills, skill)
	}
	return view
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// matchedFraction counts job skills equal to, or a substring either way of, some resume skill.
func matchedFraction(jobSkills, resumeSkills []string) float64 {
	matched := 0
	for _, js := range jobSkills {
		if slices.ContainsFunc(resumeSkills, func(rs string) bool {
			return rs == js || strings.Contains(rs, js) || strings.Contains(js, rs)
		}) {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills))
}

func anyContains(values []string, sub string) bool {
	return slices.ContainsFunc(values, func(v string) bool { return strings.Contains(v, sub) })
}

func skillScore(job jobView, resumeSkills []string) float64 {
	if len(job.skills) == 0 {
		return noSkillsScore
	}

	resumeSkills = lowerAll(resumeSkills)
	score := matchedFraction(job.skills, resumeSkills) * 100

	jobText := strings.Join(job.skills, " ")
	for _, area := range strengthAreas {
		if (strings.Contains(jobText, area) || strings.Contains(job.title, area)) && anyContains(resumeSkills, area) {
			score += 3
		}
	}

	return min(score, 100)
}

// accuracySkillScore is the per-question skill variant. Unlike skillScore the
// strategic bonus still applies when the job lists no skills.
func accuracySkillScore(job jobView, detailedSkills []string) float64 {
	detailedSkills = lowerAll(detailedSkills)

	score := float64(noSkillsScore)
	if len(job.skills) > 0 {
		score = matchedFraction(job.skills, detailedSkills) * 100
	}

	for _, area := range strategicAreas {
		if strings.Contains(job.title, area) && anyContains(detailedSkills, area) {
			score += 5
		}
	}

	return min(score, 100)
}

// JobLevel infers the seniority of a posting on a 1..8 scale.
func JobLevel(job jobposting.Requirement) int {
	title := strings.ToLower(job.Title)
	for _, rule := range titleLevels {
		if containsAny(title, rule.keywords...) {
			return rule.level
		}
	}

	experience := strings.ToLower(strings.Join(job.ExperienceHints, " "))
	for _, rule := range experienceLevels {
		if containsAny(experience, rule.keywords...) {
			return rule.level
		}
	}

	return defaultJobLevel
}

func levelScore(candidate, job int) float64 {
	diff := candidate - job
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return 100
	case diff == 1:
		return 85
	case diff == 2:
		return 70
	case diff == 3:
		return 55
	case candidate < job:
		return 40
	default:
		return 65
	}
}

func certificationScore(job jobView, certs []resume.Entry) float64 {
	if len(certs) == 0 {
		return emptyEntriesScore
	}

	total := 0
	for _, cert := range certs {
		text := cert.Text()

		for _, skill := range job.skills {
			if strings.Contains(text, skill) {
				total += 8
			}
		}

		if containsAny(job.title, "ai", "machine") && strings.Contains(text, "ai") {
			total += 10
		}
		if containsAny(job.title, "frontend", "full stack", "full-stack") && containsAny(text, "react", "sveltekit") {
			total += 10
		}
		if strings.Contains(job.title, "devops") && containsAny(text, "docker", "ci", "automation") {
			total += 10
		}
		if strings.Contains(job.title, "security") && strings.Contains(text, "cyber") {
			total += 10
		}
		if strings.Contains(job.title, "qa") && strings.Contains(text, "testing") {
			total += 10
		}

		if containsAny(text, "leadership", "career") {
			total += 3
		}
	}

	return min(float64(total)/float64(len(certs))*2, 100)
}

func projectScore(job jobView, events []resume.Entry) float64 {
	if len(events) == 0 {
		return emptyEntriesScore
	}

	total := 0
	for _, event := range events {
		title := strings.ToLower(event.DisplayName())
		text := event.Text()

		if strings.Contains(title, "hackathon") {
			total += 15
			for _, domain := range []string{"ai", "fintech", "automation"} {
				if strings.Contains(title, domain) && strings.Contains(job.title, domain) {
					total += 10
				}
			}
		}

		for _, skill := range job.skills {
			base, _, _ := strings.Cut(skill, "-")
			if strings.Contains(text, base) {
				total += 8
			}
		}

		if containsAny(job.title, "ai", "machine") && strings.Contains(text, "ai") {
			total += 10
		}
		if containsAny(job.title, "security", "cyber") && strings.Contains(text, "cyber") {
			total += 10
		}
		if containsAny(job.title, "automation", "devops") && strings.Contains(text, "automation") {
			total += 10
		}
		if strings.Contains(job.title, "frontend") && strings.Contains(text, "framework") {
			total += 10
		}

		if containsAny(title, "hour of code", "mentor", "teach") {
			total += 5
		}
	}

	return min(float64(total)/float64(len(events))*1.5, 100)
}

func educationScore(job jobView, edu *resume.Education) float64 {
	if edu == nil {
		return noEducationScore
	}

	score := 50.0
	if containsAny(strings.ToLower(edu.Degree), degreeKeywords...) {
		score += 20
	}

	jobText := job.title + " " + strings.Join(job.skills, " ")
	capstone := strings.ToLower(edu.Capstone)
	relevant := slices.ContainsFunc(capstoneKeywords, func(kw string) bool {
		return strings.Contains(capstone, kw) && strings.Contains(jobText, kw)
	})

	switch {
	case relevant:
		score += 15
	case capstone != "":
		score += 5
	}

	return min(score, 100)
}
