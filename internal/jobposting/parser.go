package jobposting

import (
	"strings"
)

type section int

const (
	sectionNone section = iota
	sectionCompany
	sectionResponsibilities
	sectionSkills
	sectionExperience
)

const (
	titleMarker  = "# "
	headerMarker = "#"
	bulletMarker = "- "
	boldMarker   = "**"
)

var headers = []struct {
	prefix  string
	section section
}{
	{"## Company", sectionCompany},
	{"## Key Responsibilities", sectionResponsibilities},
	{"## Required Skills", sectionSkills},
	{"## Experience", sectionExperience},
}

var metadata = []struct {
	labels []string
	set    func(r *Requirement, v string)
}{
	{[]string{"location"}, func(r *Requirement, v string) { r.Location = v }},
	{[]string{"type", "employment type", "job type"}, func(r *Requirement, v string) { r.EmploymentType = v }},
	{[]string{"salary"}, func(r *Requirement, v string) { r.Salary = v }},
}

// Parse converts a markdown-like job posting into a Requirement.
// Missing sections produce empty values; Parse never fails.
func Parse(raw string) Requirement {
	req := Requirement{
		Responsibilities: []string{},
		Skills:           []string{},
		ExperienceHints:  []string{},
	}

	current := sectionNone

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, titleMarker):
			req.Title = strings.TrimSpace(strings.TrimPrefix(line, titleMarker))
		case strings.HasPrefix(line, headerMarker):
			current = headerSection(line)
		case strings.HasPrefix(line, bulletMarker):
			item := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))
			switch current {
			case sectionResponsibilities:
				req.Responsibilities = append(req.Responsibilities, item)
			case sectionSkills:
				req.Skills = append(req.Skills, item)
			case sectionExperience:
				req.ExperienceHints = append(req.ExperienceHints, item)
			}
		case strings.HasPrefix(line, boldMarker):
			applyMetadata(&req, line)
		case current == sectionCompany && line != "" && req.Company == "":
			req.Company = line
		}
	}

	return req
}

func headerSection(line string) section {
	for _, h := range headers {
		if strings.HasPrefix(line, h.prefix) {
			return h.section
		}
	}
	return sectionNone
}

// applyMetadata handles "**Label:** value" lines.
func applyMetadata(req *Requirement, line string) {
	body := strings.TrimPrefix(line, boldMarker)
	end := strings.Index(body, boldMarker)
	if end == -1 {
		return
	}

	label := strings.TrimSpace(body[:end])
	label = strings.ToLower(strings.TrimSuffix(label, ":"))
	value := strings.TrimSpace(body[end+len(boldMarker):])
	value = strings.TrimSpace(strings.TrimPrefix(value, ":"))
	if value == "" {
		return
	}

	for _, m := range metadata {
		for _, l := range m.labels {
			if label == l {
				m.set(req, value)
				return
			}
		}
	}
}
