package resume

import (
	"fmt"
	"slices"
	"strings"
)

const expertSuffix = "-expert"

// Provider exposes read-only resume facts. Implementations return empty
// collections for missing data instead of failing.
type Provider interface {
	Skills() map[string][]Entry
	Certifications() []Entry
	Events() []Entry
	Education() *Education
}

type Education struct {
	Degree   string `mapstructure:"degree"`
	School   string `mapstructure:"school"`
	Years    string `mapstructure:"years"`
	Capstone string `mapstructure:"capstone"`
}

// Document is the decoded shape of a resume file.
type Document struct {
	Personal       map[string]string  `mapstructure:"personal"`
	Skills         map[string][]Entry `mapstructure:"skills"`
	Certifications []Entry            `mapstructure:"certifications"`
	Events         []Entry            `mapstructure:"events"`
	Affiliations   []Entry            `mapstructure:"affiliations"`
	Education      *Education         `mapstructure:"education"`
}

// Facts is the static Provider backed by a Document. A nil *Facts is an empty resume.
type Facts struct {
	doc Document
}

func NewFacts(doc Document) *Facts {
	doc.Certifications = named(doc.Certifications)
	doc.Events = named(doc.Events)
	doc.Affiliations = named(doc.Affiliations)

	skills := make(map[string][]Entry, len(doc.Skills))
	for category, entries := range doc.Skills {
		if kept := named(entries); len(kept) > 0 {
			skills[category] = kept
		}
	}
	doc.Skills = skills

	return &Facts{doc: doc}
}

// named drops entries that do not resolve to a display name.
func named(entries []Entry) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.DisplayName()) != "" {
			kept = append(kept, e)
		}
	}
	return kept
}

func (f *Facts) Skills() map[string][]Entry {
	if f == nil || f.doc.Skills == nil {
		return map[string][]Entry{}
	}
	return f.doc.Skills
}

func (f *Facts) Certifications() []Entry {
	if f == nil {
		return []Entry{}
	}
	return orEmpty(f.doc.Certifications)
}

func (f *Facts) Events() []Entry {
	if f == nil {
		return []Entry{}
	}
	return orEmpty(f.doc.Events)
}

func (f *Facts) Affiliations() []Entry {
	if f == nil {
		return []Entry{}
	}
	return orEmpty(f.doc.Affiliations)
}

func (f *Facts) Education() *Education {
	if f == nil {
		return nil
	}
	return f.doc.Education
}

func (f *Facts) Personal(key string) string {
	if f == nil {
		return ""
	}
	return f.doc.Personal[strings.ToLower(key)]
}

func orEmpty(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// SkillNames flattens all skill categories, in sorted category order.
func SkillNames(p Provider) []string {
	return skillNames(p, false)
}

// DetailedSkillNames is SkillNames plus a "<name>-expert" duplicate for every
// advanced entry.
func DetailedSkillNames(p Provider) []string {
	return skillNames(p, true)
}

func skillNames(p Provider, detailed bool) []string {
	if p == nil {
		return []string{}
	}

	skills := p.Skills()
	categories := make([]string, 0, len(skills))
	for category := range skills {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	names := make([]string, 0)
	for _, category := range categories {
		for _, entry := range skills[category] {
			name := entry.DisplayName()
			names = append(names, name)
			if detailed && entry.IsAdvanced() {
				names = append(names, name+expertSuffix)
			}
		}
	}
	return names
}

// Summary renders the facts as plain text, used as context for answer generation.
func Summary(p Provider) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	if edu := p.Education(); edu != nil {
		fmt.Fprintf(&b, "Education: %s at %s", edu.Degree, edu.School)
		if edu.Capstone != "" {
			fmt.Fprintf(&b, "; capstone: %s", edu.Capstone)
		}
		b.WriteString("\n")
	}

	if names := SkillNames(p); len(names) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(names, ", "))
	}

	writeEntries(&b, "Certifications", p.Certifications())
	writeEntries(&b, "Events", p.Events())

	return strings.TrimSpace(b.String())
}

func writeEntries(b *strings.Builder, label string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, e := range entries {
		if desc := e.Description(); desc != "" {
			fmt.Fprintf(b, "- %s: %s\n", e.DisplayName(), desc)
			continue
		}
		fmt.Fprintf(b, "- %s\n", e.DisplayName())
	}
}
