package jobposting

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spigell/interview-sim/internal/utils"
)

const (
	CompanyField = "Company"
	SourceField  = "Source"
	TitleField   = "Title"
)

var sourceExtensions = []string{".md", ".txt"}

// Requirement is a normalized job posting. It is built once from raw text
// and is not modified afterwards.
type Requirement struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	EmploymentType   string   `json:"employment_type,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Skills           []string `json:"skills"`
	ExperienceHints  []string `json:"experience_hints"`
	Salary           string   `json:"salary,omitempty"`

	// Source is the file the posting was read from, if any.
	Source string `json:"source,omitempty"`
}

type Postings struct {
	Items []*Posting
}

// Posting pairs a parsed requirement with its raw text.
type Posting struct {
	Requirement
	Raw string `json:"-"`
}

func (r Requirement) Label() string {
	if r.Company == "" {
		return r.Title
	}
	return fmt.Sprintf("%s - %s", r.Title, r.Company)
}

func (r Requirement) GetStringField(name string) string {
	switch name {
	case CompanyField:
		return r.Company
	case SourceField:
		return r.Source
	case TitleField:
		return r.Title
	default:
		return ""
	}
}

// LoadFile reads and parses a single posting.
func LoadFile(path string) (*Posting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job posting %q: %w", path, err)
	}

	raw := string(data)
	req := Parse(raw)
	req.Source = path

	return &Posting{Requirement: req, Raw: raw}, nil
}

// LoadDir parses every posting file in dir, ordered by file name.
func LoadDir(dir string) (*Postings, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading job postings dir %q: %w", dir, err)
	}

	postings := &Postings{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !slices.Contains(sourceExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}

		posting, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		postings.Items = append(postings.Items, posting)
	}

	return postings, nil
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) Titles() []string {
	titles := make([]string, 0, p.Len())
	for _, posting := range p.Items {
		titles = append(titles, posting.Title)
	}
	return titles
}

func (p *Postings) Labels() []string {
	labels := make([]string, 0, p.Len())
	for _, posting := range p.Items {
		labels = append(labels, posting.Label())
	}
	return labels
}

func (p *Postings) FindByTitle(title string) *Posting {
	for _, posting := range p.Items {
		if strings.EqualFold(posting.Title, title) {
			return posting
		}
	}
	return nil
}

// Exclude removes postings whose field matches one of targets (case-insensitive)
// and returns the sources of the removed postings. Order is preserved.
func (p *Postings) Exclude(field string, targets []string) []string {
	var excluded []string
	kept := p.Items[:0]
	for _, posting := range p.Items {
		value := posting.GetStringField(field)
		if slices.ContainsFunc(targets, func(t string) bool { return strings.EqualFold(t, value) }) {
			excluded = append(excluded, posting.Source)
			continue
		}
		kept = append(kept, posting)
	}
	p.Items = kept
	return excluded
}

// Keep retains only the postings accepted by fn and returns the sources of the dropped ones.
func (p *Postings) Keep(fn func(*Posting) bool) []string {
	var dropped []string
	kept := p.Items[:0]
	for _, posting := range p.Items {
		if fn(posting) {
			kept = append(kept, posting)
			continue
		}
		dropped = append(dropped, posting.Source)
	}
	p.Items = kept
	return dropped
}

// ReportByCompany groups postings by company for display.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if key == "" {
			key = "unknown company"
		}
		report[key] = append(report[key], map[string]string{
			"title":    posting.Title,
			"source":   posting.Source,
			"location": posting.Location,
			"type":     posting.EmploymentType,
			"salary":   posting.Salary,
			"skills":   strings.Join(posting.Skills, ", "),
		})
	}
	return report
}

// DumpToTmpFile writes the postings as JSON into a temp file and returns its path.
func (p *Postings) DumpToTmpFile() (string, error) {
	return utils.DumpToTmpFile("postings_*.json", p.Items)
}
