package jobposting

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const fullStackPosting = `# Full Stack Developer

**Location:** Manila, PH
**Type:** Full-time
**Salary:** 60,000 - 80,000 PHP

## Company
  Acme Digital
Second line is ignored

## Key Responsibilities
- Build REST APIs with Node.js
-   Maintain React frontends

## Required Skills
- JavaScript
- React
- Node.js

## Benefits
- Free lunch

## Experience
- 2-3 years building web applications
`

func TestParse(t *testing.T) {
	t.Parallel()

	got := Parse(fullStackPosting)

	want := Requirement{
		Title:            "Full Stack Developer",
		Company:          "Acme Digital",
		Location:         "Manila, PH",
		EmploymentType:   "Full-time",
		Salary:           "60,000 - 80,000 PHP",
		Responsibilities: []string{"Build REST APIs with Node.js", "Maintain React frontends"},
		Skills:           []string{"JavaScript", "React", "Node.js"},
		ExperienceHints:  []string{"2-3 years building web applications"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected requirement:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestParseEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, r Requirement)
	}{
		{
			name:  "empty input yields empty lists",
			input: "",
			check: func(t *testing.T, r Requirement) {
				if r.Title != "" || r.Company != "" {
					t.Fatalf("expected empty title and company, got %+v", r)
				}
				if r.Skills == nil || len(r.Skills) != 0 {
					t.Fatalf("expected empty non-nil skills, got %#v", r.Skills)
				}
			},
		},
		{
			name:  "bullets before any header are dropped",
			input: "- orphan\n# QA Engineer\n- still orphan",
			check: func(t *testing.T, r Requirement) {
				if r.Title != "QA Engineer" {
					t.Fatalf("unexpected title %q", r.Title)
				}
				if len(r.Skills)+len(r.Responsibilities)+len(r.ExperienceHints) != 0 {
					t.Fatalf("expected no items, got %+v", r)
				}
			},
		},
		{
			name:  "unknown header resets the cursor",
			input: "## Required Skills\n- Go\n## Perks\n- Gym\n- Snacks",
			check: func(t *testing.T, r Requirement) {
				if !reflect.DeepEqual(r.Skills, []string{"Go"}) {
					t.Fatalf("unexpected skills %#v", r.Skills)
				}
			},
		},
		{
			name:  "sections in any order",
			input: "## Experience\n- 5+ years\n## Company\nGlobex\n# Senior Software Engineer",
			check: func(t *testing.T, r Requirement) {
				if r.Title != "Senior Software Engineer" || r.Company != "Globex" {
					t.Fatalf("unexpected requirement %+v", r)
				}
				if !reflect.DeepEqual(r.ExperienceHints, []string{"5+ years"}) {
					t.Fatalf("unexpected experience %#v", r.ExperienceHints)
				}
			},
		},
		{
			name:  "bold lines are not taken as company",
			input: "## Company\n**About us**\nInitech",
			check: func(t *testing.T, r Requirement) {
				if r.Company != "Initech" {
					t.Fatalf("expected Initech, got %q", r.Company)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Parse(tt.input))
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	t.Parallel()

	first := Parse(fullStackPosting)
	second := Parse(fullStackPosting)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected equal results, got %+v and %+v", first, second)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"02_devops.md":   "# DevOps Engineer\n## Company\nGlobex",
		"01_junior.md":   "# Junior Developer\n## Company\nAcme",
		"notes.json":     "{}",
		"03_qa.txt":      "# QA Test Engineer",
		"04_security.MD": "# Security Analyst\n## Company\nAcme",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	postings, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTitles := []string{"Junior Developer", "DevOps Engineer", "QA Test Engineer", "Security Analyst"}
	if !reflect.DeepEqual(postings.Titles(), wantTitles) {
		t.Fatalf("unexpected titles %#v", postings.Titles())
	}

	wantLabels := []string{"Junior Developer - Acme", "DevOps Engineer - Globex", "QA Test Engineer", "Security Analyst - Acme"}
	if !reflect.DeepEqual(postings.Labels(), wantLabels) {
		t.Fatalf("unexpected labels %#v", postings.Labels())
	}

	if p := postings.FindByTitle("devops engineer"); p == nil || p.Company != "Globex" {
		t.Fatalf("expected to find devops posting, got %+v", p)
	}

	excluded := postings.Exclude(CompanyField, []string{"acme"})
	if len(excluded) != 2 {
		t.Fatalf("expected 2 excluded postings, got %v", excluded)
	}
	if !reflect.DeepEqual(postings.Titles(), []string{"DevOps Engineer", "QA Test Engineer"}) {
		t.Fatalf("unexpected titles after exclude %#v", postings.Titles())
	}

	report := postings.ReportByCompany()
	if len(report["Globex"]) != 1 || len(report["unknown company"]) != 1 {
		t.Fatalf("unexpected report %#v", report)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
