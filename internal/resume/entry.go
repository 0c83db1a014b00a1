package resume

import (
	"strings"
)

// Kind tells whether an Entry came from a bare string or from a record.
type Kind int

const (
	KindPlain Kind = iota
	KindStructured
)

const advancedProficiency = "advanced"

// nameFields is the priority list used to resolve the display name of a structured entry.
var nameFields = []string{"name", "lang", "skill", "area", "title", "tool", "label", "value"}

// descriptionFields lists the free text detail keys of a structured entry.
var descriptionFields = []string{"desc", "description", "details", "usecases", "use_cases"}

// Entry is a skill, certification, event or affiliation. It is either a plain
// string or a record with a canonical name field plus free text details.
type Entry struct {
	Kind   Kind
	Value  string
	Fields map[string]string
}

func Plain(value string) Entry {
	return Entry{Kind: KindPlain, Value: strings.TrimSpace(value)}
}

// Structured builds a record entry. Keys are lowercased and values trimmed.
func Structured(fields map[string]string) Entry {
	normalized := make(map[string]string, len(fields))
	for k, v := range fields {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		normalized[key] = strings.TrimSpace(v)
	}
	return Entry{Kind: KindStructured, Fields: normalized}
}

func (e Entry) DisplayName() string {
	if e.Kind == KindPlain {
		return e.Value
	}
	return e.Detail(nameFields...)
}

// Detail returns the first non-empty field among keys.
func (e Entry) Detail(keys ...string) string {
	for _, key := range keys {
		if v := e.Fields[key]; v != "" {
			return v
		}
	}
	return ""
}

func (e Entry) Description() string {
	return e.Detail(descriptionFields...)
}

func (e Entry) Proficiency() string {
	return e.Detail("proficiency", "level")
}

func (e Entry) IsAdvanced() bool {
	return strings.EqualFold(e.Proficiency(), advancedProficiency)
}

// Text joins the display name and description, lowercased, for keyword matching.
func (e Entry) Text() string {
	return strings.ToLower(strings.TrimSpace(e.DisplayName() + " " + e.Description()))
}
