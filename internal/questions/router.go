package questions

import (
	"strings"

	"github.com/spigell/interview-sim/internal/jobposting"
)

// Category names a question bank.
type Category string

const (
	CategoryAI        Category = "ai"
	CategorySenior    Category = "senior"
	CategoryJunior    Category = "junior"
	CategoryFrontend  Category = "frontend"
	CategoryFullStack Category = "fullstack"
	CategoryDevOps    Category = "devops"
	CategoryQA        Category = "qa"
	CategorySecurity  Category = "security"
	CategoryGeneric   Category = "generic"
)

// Spec is a single interview question with guidance for the candidate.
type Spec struct {
	Question   string `json:"question"`
	Assessment string `json:"assessment"`
	Tip        string `json:"tip"`
}

// Bank is the fixed, ordered list of questions asked in one session.
type Bank [5]Spec

// Route binds a category to its title predicate and bank builder.
type Route struct {
	Category Category
	Match    func(title string) bool
	Build    func(job jobposting.Requirement) Bank
}

// Router picks the first route whose predicate accepts the lowercased title.
type Router struct {
	routes   []Route
	fallback Route
}

func titleHas(keywords ...string) func(string) bool {
	return func(title string) bool {
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}

func NewRouter() *Router {
	return &Router{
		routes: []Route{
			{Category: CategoryAI, Match: titleHas("ai", "machine"), Build: aiBank},
			{Category: CategorySenior, Match: func(title string) bool {
				return strings.Contains(title, "senior") && titleHas("software", "developer")(title)
			}, Build: seniorBank},
			{Category: CategoryJunior, Match: titleHas("junior", "entry"), Build: juniorBank},
			{Category: CategoryFrontend, Match: titleHas("frontend"), Build: frontendBank},
			{Category: CategoryFullStack, Match: titleHas("full stack", "full-stack"), Build: fullStackBank},
			{Category: CategoryDevOps, Match: titleHas("devops"), Build: devOpsBank},
			{Category: CategoryQA, Match: titleHas("qa", "test"), Build: qaBank},
			{Category: CategorySecurity, Match: titleHas("security", "cyber"), Build: securityBank},
		},
		fallback: Route{Category: CategoryGeneric, Build: genericBank},
	}
}

// Categories lists every category in routing order, generic last.
func (r *Router) Categories() []Category {
	categories := make([]Category, 0, len(r.routes)+1)
	for _, route := range r.routes {
		categories = append(categories, route.Category)
	}
	return append(categories, r.fallback.Category)
}

func (r *Router) match(title string) Route {
	title = strings.ToLower(title)
	for _, route := range r.routes {
		if route.Match(title) {
			return route
		}
	}
	return r.fallback
}

// Route returns the category and the question bank for job.
func (r *Router) Route(job jobposting.Requirement) (Category, Bank) {
	route := r.match(job.Title)
	return route.Category, route.Build(job)
}

func (r *Router) QuestionsFor(job jobposting.Requirement) Bank {
	_, bank := r.Route(job)
	return bank
}

func first(values []string, fallback string) string {
	if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		return strings.TrimSpace(values[0])
	}
	return fallback
}
