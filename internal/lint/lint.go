// Package lint applies heuristic ATS-friendliness checks to a resume block.
// Warnings are advisory, recomputed fresh on every run, and carry no identity.
package lint

// Checker is the interface for a single built-in lint rule. Check returns a
// human-readable warning, or "" when the rule passes.
type Checker interface {
	RuleKey() string
	Check(text string) string
}

// Registry holds lint rules in a fixed order so output is stable run-to-run.
type Registry struct {
	checkers []Checker
}

// NewRegistry creates a registry with the built-in rules in their canonical order.
func NewRegistry() *Registry {
	return &Registry{
		checkers: []Checker{
			&LongLinesChecker{MaxLineLen: defaultMaxLineLen},
			&NonASCIIChecker{},
			&MissingHeadingsChecker{},
		},
	}
}

// Register appends a rule after the built-ins.
func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

// Run evaluates every rule against the text, preserving registration order.
// Each rule contributes at most one warning.
func (r *Registry) Run(text string) []string {
	var warnings []string
	for _, c := range r.checkers {
		if w := c.Check(text); w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}
