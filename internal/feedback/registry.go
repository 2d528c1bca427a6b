package feedback

import (
	"github.com/pthm/speechstyle/internal/analyzer"
)

// BalancedRuleName is reported for the fallback comment
const BalancedRuleName = "balanced"

// Registry holds feedback rules in evaluation order
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register appends a rule; rules are evaluated in registration order
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// Generate runs every rule against m. Every rule that fires contributes a
// comment; when none fires a single balanced comment is returned.
func (r *Registry) Generate(m *analyzer.Measurements) []Comment {
	var comments []Comment
	for _, rule := range r.rules {
		if c, ok := rule.Check(m); ok {
			comments = append(comments, c)
		}
	}

	if len(comments) == 0 {
		comments = append(comments, Comment{Rule: BalancedRuleName, Kind: Balanced})
	}
	return comments
}

// DefaultRegistry returns a registry with all default rules
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(&SpeedRule{})
	r.Register(&DensityRule{})
	r.Register(&TechnicalRule{})
	r.Register(&FillerRule{})

	return r
}
