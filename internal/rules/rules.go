package rules

import "fmt"

// Rule binds a path pattern to the policy category it requires.
// Rules are evaluated in declaration order; the first matching rule
// determines the category exclusively.
type Rule struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
	// Skill names the convention document satisfying the category.
	// Empty means the skill shares the category's name.
	Skill string `yaml:"skill,omitempty"`
}

// SkillName returns the skill document bound to this rule.
func (r Rule) SkillName() string {
	if r.Skill != "" {
		return r.Skill
	}
	return r.Category
}

// ConfigError reports a malformed ruleset. It is fatal at load time:
// a silently dropped rule would silently disable a policy.
type ConfigError struct {
	Index int
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rules: rule %d has empty %s", e.Index, e.Field)
}

// Ruleset is the process-wide ordered rule table, immutable after load.
type Ruleset struct {
	Rules []Rule `yaml:"rules"`
}

// Validate rejects rules with empty patterns or categories.
func (rs *Ruleset) Validate() error {
	for i, r := range rs.Rules {
		if r.Pattern == "" {
			return &ConfigError{Index: i, Field: "pattern"}
		}
		if r.Category == "" {
			return &ConfigError{Index: i, Field: "category"}
		}
	}
	return nil
}

// Classify maps a target path to the first matching rule.
// An empty path or a path matching no rule returns ok=false,
// signaling that no policy applies and the action passes.
func (rs *Ruleset) Classify(path string) (rule Rule, ok bool) {
	if path == "" {
		return Rule{}, false
	}
	for _, r := range rs.Rules {
		if Match(r.Pattern, path) {
			return r, true
		}
	}
	return Rule{}, false
}
