package rules

import (
	"errors"
	"testing"
)

func TestClassifyFirstMatchWins(t *testing.T) {
	// A broad catch-all declared first takes precedence over a later,
	// narrower rule: priority is by declaration, not specificity.
	rs := &Ruleset{Rules: []Rule{
		{Pattern: "*/app/*", Category: "broad"},
		{Pattern: "*/app/helpers/*.rb", Category: "helpers"},
	}}

	rule, ok := rs.Classify("repo/app/helpers/users_helper.rb")
	if !ok {
		t.Fatal("expected a match")
	}
	if rule.Category != "broad" {
		t.Errorf("expected first declared rule to win, got %q", rule.Category)
	}
}

func TestClassifyDeclarationOrder(t *testing.T) {
	rs := &Ruleset{Rules: []Rule{
		{Pattern: "*/app/helpers/*.rb", Category: "helpers"},
		{Pattern: "*/app/components/*.rb", Category: "components"},
	}}

	rule, ok := rs.Classify("repo/app/helpers/users_helper.rb")
	if !ok || rule.Category != "helpers" {
		t.Errorf("expected helpers, got %v ok=%v", rule.Category, ok)
	}

	rule, ok = rs.Classify("repo/app/components/badge_component.rb")
	if !ok || rule.Category != "components" {
		t.Errorf("expected components, got %v ok=%v", rule.Category, ok)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	rs := Default()

	if _, ok := rs.Classify("README.md"); ok {
		t.Error("expected no category for README.md")
	}
	if _, ok := rs.Classify(""); ok {
		t.Error("expected no category for empty path")
	}
}

func TestClassifyDefaults(t *testing.T) {
	rs := Default()

	tests := []struct {
		path     string
		category string
	}{
		{"app/controllers/articles_controller.rb", "rails-controllers"},
		{"app/models/user.rb", "rails-models"},
		{"repo/app/helpers/users_helper.rb", "rails-helpers"},
		{"repo/app/components/badge_component.rb", "rails-view-components"},
		{"app/views/articles/index.html.erb", "rails-views"},
		{"app/javascript/controllers/modal_controller.js", "rails-stimulus"},
		{"db/migrate/20240101000000_create_users.rb", "rails-migrations"},
		{"spec/models/user_spec.rb", "rails-testing"},
		{"test/models/user_test.rb", "rails-testing"},
	}

	for _, tt := range tests {
		rule, ok := rs.Classify(tt.path)
		if !ok {
			t.Errorf("Classify(%q): expected a match", tt.path)
			continue
		}
		if rule.Category != tt.category {
			t.Errorf("Classify(%q) = %q, want %q", tt.path, rule.Category, tt.category)
		}
	}
}

func TestValidateRejectsEmptyFields(t *testing.T) {
	rs := &Ruleset{Rules: []Rule{
		{Pattern: "*/app/models/*.rb", Category: "models"},
		{Pattern: "", Category: "views"},
	}}

	err := rs.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty pattern")
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cerr.Index != 1 || cerr.Field != "pattern" {
		t.Errorf("unexpected error detail: %+v", cerr)
	}

	rs = &Ruleset{Rules: []Rule{{Pattern: "*.rb", Category: ""}}}
	if err := rs.Validate(); err == nil {
		t.Fatal("expected validation error for empty category")
	}
}

func TestSkillNameFallsBackToCategory(t *testing.T) {
	r := Rule{Pattern: "*.rb", Category: "rails-models"}
	if got := r.SkillName(); got != "rails-models" {
		t.Errorf("expected category fallback, got %q", got)
	}

	r.Skill = "ruby-conventions"
	if got := r.SkillName(); got != "ruby-conventions" {
		t.Errorf("expected explicit skill, got %q", got)
	}
}
