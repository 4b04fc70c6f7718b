package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/skillgate/internal/rules"
)

func TestRunScenario(t *testing.T) {
	s := &Scenario{
		Name:       "controller gating",
		Transcript: []string{`{"skill":"rails-models"}`},
		Cases: []Case{
			{Action: Action{Path: "app/controllers/articles_controller.rb"}, Expect: "deny", Category: "rails-controllers"},
			{Action: Action{Path: "app/models/user.rb"}, Expect: "allow"},
			{Action: Action{Path: "README.md"}, Expect: "allow"},
			{Action: Action{Ack: "rails-views"}, Expect: "allow"},
		},
	}

	result := Run(s, rules.Default())
	if result.Failed != 0 {
		t.Fatalf("expected all passing, got %+v", result.Cases)
	}
	if result.Passed != 4 || result.Total != 4 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

func TestRunDetectsFailures(t *testing.T) {
	s := &Scenario{
		Name: "wrong expectations",
		Cases: []Case{
			{Action: Action{Path: "app/models/user.rb"}, Expect: "allow"},
		},
	}

	result := Run(s, rules.Default())
	if result.Failed != 1 {
		t.Fatalf("expected 1 failure, got %d", result.Failed)
	}
	c := result.Cases[0]
	if c.Actual != "deny" || c.Expected != "allow" {
		t.Errorf("unexpected case result: %+v", c)
	}
}

func TestRunChecksCategory(t *testing.T) {
	s := &Scenario{
		Name: "category mismatch",
		Cases: []Case{
			{Action: Action{Path: "app/models/user.rb"}, Expect: "deny", Category: "rails-views"},
		},
	}

	result := Run(s, rules.Default())
	if result.Failed != 1 {
		t.Fatal("outcome matched but category did not; case must fail")
	}
}

func TestLoadAndRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gating.yaml")

	content := `
name: basic gating
transcript:
  - '{"skill": "rails-models"}'
cases:
  - action: {path: app/models/user.rb}
    expect: allow
  - action: {path: app/views/articles/index.html.erb}
    expect: deny
    category: rails-views
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := LoadAndRun(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if result.Failed != 0 {
		t.Fatalf("expected all passing: %+v", result.Cases)
	}
	if result.File != path {
		t.Errorf("result must carry the file path, got %q", result.File)
	}
}

func TestLoadAndRunScenarioRules(t *testing.T) {
	dir := t.TempDir()

	rulesPath := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(rulesPath, []byte("rules:\n  - pattern: \"*.go\"\n    category: go-style\n"), 0644); err != nil {
		t.Fatal(err)
	}

	scenarioPath := filepath.Join(dir, "go.yaml")
	content := `
name: custom rules
rules_file: ` + rulesPath + `
cases:
  - action: {path: main.go}
    expect: deny
    category: go-style
  - action: {path: app/models/user.rb}
    expect: allow
`
	if err := os.WriteFile(scenarioPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := LoadAndRun(scenarioPath, "")
	if err != nil {
		t.Fatal(err)
	}
	if result.Failed != 0 {
		t.Fatalf("expected all passing: %+v", result.Cases)
	}
}

func TestFormatText(t *testing.T) {
	results := []*RunResult{
		{Name: "ok", Total: 2, Passed: 2},
		{Name: "bad", Total: 1, Failed: 1, Cases: []CaseResult{
			{Index: 1, Path: "app/models/user.rb", Expected: "allow", Actual: "deny"},
		}},
	}

	out := FormatText(results)
	if !strings.Contains(out, "PASS  ok") || !strings.Contains(out, "FAIL  bad") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "2 of 3 cases passed.") {
		t.Errorf("missing summary:\n%s", out)
	}
}
