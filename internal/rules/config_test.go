package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	rs, err := Load("/nonexistent/path/rules.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(rs.Rules) == 0 {
		t.Fatal("expected default rules")
	}
	if rs.Rules[0].Category != "rails-controllers" {
		t.Errorf("expected rails-controllers first, got %s", rs.Rules[0].Category)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `
rules:
  - pattern: "*/lib/*.go"
    category: go-conventions
  - pattern: "*/docs/*.md"
    category: docs-style
    skill: writing-docs
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load rules: %v", err)
	}
	if len(rs.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rs.Rules))
	}
	if rs.Rules[0].Category != "go-conventions" {
		t.Errorf("expected go-conventions, got %s", rs.Rules[0].Category)
	}
	if rs.Rules[1].SkillName() != "writing-docs" {
		t.Errorf("expected writing-docs skill, got %s", rs.Rules[1].SkillName())
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	if err := os.WriteFile(path, []byte("rules: [not valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsMalformedRule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `
rules:
  - pattern: "*/app/models/*.rb"
    category: ""
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// A malformed rule is fatal, never silently dropped.
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadWithHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := "rules:\n  - pattern: \"*.rb\"\n    category: ruby\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, hash1, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	_, hash2, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Error("hash not deterministic over unchanged bytes")
	}

	if err := os.WriteFile(path, []byte(content+"  - pattern: \"*.go\"\n    category: go\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, hash3, err := LoadWithHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if hash3 == hash1 {
		t.Error("hash unchanged after file edit")
	}
}

func TestDefaultYAMLRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	if err := os.WriteFile(path, []byte(DefaultYAML()), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path)
	if err != nil {
		t.Fatalf("generated default YAML does not load: %v", err)
	}
	if len(rs.Rules) != len(Default().Rules) {
		t.Errorf("expected %d rules, got %d", len(Default().Rules), len(rs.Rules))
	}
}
