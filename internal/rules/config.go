package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in ruleset covering the conventional layout
// of a Rails-shaped application tree. Narrower rules are declared before
// the broader ones they specialize (helpers and components before views).
func Default() *Ruleset {
	return &Ruleset{
		Rules: []Rule{
			{Pattern: "*/app/controllers/*.rb", Category: "rails-controllers"},
			{Pattern: "*/app/models/*.rb", Category: "rails-models"},
			{Pattern: "*/app/helpers/*.rb", Category: "rails-helpers"},
			{Pattern: "*/app/components/*.rb", Category: "rails-view-components"},
			{Pattern: "*/app/views/*", Category: "rails-views"},
			{Pattern: "*/app/javascript/controllers/*.js", Category: "rails-stimulus"},
			{Pattern: "*/app/jobs/*.rb", Category: "rails-jobs"},
			{Pattern: "*/app/mailers/*.rb", Category: "rails-mailers"},
			{Pattern: "*/db/migrate/*.rb", Category: "rails-migrations"},
			{Pattern: "*/spec/*_spec.rb", Category: "rails-testing"},
			{Pattern: "*/test/*_test.rb", Category: "rails-testing"},
		},
	}
}

// DefaultPath is the ruleset location used when no path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillgate", "rules.yaml")
}

// Load reads a ruleset from a YAML file.
// Empty path falls back to ~/.skillgate/rules.yaml.
// Missing file returns the built-in defaults. Invalid YAML or an
// invalid rule returns an error.
func Load(path string) (*Ruleset, error) {
	rs, _, err := LoadWithHash(path)
	return rs, err
}

// LoadWithHash loads a ruleset and returns the SHA-256 hash of the raw
// YAML bytes for audit stamping. When no file exists (defaults used),
// the hash is the SHA-256 of empty input.
func LoadWithHash(path string) (*Ruleset, string, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return Default(), hashBytes(nil), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), hashBytes(nil), nil
		}
		return nil, "", fmt.Errorf("rules: read config: %w", err)
	}

	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, "", fmt.Errorf("rules: parse config: %w", err)
	}
	if len(rs.Rules) == 0 {
		rs = *Default()
	}
	if err := rs.Validate(); err != nil {
		return nil, "", err
	}

	return &rs, hashBytes(data), nil
}

func hashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(h[:])
}

// DefaultYAML returns a commented YAML ruleset for `skillgate init`.
func DefaultYAML() string {
	return `# skillgate ruleset
# Generated by: skillgate init
#
# Rules are evaluated in order. The first matching pattern decides the
# category; later rules are not considered even if they would match.
# Declare narrow rules before the broad ones they specialize.
#
# Fields:
#   pattern:  glob pattern, * matches across directory separators
#   category: acknowledgment required before edits may proceed
#   skill:    convention document to load (defaults to category)
rules:
  - pattern: "*/app/controllers/*.rb"
    category: rails-controllers
  - pattern: "*/app/models/*.rb"
    category: rails-models
  - pattern: "*/app/helpers/*.rb"
    category: rails-helpers
  - pattern: "*/app/components/*.rb"
    category: rails-view-components
  - pattern: "*/app/views/*"
    category: rails-views
  - pattern: "*/app/javascript/controllers/*.js"
    category: rails-stimulus
  - pattern: "*/app/jobs/*.rb"
    category: rails-jobs
  - pattern: "*/app/mailers/*.rb"
    category: rails-mailers
  - pattern: "*/db/migrate/*.rb"
    category: rails-migrations
  - pattern: "*/spec/*_spec.rb"
    category: rails-testing
  - pattern: "*/test/*_test.rb"
    category: rails-testing
`
}
