package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ppiankov/skillgate/internal/rules"
)

func newTestServer(t *testing.T, transcriptLines string) *Server {
	t.Helper()
	dir := t.TempDir()

	transcriptPath := filepath.Join(dir, "transcript.jsonl")
	if err := os.WriteFile(transcriptPath, []byte(transcriptLines), 0644); err != nil {
		t.Fatal(err)
	}

	skillsDir := filepath.Join(dir, "skills")
	if err := os.MkdirAll(skillsDir, 0755); err != nil {
		t.Fatal(err)
	}
	doc := "---\nname: rails-models\ndescription: Model conventions.\n---\n# Models\n"
	if err := os.WriteFile(filepath.Join(skillsDir, "models.md"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	srv, err := New(Config{
		RulesPath:      filepath.Join(dir, "no-rules.yaml"), // defaults
		TranscriptPath: transcriptPath,
		SkillsDir:      skillsDir,
		Diag:           zerolog.Nop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { srv.Close() })
	return srv
}

func TestHandleCheckDenies(t *testing.T) {
	srv := newTestServer(t, "")

	result, out, err := srv.handleCheck(context.Background(), nil, CheckInput{
		Path: "app/models/user.rb",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result == nil || !result.IsError {
		t.Fatal("denied check must flag IsError")
	}
	if out.Outcome != "deny" || out.Category != "rails-models" {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.Remediation == "" {
		t.Error("deny must carry remediation")
	}
}

func TestHandleCheckAllowsAcknowledged(t *testing.T) {
	srv := newTestServer(t, `{"skill":"rails-models"}`+"\n")

	result, out, err := srv.handleCheck(context.Background(), nil, CheckInput{
		Path: "app/models/user.rb",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatal("allowed check must not flag an error")
	}
	if out.Outcome != "allow" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestHandleRulesListsInOrder(t *testing.T) {
	srv := newTestServer(t, "")

	_, out, err := srv.handleRules(context.Background(), nil, RulesInput{})
	if err != nil {
		t.Fatal(err)
	}
	want := rules.Default().Rules
	if len(out.Rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(out.Rules))
	}
	if out.Rules[0].Category != want[0].Category {
		t.Errorf("order not preserved: %+v", out.Rules[0])
	}
}

func TestHandleAcks(t *testing.T) {
	srv := newTestServer(t, `{"skill": "rails-views"}`+"\n")

	_, out, err := srv.handleAcks(context.Background(), nil, AcksInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Acknowledged) != 1 || out.Acknowledged[0] != "rails-views" {
		t.Errorf("unexpected acks: %v", out.Acknowledged)
	}
}

func TestHandleSkill(t *testing.T) {
	srv := newTestServer(t, "")

	_, out, err := srv.handleSkill(context.Background(), nil, SkillInput{Name: "rails-models"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Description != "Model conventions." {
		t.Errorf("unexpected skill: %+v", out)
	}

	if _, _, err := srv.handleSkill(context.Background(), nil, SkillInput{Name: "nope"}); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestSwapRules(t *testing.T) {
	srv := newTestServer(t, "")

	srv.swapRules(&rules.Ruleset{Rules: []rules.Rule{
		{Pattern: "*.go", Category: "go-style"},
	}}, "sha256:new")

	_, out, err := srv.handleCheck(context.Background(), nil, CheckInput{Path: "main.go"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Outcome != "deny" || out.Category != "go-style" {
		t.Errorf("swapped ruleset not in effect: %+v", out)
	}

	// The old default rules are gone.
	_, out, _ = srv.handleCheck(context.Background(), nil, CheckInput{Path: "app/models/user.rb"})
	if out.Outcome != "allow" {
		t.Errorf("old rules still in effect: %+v", out)
	}
}
