package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/skillgate/internal/model"
)

// --- Input/Output types ---

// CheckInput defines parameters for the skillgate_check tool.
type CheckInput struct {
	Path string `json:"path" jsonschema:"file path the edit would target"`
	Tool string `json:"tool,omitempty" jsonschema:"host tool name, recorded for observability"`
}

// CheckOutput contains the gate decision.
type CheckOutput struct {
	Outcome     string `json:"outcome"`
	Category    string `json:"category,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Remediation string `json:"remediation,omitempty"`
}

// RulesInput has no parameters.
type RulesInput struct{}

// RuleItem describes one rule in evaluation order.
type RuleItem struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Skill    string `json:"skill"`
}

// RulesOutput lists the active rules.
type RulesOutput struct {
	Rules []RuleItem `json:"rules"`
}

// AcksInput has no parameters.
type AcksInput struct{}

// AcksOutput lists acknowledged skills visible in the transcript.
type AcksOutput struct {
	Acknowledged []string `json:"acknowledged"`
}

// SkillInput defines parameters for the skillgate_skill tool.
type SkillInput struct {
	Name string `json:"name" jsonschema:"skill document name"`
}

// SkillOutput carries one skill document.
type SkillOutput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
}

// --- Handlers ---

func (s *Server) handleCheck(ctx context.Context, req *mcpsdk.CallToolRequest, input CheckInput) (*mcpsdk.CallToolResult, CheckOutput, error) {
	decision := s.newGate().Decide(model.ActionRequest{
		Kind:       model.KindFileEdit,
		TargetPath: input.Path,
		Tool:       input.Tool,
	})

	out := CheckOutput{
		Outcome:     string(decision.Outcome),
		Category:    decision.Category,
		Reason:      decision.Reason,
		Remediation: decision.Remediation,
	}
	if !decision.Allowed() {
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}
	return nil, out, nil
}

func (s *Server) handleRules(ctx context.Context, req *mcpsdk.CallToolRequest, input RulesInput) (*mcpsdk.CallToolResult, RulesOutput, error) {
	var out RulesOutput
	for _, r := range s.snapshotRules() {
		out.Rules = append(out.Rules, RuleItem{
			Pattern:  r.Pattern,
			Category: r.Category,
			Skill:    r.SkillName(),
		})
	}
	return nil, out, nil
}

func (s *Server) handleAcks(ctx context.Context, req *mcpsdk.CallToolRequest, input AcksInput) (*mcpsdk.CallToolResult, AcksOutput, error) {
	known := make(map[string]bool)
	var names []string
	for _, r := range s.snapshotRules() {
		name := r.SkillName()
		if !known[name] {
			known[name] = true
			names = append(names, name)
		}
	}
	return nil, AcksOutput{Acknowledged: s.reader.Acks(names)}, nil
}

func (s *Server) handleSkill(ctx context.Context, req *mcpsdk.CallToolRequest, input SkillInput) (*mcpsdk.CallToolResult, SkillOutput, error) {
	skill, ok := s.registry.Get(input.Name)
	if !ok {
		return nil, SkillOutput{}, fmt.Errorf("unknown skill: %s", input.Name)
	}
	return nil, SkillOutput{
		Name:        skill.Name,
		Description: skill.Description,
		Content:     skill.Content,
	}, nil
}
