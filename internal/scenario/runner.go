package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/skillgate/internal/gate"
	"github.com/ppiankov/skillgate/internal/model"
	"github.com/ppiankov/skillgate/internal/rules"
	"github.com/ppiankov/skillgate/internal/transcript"
)

// Run evaluates all cases in a scenario against the given ruleset.
// Cases are independent: each sees the same fixture transcript, and
// the gate records no decisions while under test.
func Run(s *Scenario, rs *rules.Ruleset) *RunResult {
	g := gate.New(rs, transcript.Lines(s.Transcript))

	result := &RunResult{
		Name:  s.Name,
		Total: len(s.Cases),
	}

	for i, c := range s.Cases {
		decision := g.Decide(toRequest(c.Action))

		cr := CaseResult{
			Index:    i + 1,
			Path:     c.Action.Path,
			Expected: c.Expect,
			Actual:   string(decision.Outcome),
			Category: decision.Category,
			Reason:   decision.Reason,
		}

		cr.Passed = cr.Actual == cr.Expected &&
			(c.Category == "" || c.Category == decision.Category)
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}

		result.Cases = append(result.Cases, cr)
	}

	return result
}

// toRequest maps a scenario action to a gate request. Kind is inferred
// when omitted: an ack name means an acknowledgment event, a path means
// a file edit, neither means an out-of-scope action.
func toRequest(a Action) model.ActionRequest {
	kind := model.ActionKind(a.Kind)
	if a.Kind == "" {
		switch {
		case a.Ack != "":
			kind = model.KindAck
		case a.Path != "":
			kind = model.KindFileEdit
		default:
			kind = model.KindOther
		}
	}
	return model.ActionRequest{
		Kind:       kind,
		TargetPath: a.Path,
		AckName:    a.Ack,
		Tool:       a.Tool,
	}
}

// LoadAndRun loads a scenario YAML file, resolves its ruleset, and runs.
// rulesPath is the default ruleset; a scenario-level rules_file wins.
func LoadAndRun(path, rulesPath string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	effective := rulesPath
	if s.RulesFile != "" {
		effective = s.RulesFile
	}
	rs, err := rules.Load(effective)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	result := Run(&s, rs)
	result.File = path

	return result, nil
}
