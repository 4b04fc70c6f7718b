// Package gate combines classification and transcript lookup into an
// allow/deny decision for one attempted action.
package gate

import (
	"github.com/rs/zerolog"

	"github.com/ppiankov/skillgate/internal/audit"
	"github.com/ppiankov/skillgate/internal/model"
	"github.com/ppiankov/skillgate/internal/rules"
)

// AckSource answers whether an acknowledgment event has been recorded.
// A source that cannot be read answers false (fail closed).
type AckSource interface {
	HasAck(name string) bool
}

// Recorder appends one decision record. Failures are dropped by the
// gate: logging is observability, never on the decision path.
type Recorder interface {
	Record(entry audit.Entry) error
}

// Gate is the decision engine. All collaborators are injected; the
// gate holds no ambient global state and never mutates the transcript.
type Gate struct {
	rules     *rules.Ruleset
	acks      AckSource
	recorder  Recorder
	rulesHash string
	diag      zerolog.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithRecorder attaches a decision log.
func WithRecorder(r Recorder) Option {
	return func(g *Gate) { g.recorder = r }
}

// WithRulesHash stamps decision records with the active ruleset hash.
func WithRulesHash(hash string) Option {
	return func(g *Gate) { g.rulesHash = hash }
}

// WithDiagnostics attaches a diagnostic logger.
func WithDiagnostics(l zerolog.Logger) Option {
	return func(g *Gate) { g.diag = l }
}

// New creates a gate over the given ruleset and acknowledgment source.
func New(rs *rules.Ruleset, acks AckSource, opts ...Option) *Gate {
	g := &Gate{
		rules: rs,
		acks:  acks,
		diag:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Decide evaluates one action request. It never fails: an unreadable
// acknowledgment source resolves to "not acknowledged", producing a
// deny rather than an error. Every call appends one decision record
// regardless of outcome.
func (g *Gate) Decide(req model.ActionRequest) model.Decision {
	decision := g.decide(req)
	g.record(req, decision)
	return decision
}

func (g *Gate) decide(req model.ActionRequest) model.Decision {
	// Self-reporting the prerequisite is always permitted: the caller
	// is in the act of satisfying the policy, not violating it.
	if req.AckName != "" {
		return model.Decision{Outcome: model.Allow}
	}

	// Non-file actions are out of policy scope.
	if req.TargetPath == "" {
		return model.Decision{Outcome: model.Allow}
	}

	rule, ok := g.rules.Classify(req.TargetPath)
	if !ok {
		return model.Decision{Outcome: model.Allow}
	}

	if g.acks != nil && g.acks.HasAck(rule.SkillName()) {
		return model.Decision{Outcome: model.Allow, Category: rule.Category}
	}

	return model.Decision{
		Outcome:     model.Deny,
		Category:    rule.Category,
		Reason:      rule.Category,
		Remediation: Remediation(rule.Category, rule.SkillName()),
	}
}

func (g *Gate) record(req model.ActionRequest, d model.Decision) {
	if g.recorder == nil {
		return
	}
	err := g.recorder.Record(audit.Entry{
		SessionID: req.SessionID,
		Kind:      string(req.Kind),
		Target:    req.TargetPath,
		Category:  d.Category,
		Outcome:   string(d.Outcome),
		Reason:    d.Reason,
		RulesHash: g.rulesHash,
	})
	if err != nil {
		// Best-effort: a failed append never changes the decision.
		g.diag.Warn().Err(err).Msg("decision log write failed")
	}
}
