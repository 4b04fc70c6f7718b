package hook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ppiankov/skillgate/internal/audit"
	"github.com/ppiankov/skillgate/internal/gate"
	"github.com/ppiankov/skillgate/internal/rules"
	"github.com/ppiankov/skillgate/internal/transcript"
)

// Config holds one hook invocation's wiring.
type Config struct {
	// RulesPath is the ruleset YAML; empty uses ~/.skillgate/rules.yaml
	// or the compiled defaults.
	RulesPath string
	// LogPath is the decision log JSONL; empty disables recording.
	LogPath string
	// TranscriptPath overrides the transcript named in the event.
	TranscriptPath string
	// Diag receives diagnostics; zerolog.Nop() silences them.
	Diag zerolog.Logger
}

// Run processes one event from stdin and returns the process exit code.
// The gate itself never fails; non-zero codes other than ExitDeny mean
// the invocation (not the policy) went wrong.
func Run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) int {
	// A malformed ruleset is fatal: silently dropping a rule would
	// silently disable a policy.
	rs, hash, err := rules.LoadWithHash(cfg.RulesPath)
	if err != nil {
		fmt.Fprintf(stderr, "skillgate: %v\n", err)
		return ExitConfig
	}

	ev, err := ParseEvent(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "skillgate: %v\n", err)
		return ExitUsage
	}

	transcriptPath := cfg.TranscriptPath
	if transcriptPath == "" {
		transcriptPath = ev.TranscriptPath
	}

	opts := []gate.Option{
		gate.WithRulesHash(hash),
		gate.WithDiagnostics(cfg.Diag),
	}
	var log *audit.Log
	if cfg.LogPath != "" {
		log, err = audit.Open(cfg.LogPath)
		if err != nil {
			// Observability must not block the gate.
			cfg.Diag.Warn().Err(err).Msg("decision log unavailable")
		} else {
			defer log.Close()
			opts = append(opts, gate.WithRecorder(log))
		}
	}

	g := gate.New(rs, transcript.NewReader(transcriptPath), opts...)
	decision := g.Decide(ev.Request())

	WriteDecision(stdout, decision)
	if decision.Allowed() {
		return ExitAllow
	}
	fmt.Fprintln(stderr, decision.Remediation)
	return ExitDeny
}

// DefaultLogPath is the decision log location used when none is given.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillgate", "decisions.jsonl")
}
