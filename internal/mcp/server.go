// Package mcp exposes the gate to MCP-capable hosts over stdio.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ppiankov/skillgate/internal/audit"
	"github.com/ppiankov/skillgate/internal/gate"
	"github.com/ppiankov/skillgate/internal/rules"
	"github.com/ppiankov/skillgate/internal/skills"
	"github.com/ppiankov/skillgate/internal/transcript"
)

// Config holds MCP server configuration.
type Config struct {
	RulesPath      string
	TranscriptPath string
	LogPath        string
	SkillsDir      string
	Diag           zerolog.Logger
}

// Server wraps the MCP SDK server with gate evaluation tools.
// The ruleset hot-reloads when its file changes; rulesMu guards the
// swap.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       Config

	rulesMu   sync.RWMutex
	rules     *rules.Ruleset
	rulesHash string

	reader   *transcript.Reader
	registry *skills.Registry
	log      *audit.Log
	diag     zerolog.Logger
}

// New creates an MCP server with the ruleset and skill registry loaded.
func New(cfg Config) (*Server, error) {
	rs, hash, err := rules.LoadWithHash(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset: %w", err)
	}

	registry, err := skills.Load(cfg.SkillsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	var log *audit.Log
	if cfg.LogPath != "" {
		log, err = audit.Open(cfg.LogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open decision log: %w", err)
		}
	}

	s := &Server{
		cfg:       cfg,
		rules:     rs,
		rulesHash: hash,
		reader:    transcript.NewReader(cfg.TranscriptPath),
		registry:  registry,
		log:       log,
		diag:      cfg.Diag,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "skillgate",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport and watches the ruleset
// file for changes. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := rules.NewWatcher(s.cfg.RulesPath, s.swapRules, func(err error) {
		s.diag.Warn().Err(err).Msg("ruleset watcher")
	})
	if err == nil {
		go func() { _ = watcher.Run(ctx) }()
	}

	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close closes the decision log if configured.
func (s *Server) Close() error {
	if s.log != nil {
		return s.log.Close()
	}
	return nil
}

func (s *Server) swapRules(rs *rules.Ruleset, hash string) {
	s.rulesMu.Lock()
	s.rules = rs
	s.rulesHash = hash
	s.rulesMu.Unlock()
	s.diag.Info().Str("hash", hash).Msg("ruleset reloaded")
}

// newGate builds a gate over the current ruleset snapshot.
func (s *Server) newGate() *gate.Gate {
	s.rulesMu.RLock()
	rs, hash := s.rules, s.rulesHash
	s.rulesMu.RUnlock()

	opts := []gate.Option{
		gate.WithRulesHash(hash),
		gate.WithDiagnostics(s.diag),
	}
	if s.log != nil {
		opts = append(opts, gate.WithRecorder(s.log))
	}
	return gate.New(rs, s.reader, opts...)
}

// snapshotRules returns the current rules for listing.
func (s *Server) snapshotRules() []rules.Rule {
	s.rulesMu.RLock()
	defer s.rulesMu.RUnlock()
	out := make([]rules.Rule, len(s.rules.Rules))
	copy(out, s.rules.Rules)
	return out
}

// registerTools adds all skillgate tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "skillgate_check",
		Description: "Check whether a file edit would be allowed by the skill gate. Denied edits return the category and remediation steps.",
	}, s.handleCheck)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "skillgate_rules",
		Description: "List the active gate rules in evaluation order.",
	}, s.handleRules)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "skillgate_acks",
		Description: "List which skill acknowledgments are visible in the session transcript.",
	}, s.handleAcks)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "skillgate_skill",
		Description: "Fetch a convention skill document by name.",
	}, s.handleSkill)
}
