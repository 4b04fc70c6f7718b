package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/mcp"
)

var (
	mcpRules      string
	mcpTranscript string
	mcpLog        string
	mcpSkillsDir  string
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpRules, "rules", "", "Path to rules YAML (default: ~/.skillgate/rules.yaml)")
	mcpCmd.Flags().StringVar(&mcpTranscript, "transcript", "", "Session transcript path for acknowledgment lookups")
	mcpCmd.Flags().StringVar(&mcpLog, "log", "", "Path to decision log JSONL")
	mcpCmd.Flags().StringVar(&mcpSkillsDir, "skills", "", "Skills directory (default: ~/.skillgate/skills)")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run skillgate as an MCP server (stdio)",
	Long: "Exposes gate tools over the Model Context Protocol:\n" +
		"  skillgate_check  - dry-run a file edit through the gate\n" +
		"  skillgate_rules  - list the active ruleset\n" +
		"  skillgate_acks   - list acknowledged skills in the transcript\n" +
		"  skillgate_skill  - fetch a convention skill document\n\n" +
		"The ruleset hot-reloads when its file changes.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	skillsPath := mcpSkillsDir
	if skillsPath == "" {
		skillsPath = defaultSkillsDir()
	}

	srv, err := mcp.New(mcp.Config{
		RulesPath:      mcpRules,
		TranscriptPath: mcpTranscript,
		LogPath:        mcpLog,
		SkillsDir:      skillsPath,
		Diag:           diagLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return srv.Run(ctx)
}
