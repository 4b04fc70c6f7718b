package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/hook"
)

var (
	hookRules      string
	hookLog        string
	hookTranscript string
	hookNoLog      bool
)

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.Flags().StringVar(&hookRules, "rules", "", "Path to rules YAML (default: ~/.skillgate/rules.yaml)")
	hookCmd.Flags().StringVar(&hookLog, "log", "", "Path to decision log JSONL (default: ~/.skillgate/decisions.jsonl)")
	hookCmd.Flags().StringVar(&hookTranscript, "transcript", "", "Transcript path override (default: taken from the event)")
	hookCmd.Flags().BoolVar(&hookNoLog, "no-log", false, "Disable the decision log")
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Evaluate one pre-tool-use event from stdin",
	Long: "Reads a JSON action descriptor on stdin and gates it.\n\n" +
		"Exit codes:\n" +
		"  0   allowed\n" +
		"  2   denied (remediation on stderr)\n" +
		"  64  malformed event\n" +
		"  78  malformed ruleset\n\n" +
		"Register as a PreToolUse hook so every file edit passes through the gate.",
	Run: runHook,
}

func runHook(cmd *cobra.Command, args []string) {
	logPath := hookLog
	if logPath == "" && !hookNoLog {
		logPath = hook.DefaultLogPath()
	}
	if hookNoLog {
		logPath = ""
	}

	code := hook.Run(hook.Config{
		RulesPath:      hookRules,
		LogPath:        logPath,
		TranscriptPath: hookTranscript,
		Diag:           diagLogger(),
	}, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
