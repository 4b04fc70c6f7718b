package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var diagPath string

var rootCmd = &cobra.Command{
	Use:   "skillgate",
	Short: "Pre-action policy gate for agent file edits",
	Long:  "Gates file-modification tool calls behind a load-the-relevant-skill-first policy.\nInstalled as a pre-tool-use hook: deny until the convention skill has been\nacknowledged in the session transcript.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&diagPath, "diag-log", "", "Path for diagnostic JSON lines (default: disabled)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// diagLogger opens the diagnostic sink. Diagnostics are fire-and-forget:
// an unopenable sink silences them rather than failing the command.
func diagLogger() zerolog.Logger {
	if diagPath == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
