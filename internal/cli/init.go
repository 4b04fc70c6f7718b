package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/rules"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config files")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap skillgate configuration",
	Long: `Creates ~/.skillgate/ with a default ruleset, an empty skills
directory, and a hook registration snippet for the host settings.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(home, ".skillgate")

	if err := os.MkdirAll(filepath.Join(configDir, "skills"), 0o755); err != nil {
		return fmt.Errorf("create skills directory: %w", err)
	}

	var created []string

	rulesPath := filepath.Join(configDir, "rules.yaml")
	if wrote, err := writeIfMissing(rulesPath, rules.DefaultYAML()); err != nil {
		return err
	} else if wrote {
		created = append(created, rulesPath)
	}

	snippetPath := filepath.Join(configDir, "hook-settings.json")
	if wrote, err := writeIfMissing(snippetPath, hookSettingsSnippet()); err != nil {
		return err
	} else if wrote {
		created = append(created, snippetPath)
	}

	if len(created) == 0 {
		fmt.Println("Nothing to do: configuration already present (use --force to overwrite).")
		return nil
	}

	fmt.Println("Created:")
	for _, p := range created {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println("\nRegister the hook by merging hook-settings.json into the host's settings,")
	fmt.Println("then drop convention skill documents into ~/.skillgate/skills/.")
	return nil
}

// writeIfMissing writes content unless the file exists (or --force).
func writeIfMissing(path, content string) (bool, error) {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// hookSettingsSnippet is the host-side hook registration: run the gate
// before every file-modifying tool call.
func hookSettingsSnippet() string {
	return `{
  "hooks": {
    "PreToolUse": [
      {
        "matcher": "Write|Edit|MultiEdit|NotebookEdit|Skill",
        "hooks": [
          {
            "type": "command",
            "command": "skillgate hook"
          }
        ]
      }
    ]
  }
}
`
}
