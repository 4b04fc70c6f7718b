package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/rules"
)

var (
	rulesPath   string
	rulesFormat string
	rulesTest   string
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to rules YAML (default: ~/.skillgate/rules.yaml)")
	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "f", "text", "Output format (text|json)")
	rulesCmd.Flags().StringVar(&rulesTest, "test", "", "Classify a path against the ruleset instead of listing")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active ruleset",
	Long: "Lists the gate rules in evaluation order, or with --test classifies\n" +
		"a single path the way the hook would.",
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	rs, hash, err := rules.LoadWithHash(rulesPath)
	if err != nil {
		return err
	}

	if rulesTest != "" {
		rule, ok := rs.Classify(rulesTest)
		if !ok {
			fmt.Printf("%s: no rule matches, edits pass unconditionally\n", rulesTest)
			return nil
		}
		fmt.Printf("%s: category=%s skill=%s pattern=%s\n",
			rulesTest, rule.Category, rule.SkillName(), rule.Pattern)
		return nil
	}

	if rulesFormat == "json" {
		out, err := json.MarshalIndent(map[string]any{
			"hash":  hash,
			"rules": rs.Rules,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Ruleset %s (%d rules, first match wins):\n\n", hash, len(rs.Rules))
	for i, r := range rs.Rules {
		fmt.Printf("  %2d. %-40s -> %s\n", i+1, r.Pattern, r.Category)
	}
	return nil
}
