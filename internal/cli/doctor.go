package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/audit"
	"github.com/ppiankov/skillgate/internal/hook"
	"github.com/ppiankov/skillgate/internal/rules"
	"github.com/ppiankov/skillgate/internal/skills"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and diagnose gate readiness",
	RunE:  runDoctor,
}

type checkResult struct {
	label  string
	ok     bool
	detail string
	fix    string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	var checks []checkResult

	// 1. Config directory.
	home, homeErr := os.UserHomeDir()
	configDir := ""
	if homeErr == nil {
		configDir = filepath.Join(home, ".skillgate")
	}
	if info, err := os.Stat(configDir); err == nil && info.IsDir() {
		checks = append(checks, checkResult{
			label:  "config directory",
			ok:     true,
			detail: configDir,
		})
	} else {
		checks = append(checks, checkResult{
			label:  "config directory",
			ok:     false,
			detail: configDir + " missing",
			fix:    "run: skillgate init",
		})
	}

	// 2. Ruleset loads and validates.
	rs, hash, err := rules.LoadWithHash("")
	if err != nil {
		checks = append(checks, checkResult{
			label:  "ruleset",
			ok:     false,
			detail: err.Error(),
			fix:    "fix rules.yaml; the gate refuses to run on a malformed ruleset",
		})
	} else {
		checks = append(checks, checkResult{
			label:  "ruleset",
			ok:     true,
			detail: fmt.Sprintf("%d rules, %s", len(rs.Rules), hash),
		})
	}

	// 3. Skill documents cover the categories the rules point at.
	reg, regErr := skills.Load(filepath.Join(configDir, "skills"))
	if regErr != nil {
		checks = append(checks, checkResult{
			label:  "skill documents",
			ok:     false,
			detail: regErr.Error(),
		})
	} else if rs != nil {
		var missing []string
		seen := map[string]bool{}
		for _, r := range rs.Rules {
			name := r.SkillName()
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := reg.Get(name); !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			checks = append(checks, checkResult{
				label:  "skill documents",
				ok:     true,
				detail: fmt.Sprintf("%d found, all categories covered", reg.Len()),
			})
		} else {
			checks = append(checks, checkResult{
				label:  "skill documents",
				ok:     false,
				detail: fmt.Sprintf("no document for: %v", missing),
				fix:    "add the missing skill markdown files under ~/.skillgate/skills/",
			})
		}
	}

	// 4. Decision log chain.
	logPath := hook.DefaultLogPath()
	if _, err := os.Stat(logPath); err == nil {
		result := audit.Verify(logPath)
		if result.Valid {
			checks = append(checks, checkResult{
				label:  "decision log",
				ok:     true,
				detail: fmt.Sprintf("%s (%d entries, chain intact)", logPath, result.Lines),
			})
		} else {
			checks = append(checks, checkResult{
				label:  "decision log",
				ok:     false,
				detail: fmt.Sprintf("chain broken at line %d: %s", result.ErrorLine, result.Error),
			})
		}
	} else {
		checks = append(checks, checkResult{
			label:  "decision log",
			ok:     true,
			detail: "none yet (created on first hook invocation)",
		})
	}

	failed := 0
	for _, c := range checks {
		mark := "ok"
		if !c.ok {
			mark = "FAIL"
			failed++
		}
		fmt.Printf("  [%4s] %-18s %s\n", mark, c.label, c.detail)
		if !c.ok && c.fix != "" {
			fmt.Printf("         fix: %s\n", c.fix)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d check(s) failed.\n", failed)
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed.")
	return nil
}
