package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/skillgate/internal/skills"
)

var skillsDir string

func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.PersistentFlags().StringVar(&skillsDir, "dir", "", "Skills directory (default: ~/.skillgate/skills)")
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect convention skill documents",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skill documents",
	RunE:  runSkillsList,
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one skill document",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsShow,
}

func defaultSkillsDir() string {
	if skillsDir != "" {
		return skillsDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillgate", "skills")
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	reg, err := skills.Load(defaultSkillsDir())
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		fmt.Println("No skill documents found.")
		return nil
	}
	for _, name := range reg.Names() {
		s, _ := reg.Get(name)
		if s.Description != "" {
			fmt.Printf("  %-28s %s\n", name, s.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func runSkillsShow(cmd *cobra.Command, args []string) error {
	reg, err := skills.Load(defaultSkillsDir())
	if err != nil {
		return err
	}
	s, ok := reg.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown skill: %s", args[0])
	}
	fmt.Println(s.Content)
	return nil
}
