package gate

import "fmt"

// Remediation builds the deny message for a category. The sequence is
// part of the contract: acknowledge, re-read, reconsider, then act. A
// blind immediate retry would hit the same gate.
func Remediation(category, skill string) string {
	return fmt.Sprintf(
		"Edits to %s files are gated until the %q skill has been loaded in this session.\n"+
			"Do not simply retry the edit. Instead:\n"+
			"  1. Load the skill: invoke the Skill tool with %q\n"+
			"  2. Re-read the conventions it describes\n"+
			"  3. Reconsider your planned change against those conventions\n"+
			"  4. Then retry the edit",
		category, skill, skill)
}
