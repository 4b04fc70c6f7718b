// skillgate is a pre-action policy gate for agent file edits.
// Denies file-modifying tool calls until the relevant convention skill
// has been loaded in the session.
package main

import "github.com/ppiankov/skillgate/internal/cli"

func main() {
	cli.Execute()
}
