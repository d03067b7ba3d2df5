// Command devshell is an interactive shell with smart git commits.
package main

import (
	"os"

	"github.com/swaswa-core/dev-shell/internal/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
