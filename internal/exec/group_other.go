//go:build !unix

package exec

import "os/exec"

// Process groups are unix-only; cancellation kills the direct child.
func setProcessGroup(*exec.Cmd) {}
