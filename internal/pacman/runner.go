package pacman

import (
	"context"
	"os"
	"os/exec"
)

// Runner runs the package manager with args and returns its stdout.
// An *exec.ExitError returned by Run carries the command's stderr.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs a real binary.
type ExecRunner struct {
	Binary string
}

// Run executes the binary under the C locale so field labels are not
// translated.
func (r ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	return cmd.Output()
}
