package pacman

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBackend is matched by every CommandError.
var ErrBackend = errors.New("package backend failed")

// CommandError reports a pacman invocation that could not run, exited
// non-zero, or printed output that is not valid UTF-8.
type CommandError struct {
	Op      string // e.g. "pacman -Qi"
	Package string // empty for listing
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	op := e.Op
	if e.Package != "" {
		op = op + " " + e.Package
	}
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		return fmt.Sprintf("%s failed: %v (stderr: %s)", op, e.Err, stderr)
	}
	return fmt.Sprintf("%s failed: %v", op, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrBackend.
func (e *CommandError) Is(target error) bool {
	return target == ErrBackend
}
