// Package pacman queries the local pacman database for installed packages
// and their metadata.
package pacman

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultBinary is the package manager executable.
	DefaultBinary = "pacman"
	// DefaultLocalDB is where pacman keeps one directory per installed package.
	DefaultLocalDB = "/var/lib/pacman/local"
	// DefaultLockFile exists while pacman is running a transaction.
	DefaultLockFile = "/var/lib/pacman/db.lck"

	listFlags         = "-Qq"
	listExplicitFlags = "-Qqe"
	infoFlags         = "-Qi"
)

// Client lists installed packages and fetches their `-Qi` metadata.
type Client struct {
	runner   Runner
	localDB  string
	lockFile string
}

// NewClient returns a Client that shells out to pacman.
func NewClient() *Client {
	return NewClientWithRunner(ExecRunner{Binary: DefaultBinary})
}

// NewClientWithRunner returns a Client backed by r.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r, localDB: DefaultLocalDB, lockFile: DefaultLockFile}
}

// LocalDBPath returns the directory that changes whenever a package is
// installed, upgraded or removed.
func (c *Client) LocalDBPath() string {
	return c.localDB
}

// LockPath returns the file pacman holds while modifying its database.
func (c *Client) LockPath() string {
	return c.lockFile
}

// ListPackages returns the names of installed packages in pacman's order.
// With explicit set, only explicitly installed packages are returned.
func (c *Client) ListPackages(ctx context.Context, explicit bool) ([]string, error) {
	flags := listFlags
	if explicit {
		flags = listExplicitFlags
	}

	output, err := c.run(ctx, flags, "")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// FetchMetadata returns the `pacman -Qi` text for one installed package.
func (c *Client) FetchMetadata(ctx context.Context, name string) (string, error) {
	return c.run(ctx, infoFlags, name)
}

func (c *Client) run(ctx context.Context, flags, pkg string) (string, error) {
	args := []string{flags}
	if pkg != "" {
		args = append(args, pkg)
	}
	op := DefaultBinary + " " + flags

	output, err := c.runner.Run(ctx, args...)
	if err != nil {
		cerr := &CommandError{Op: op, Package: pkg, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.Stderr = string(exitErr.Stderr)
		}
		return "", cerr
	}

	if !utf8.Valid(output) {
		return "", &CommandError{Op: op, Package: pkg, Err: fmt.Errorf("output is not valid UTF-8")}
	}
	return string(output), nil
}
