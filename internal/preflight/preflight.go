// Package preflight verifies deployment preconditions: the external CLI is
// installed, the project files Railway needs are present, and the user holds
// an authenticated session.
package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
)

// MissingCLIError reports that the external CLI binary is not on PATH.
type MissingCLIError struct {
	Binary string
}

func (e *MissingCLIError) Error() string {
	return fmt.Sprintf("%s CLI is not installed (install it with: npm i -g @railway/cli)", e.Binary)
}

// MissingFileError names the first required project file that is absent.
type MissingFileError struct {
	Name string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file is missing: %s", e.Name)
}

// Checker validates the local environment before any deployment action.
type Checker struct {
	Binary        string
	RequiredFiles []string
	Dir           string

	// Installed is swapped out in tests. Defaults to railway.Installed.
	Installed func(binary string) bool
}

// NewChecker builds a checker for the given CLI binary and file list, rooted
// at the current working directory.
func NewChecker(binary string, requiredFiles []string) *Checker {
	return &Checker{
		Binary:        binary,
		RequiredFiles: requiredFiles,
		Dir:           ".",
		Installed:     railway.Installed,
	}
}

// Check confirms the CLI binary resolves and every required file exists.
// It performs no external CLI invocation, so a failure here is reported
// before anything touches the network.
func (c *Checker) Check() error {
	installed := c.Installed
	if installed == nil {
		installed = railway.Installed
	}

	if !installed(c.Binary) {
		return &MissingCLIError{Binary: c.Binary}
	}

	for _, name := range c.RequiredFiles {
		if _, err := os.Stat(filepath.Join(c.Dir, name)); err != nil {
			return &MissingFileError{Name: name}
		}
	}

	return nil
}

// EnsureAuthenticated queries the CLI's identity command and, when the
// session is missing, transparently runs the interactive login flow.
func EnsureAuthenticated(ctx context.Context, client *railway.Client) error {
	identity, err := client.WhoAmI(ctx)
	if err == nil {
		term.Success("Logged in as %s", identity)
		return nil
	}

	term.Warn("Not logged in to Railway, starting login flow")
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("railway login failed: %w", err)
	}

	return nil
}
