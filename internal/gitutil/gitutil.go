// Package gitutil records written configuration files in the git work tree
// that contains them, etckeeper style.
package gitutil

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
)

// ErrNotRepository is returned when a file is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, dir, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using exec.CommandContext.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, dir, name string, arg ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

var runner CommandRunner = DefaultRunner{}

// SetRunner replaces the command runner, for tests.
func SetRunner(r CommandRunner) {
	runner = r
}

func git(ctx context.Context, dir string, arg ...string) (string, error) {
	out, err := runner.CombinedOutput(ctx, dir, "git", arg...)
	text := strings.TrimSpace(string(out))
	if strings.Contains(strings.ToLower(text), "not a git repository") {
		return "", oops.With("dir", dir).Wrapf(ErrNotRepository, "%s", text)
	}
	if err != nil {
		return "", oops.With("dir", dir, "output", text).Wrapf(err, "git %s failed", arg[0])
	}
	return text, nil
}

// TopLevel returns the root of the work tree containing path.
func TopLevel(ctx context.Context, path string) (string, error) {
	return git(ctx, filepath.Dir(path), "rev-parse", "--show-toplevel")
}

// CommitFile stages path and commits it alone with message. It returns the
// abbreviated hash of the new commit.
func CommitFile(ctx context.Context, path, message string) (string, error) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if _, err := git(ctx, dir, "add", "--", name); err != nil {
		return "", err
	}
	if _, err := git(ctx, dir, "commit", "-m", message, "--", name); err != nil {
		return "", err
	}
	return git(ctx, dir, "rev-parse", "--short", "HEAD")
}
