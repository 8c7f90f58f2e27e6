package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tool identifies a supported package manager executable.
type Tool string

const (
	Npm  Tool = "npm"
	Yarn Tool = "yarn"
)

// ProcessError reports a package-manager invocation that exited non-zero.
type ProcessError struct {
	Tool     Tool
	Args     []string
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s %s exited with code %d", e.Tool, strings.Join(e.Args, " "), e.ExitCode)
}

// Detect returns the package manager for a project directory: yarn when a
// yarn.lock is present, npm otherwise.
func Detect(dir string) Tool {
	if _, err := os.Stat(filepath.Join(dir, "yarn.lock")); err == nil {
		return Yarn
	}
	return Npm
}

// Runner invokes one package manager in one project directory.
type Runner struct {
	Tool Tool
	Dir  string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner builds a Runner for dir, detecting the tool from its lockfile.
func NewRunner(dir string) *Runner {
	return &Runner{Tool: Detect(dir), Dir: dir}
}

// Install runs a full dependency install (`npm install` / `yarn install`).
func (r *Runner) Install(ctx context.Context) error {
	return r.run(ctx, "install")
}

// Add installs a single dependency. The spec is either a registry
// name@version pair (e.g. "react@^17.0.0") or a local filesystem path.
func (r *Runner) Add(ctx context.Context, spec string, dev bool) error {
	var args []string
	switch r.Tool {
	case Yarn:
		args = []string{"add", spec}
		if dev {
			args = append(args, "--dev")
		}
	default:
		args = []string{"install", spec}
		if dev {
			args = append(args, "--save-dev")
		} else {
			args = append(args, "--save")
		}
	}
	return r.run(ctx, args...)
}

// Remove uninstalls a dependency by name.
func (r *Runner) Remove(ctx context.Context, name string) error {
	switch r.Tool {
	case Yarn:
		return r.run(ctx, "remove", name)
	default:
		return r.run(ctx, "uninstall", name)
	}
}

// run spawns the package manager in the project directory, streaming output
// to the configured writers while capturing it for error reporting.
func (r *Runner) run(ctx context.Context, args ...string) error {
	bin, err := exec.LookPath(string(r.Tool))
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", r.Tool, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &captured)
	cmd.Stderr = io.MultiWriter(stderr, &captured)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ProcessError{
				Tool:     r.Tool,
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Output:   captured.String(),
			}
		}
		return fmt.Errorf("running %s %s: %w", r.Tool, strings.Join(args, " "), err)
	}

	return nil
}
