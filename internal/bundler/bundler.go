package bundler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is the merged bundler configuration handed to the delegate.
type Config = map[string]any

// DevServer is the resolved host/port pair for serve invocations.
type DevServer struct {
	Host string
	Port int
}

const (
	// DefaultHost and DefaultPort apply when neither the user nor any
	// plugin expressed a preference.
	DefaultHost = "localhost"
	DefaultPort = 8080
)

// ResolveDevServer picks the effective host/port. Precedence: explicit user
// values, then plugin-contributed devServer fragment values, then the
// caller's configured defaults, then the built-in defaults.
func ResolveDevServer(user DevServer, cfg Config, defaults DevServer) DevServer {
	out := defaults
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Port == 0 {
		out.Port = DefaultPort
	}

	if fragment, ok := cfg["devServer"].(map[string]any); ok {
		if h, ok := fragment["host"].(string); ok && h != "" {
			out.Host = h
		}
		if p, ok := asInt(fragment["port"]); ok && p != 0 {
			out.Port = p
		}
	}

	if user.Host != "" {
		out.Host = user.Host
	}
	if user.Port != 0 {
		out.Port = user.Port
	}

	return out
}

// asInt normalizes the numeric types a merged fragment can carry for a port.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// Invocation carries everything the delegate needs for one build or serve.
type Invocation struct {
	Dir       string
	Config    Config
	DevServer DevServer
}

// Delegate hands the merged configuration to an external build/serve tool.
type Delegate interface {
	Build(ctx context.Context, inv Invocation) error
	Serve(ctx context.Context, inv Invocation) error
}

// ProcessDelegate writes the merged configuration to
// .webforge/bundler.config.json and spawns the configured bundler command
// in the project directory.
type ProcessDelegate struct {
	// Command is the bundler executable, e.g. "webpack".
	Command string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

const configFileName = "bundler.config.json"

// Build writes the config file and runs `<command> build`.
func (d *ProcessDelegate) Build(ctx context.Context, inv Invocation) error {
	path, err := writeConfig(inv.Dir, inv.Config)
	if err != nil {
		return err
	}
	return d.run(ctx, inv.Dir, "build", "--config", path)
}

// Serve writes the config file and runs `<command> serve` with the resolved
// host/port.
func (d *ProcessDelegate) Serve(ctx context.Context, inv Invocation) error {
	path, err := writeConfig(inv.Dir, inv.Config)
	if err != nil {
		return err
	}
	return d.run(ctx, inv.Dir, "serve", "--config", path,
		"--host", inv.DevServer.Host,
		"--port", strconv.Itoa(inv.DevServer.Port))
}

// writeConfig serializes the merged configuration under .webforge/ and
// returns the file path.
func writeConfig(dir string, cfg Config) (string, error) {
	sub := filepath.Join(dir, ".webforge")
	if err := os.MkdirAll(sub, 0755); err != nil {
		return "", fmt.Errorf("creating .webforge directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding bundler config: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(sub, configFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing bundler config: %w", err)
	}
	return path, nil
}

func (d *ProcessDelegate) run(ctx context.Context, dir string, args ...string) error {
	bin, err := exec.LookPath(d.Command)
	if err != nil {
		return fmt.Errorf("bundler %q not found on PATH: %w", d.Command, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := d.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := d.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &captured)
	cmd.Stderr = io.MultiWriter(stderr, &captured)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s %s: %w", d.Command, strings.Join(args, " "), err)
	}
	return nil
}

// NopDelegate records invocations without spawning anything. Used in tests
// and dry runs.
type NopDelegate struct {
	Built  []Invocation
	Served []Invocation
}

func (d *NopDelegate) Build(ctx context.Context, inv Invocation) error {
	d.Built = append(d.Built, inv)
	return nil
}

func (d *NopDelegate) Serve(ctx context.Context, inv Invocation) error {
	d.Served = append(d.Served, inv)
	return nil
}
