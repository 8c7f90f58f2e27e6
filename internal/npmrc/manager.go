package npmrc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/webforge-labs/webforge/internal/merge"
	"github.com/webforge-labs/webforge/internal/pkgmgr"
)

const fileName = "package.json"

var (
	// ErrConfigNotFound indicates the package.json is missing or unparsable
	// and no default skeleton was supplied. Fatal: the caller must abort
	// project creation.
	ErrConfigNotFound = errors.New("package config not found")

	// ErrIO indicates a package.json write failure.
	ErrIO = errors.New("package config write failed")
)

// State tracks the manager's position in its lifecycle.
type State int

const (
	StateLoaded State = iota
	StateDirty
	StatePersisted
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateDirty:
		return "dirty"
	case StatePersisted:
		return "persisted"
	default:
		return "unknown"
	}
}

// Manager holds one project's package.json document in memory. Exactly one
// Manager owns the document per CLI invocation; there is no cross-instance
// sharing.
type Manager struct {
	dir    string
	config map[string]any
	state  State
	runner *pkgmgr.Runner
}

// ManagerOption configures Manager construction.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	skeleton map[string]any
	tool     pkgmgr.Tool
	stdout   io.Writer
	stderr   io.Writer
}

// WithSkeleton supplies a default document used when no package.json exists
// on disk yet (the project-creation path).
func WithSkeleton(skeleton map[string]any) ManagerOption {
	return func(o *managerOptions) { o.skeleton = skeleton }
}

// WithPackageManager overrides lockfile-based package manager detection.
func WithPackageManager(tool pkgmgr.Tool) ManagerOption {
	return func(o *managerOptions) { o.tool = tool }
}

// WithOutput directs subprocess output to the given writers.
func WithOutput(stdout, stderr io.Writer) ManagerOption {
	return func(o *managerOptions) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// NewManager loads <dir>/package.json. A missing or unparsable file is an
// ErrConfigNotFound failure unless a skeleton was supplied, in which case
// the manager starts from a copy of the skeleton.
func NewManager(dir string, opts ...ManagerOption) (*Manager, error) {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := readConfig(filepath.Join(dir, fileName))
	if err != nil {
		if o.skeleton == nil {
			return nil, err
		}
		cfg = merge.Merge(nil, o.skeleton, merge.Options{Merge: true, IgnoreNull: false})
	}

	tool := o.tool
	if tool == "" {
		tool = pkgmgr.Detect(dir)
	}

	return &Manager{
		dir:    dir,
		config: cfg,
		state:  StateLoaded,
		runner: &pkgmgr.Runner{Tool: tool, Dir: dir, Stdout: o.stdout, Stderr: o.stderr},
	}, nil
}

func readConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, ErrConfigNotFound)
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrConfigNotFound)
	}
	return cfg, nil
}

// Dir returns the project directory the manager was constructed against.
func (m *Manager) Dir() string { return m.dir }

// Path returns the package.json location.
func (m *Manager) Path() string { return filepath.Join(m.dir, fileName) }

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// PackageManager returns the detected (or overridden) package manager tool.
func (m *Manager) PackageManager() pkgmgr.Tool { return m.runner.Tool }

// MergeIntoCurrent folds a fragment into the document under the given merge
// options. Memory-only: disk is untouched until Persist.
func (m *Manager) MergeIntoCurrent(fragment map[string]any, opts merge.Options) {
	m.config = merge.Merge(m.config, fragment, opts)
	m.state = StateDirty
}

// Config returns a copy of the document with empty-mapping values pruned.
// Pure: the manager's state is unchanged.
func (m *Manager) Config() map[string]any {
	return pruneEmpty(m.config)
}

// Persist writes the document to package.json with 2-space indentation and
// conventionally ordered keys. A write failure wraps ErrIO and is surfaced
// to the caller, not retried.
func (m *Manager) Persist() error {
	data, err := m.MarshalConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(m.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %v: %w", m.Path(), err, ErrIO)
	}

	m.state = StatePersisted
	return nil
}

// InstallDependencies runs a full install in the project directory.
func (m *Manager) InstallDependencies(ctx context.Context) error {
	return m.runner.Install(ctx)
}

// AddOptions describes a single dependency to install: either a registry
// name (optionally with a version range) or a local filesystem path.
type AddOptions struct {
	Name      string
	Version   string
	LocalPath string
	Dev       bool
}

// AddDependency installs one dependency via the package manager.
func (m *Manager) AddDependency(ctx context.Context, opts AddOptions) error {
	spec := opts.LocalPath
	if spec == "" {
		spec = opts.Name
		if opts.Version != "" {
			spec = opts.Name + "@" + opts.Version
		}
	}
	if spec == "" {
		return fmt.Errorf("add dependency: no name or local path given")
	}
	return m.runner.Add(ctx, spec, opts.Dev)
}

// RemoveDependency uninstalls one dependency by name.
func (m *Manager) RemoveDependency(ctx context.Context, name string) error {
	return m.runner.Remove(ctx, name)
}

// pruneEmpty deep-copies a document, removing keys whose value is an empty
// mapping (including mappings that become empty after pruning).
func pruneEmpty(cfg map[string]any) map[string]any {
	out := make(map[string]any, len(cfg))
	for k, v := range cfg {
		switch t := v.(type) {
		case map[string]any:
			nested := pruneEmpty(t)
			if len(nested) == 0 {
				continue
			}
			out[k] = nested
		case map[string]string:
			if len(t) == 0 {
				continue
			}
			nested := make(map[string]any, len(t))
			for name, val := range t {
				nested[name] = val
			}
			out[k] = nested
		default:
			out[k] = copyTree(v)
		}
	}
	return out
}

// copyTree deep-copies slice and mapping values so the returned document
// never aliases the manager's own. Elements inside arrays are copied
// without pruning: only mapping-valued keys are subject to empty-map
// removal.
func copyTree(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyTree(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyTree(e)
		}
		return out
	default:
		return v
	}
}
