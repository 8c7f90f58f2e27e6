package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/webforge-labs/webforge/internal/bundler"
	"github.com/webforge-labs/webforge/internal/npmrc"
	"github.com/webforge-labs/webforge/internal/pkgmgr"
	"github.com/webforge-labs/webforge/internal/plugin"
	"github.com/webforge-labs/webforge/internal/project"
	"github.com/webforge-labs/webforge/internal/scaffold"
)

// Manager drives one CLI invocation. Configuration arrives through its
// fields rather than ambient lookup; the CLI layer builds it once from the
// user's settings.
type Manager struct {
	// PackageManager overrides lockfile detection when non-empty.
	PackageManager pkgmgr.Tool

	// DevServer supplies the user's configured host/port defaults.
	DevServer bundler.DevServer

	// Delegate receives the merged bundler configuration for build/serve.
	Delegate bundler.Delegate

	// In, Out, Err back interactive inquiries and subprocess output.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (m *Manager) in() io.Reader {
	if m.In == nil {
		return os.Stdin
	}
	return m.In
}

func (m *Manager) out() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

func (m *Manager) errOut() io.Writer {
	if m.Err == nil {
		return os.Stderr
	}
	return m.Err
}

// CreateOptions configures project creation.
type CreateOptions struct {
	// Type selects the service (project type); required.
	Type string

	// Dir is the target directory; defaults to ./<name>.
	Dir string

	// Plugins are appended after the service's default plugin list, so
	// their fragments merge later and can override the defaults.
	Plugins []plugin.Descriptor

	// Answers force inquiry answers across all plugins (question key →
	// answer). Per-descriptor overrideInquiries win over these.
	Answers map[string]string

	// SkipInstall leaves dependency installation to the user.
	SkipInstall bool
}

// Create makes a new project: service resolution, working directory,
// scaffolding, plugin construction pass, package.json persistence, project
// descriptor, dependency install — in that order, stopping at the first
// failure. The service is resolved before any filesystem mutation.
func (m *Manager) Create(ctx context.Context, name string, opts CreateOptions) error {
	svc, err := LookupService(opts.Type)
	if err != nil {
		return err
	}

	target := opts.Dir
	if target == "" {
		target = filepath.Join(".", name)
	}

	if err := InitWorkDir(target); err != nil {
		return err
	}

	if _, err := scaffold.Generate(svc.Name, scaffold.NewData(name, svc.Name), target); err != nil {
		return fmt.Errorf("scaffolding project: %w", err)
	}

	pkgOpts := []npmrc.ManagerOption{
		npmrc.WithSkeleton(svc.Skeleton(name)),
		npmrc.WithOutput(m.out(), m.errOut()),
	}
	if m.PackageManager != "" {
		pkgOpts = append(pkgOpts, npmrc.WithPackageManager(m.PackageManager))
	}
	pkg, err := npmrc.NewManager(target, pkgOpts...)
	if err != nil {
		return err
	}

	descriptors := applyAnswers(append(svc.Plugins, opts.Plugins...), opts.Answers)
	runner := &plugin.Runner{Descriptors: descriptors, In: m.in(), Out: m.out()}

	remaining, err := runner.RunConstruction(pkg)
	if err != nil {
		return err
	}

	if err := pkg.Persist(); err != nil {
		return err
	}

	if err := project.Save(target, &project.Config{
		Name:    name,
		Service: svc.Name,
		Plugins: remaining,
	}); err != nil {
		return err
	}

	if opts.SkipInstall {
		return nil
	}
	return pkg.InstallDependencies(ctx)
}

// Build runs the runtime pass for a project and hands the merged bundler
// configuration to the delegate.
func (m *Manager) Build(ctx context.Context, dir string) error {
	cfg, merged, err := m.runRuntime(dir, plugin.ModeBuild)
	if err != nil {
		return err
	}

	return m.Delegate.Build(ctx, bundler.Invocation{
		Dir:       dir,
		Config:    merged,
		DevServer: m.resolveDevServer(bundler.DevServer{}, cfg, merged),
	})
}

// Serve runs the runtime pass and starts the dev-server delegate. Host and
// port layer as: command line, then the project descriptor, then plugin
// fragments, then configured defaults.
func (m *Manager) Serve(ctx context.Context, dir, host string, port int) error {
	cfg, merged, err := m.runRuntime(dir, plugin.ModeServe)
	if err != nil {
		return err
	}

	return m.Delegate.Serve(ctx, bundler.Invocation{
		Dir:       dir,
		Config:    merged,
		DevServer: m.resolveDevServer(bundler.DevServer{Host: host, Port: port}, cfg, merged),
	})
}

// runRuntime loads the project descriptor and executes the plugin runtime
// pass, returning the descriptor and the merged bundler configuration.
func (m *Manager) runRuntime(dir string, mode plugin.Mode) (*project.Config, map[string]any, error) {
	cfg, err := project.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	runner := &plugin.Runner{Descriptors: cfg.Plugins, In: m.in(), Out: m.out()}
	merged, err := runner.RunRuntime(mode, nil)
	if err != nil {
		return nil, nil, err
	}

	return cfg, merged, nil
}

// resolveDevServer layers the host/port sources: command line, project
// descriptor, plugin fragments, configured defaults, built-in defaults.
// The configured defaults only fill values no plugin fragment supplied.
func (m *Manager) resolveDevServer(flags bundler.DevServer, cfg *project.Config, merged map[string]any) bundler.DevServer {
	user := flags
	if user.Host == "" {
		user.Host = cfg.DevServer.Host
	}
	if user.Port == 0 {
		user.Port = cfg.DevServer.Port
	}
	return bundler.ResolveDevServer(user, merged, m.DevServer)
}

// applyAnswers layers global forced answers under each descriptor's own
// overrideInquiries.
func applyAnswers(descriptors []plugin.Descriptor, answers map[string]string) []plugin.Descriptor {
	if len(answers) == 0 {
		return descriptors
	}

	out := make([]plugin.Descriptor, len(descriptors))
	for i, d := range descriptors {
		merged := make(map[string]string, len(answers)+len(d.OverrideInquiries))
		for k, v := range answers {
			merged[k] = v
		}
		for k, v := range d.OverrideInquiries {
			merged[k] = v
		}
		d.OverrideInquiries = merged
		out[i] = d
	}
	return out
}
