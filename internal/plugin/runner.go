package plugin

import (
	"fmt"
	"io"

	"github.com/webforge-labs/webforge/internal/merge"
	"github.com/webforge-labs/webforge/internal/npmrc"
)

// Mode identifies which delegated operation a runtime pass serves.
type Mode string

const (
	ModeBuild Mode = "build"
	ModeServe Mode = "serve"
)

// ConstructContext is handed to construction hooks. It exposes the
// package.json merge surface and the inquiry engine for the plugin being
// executed.
type ConstructContext struct {
	pkg      *npmrc.Manager
	inquirer *Inquirer
	options  map[string]any
}

// MergePackageConfig folds a package.json fragment into the current
// document under default merge options.
func (c *ConstructContext) MergePackageConfig(fragment map[string]any) {
	c.pkg.MergeIntoCurrent(fragment, merge.DefaultOptions())
}

// Inquire puts a question to the user, honoring the descriptor's
// overrideInquiries.
func (c *ConstructContext) Inquire(q Question) (string, error) {
	return c.inquirer.Ask(q)
}

// Options returns the descriptor's per-plugin options. May be nil.
func (c *ConstructContext) Options() map[string]any {
	return c.options
}

// RunContext is handed to runtime hooks. The accumulated bundler
// configuration is threaded through it as a value: each MergeConfig call
// produces a new accumulated map rather than mutating a shared object.
type RunContext struct {
	mode    Mode
	config  map[string]any
	options map[string]any
}

// MergeConfig folds a bundler-config fragment into the accumulation.
func (c *RunContext) MergeConfig(fragment map[string]any) {
	c.config = merge.Merge(c.config, fragment, merge.DefaultOptions())
}

// Config returns the accumulated bundler configuration.
func (c *RunContext) Config() map[string]any {
	return c.config
}

// Mode reports whether the pass serves a build or a serve invocation.
func (c *RunContext) Mode() Mode {
	return c.mode
}

// Options returns the descriptor's per-plugin options. May be nil.
func (c *RunContext) Options() map[string]any {
	return c.options
}

// Runner executes an ordered descriptor list. Later plugins merge after
// earlier ones and can override their contributions.
type Runner struct {
	Descriptors []Descriptor

	// In and Out back the inquiry engine during the construction pass.
	In  io.Reader
	Out io.Writer
}

// RunConstruction executes the construction pass against pkg: each
// descriptor is resolved and, when the plugin implements ConstructionHook,
// its hook is invoked. A resolution or hook failure stops the pass
// immediately; fragments already merged by earlier plugins stay applied
// (partial application is an accepted limitation, not silently recovered).
//
// The returned slice holds the descriptors that should take part in future
// runtime passes, with removeAfterConstruction entries dropped.
func (r *Runner) RunConstruction(pkg *npmrc.Manager) ([]Descriptor, error) {
	remaining := make([]Descriptor, 0, len(r.Descriptors))

	for _, d := range r.Descriptors {
		p, err := resolve(d)
		if err != nil {
			return nil, err
		}

		if hook, ok := p.(ConstructionHook); ok {
			ctx := &ConstructContext{
				pkg:      pkg,
				inquirer: NewInquirer(r.In, r.Out, d.OverrideInquiries),
				options:  d.Options,
			}
			if err := hook.OnConstruct(ctx); err != nil {
				return nil, fmt.Errorf("plugin %q construction hook: %v: %w", d.Name, err, ErrPluginExecution)
			}
		}

		if !d.RemoveAfterConstruction {
			remaining = append(remaining, d)
		}
	}

	return remaining, nil
}

// RunRuntime executes the runtime pass, folding each plugin's
// bundler-config fragments into base. Base is not mutated; the accumulated
// configuration is returned. The error policy matches RunConstruction.
func (r *Runner) RunRuntime(mode Mode, base map[string]any) (map[string]any, error) {
	acc := merge.Merge(nil, base, merge.Options{Merge: true, IgnoreNull: false})

	for _, d := range r.Descriptors {
		p, err := resolve(d)
		if err != nil {
			return nil, err
		}

		hook, ok := p.(RuntimeHook)
		if !ok {
			continue
		}

		ctx := &RunContext{mode: mode, config: acc, options: d.Options}
		if err := hook.OnRun(ctx); err != nil {
			return nil, fmt.Errorf("plugin %q runtime hook: %v: %w", d.Name, err, ErrPluginExecution)
		}
		acc = ctx.config
	}

	return acc, nil
}
