package plugin

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrPluginLoad indicates a descriptor could not be resolved to a
	// registered plugin, or its factory failed.
	ErrPluginLoad = errors.New("plugin load failed")

	// ErrPluginExecution indicates a plugin hook returned an error.
	ErrPluginExecution = errors.New("plugin execution failed")
)

// Plugin is the minimal identity every plugin carries. Capabilities are
// declared by additionally implementing ConstructionHook and/or RuntimeHook.
type Plugin interface {
	Name() string
}

// ConstructionHook is implemented by plugins that contribute package.json
// fragments (and may ask the user questions) during project creation.
type ConstructionHook interface {
	OnConstruct(ctx *ConstructContext) error
}

// RuntimeHook is implemented by plugins that contribute bundler-config
// fragments on every build/serve invocation.
type RuntimeHook interface {
	OnRun(ctx *RunContext) error
}

// Factory builds a plugin instance from its per-descriptor options.
type Factory func(options map[string]any) (Plugin, error)

// registry maps plugin names to factories. Populated at startup via
// Register; never mutated afterwards.
var registry = map[string]Factory{}

// Register adds a plugin factory under a name. It panics on duplicates,
// which only happens through a programming error in an init function.
func Register(name string, factory Factory) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("plugin %q registered twice", name))
	}
	registry[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns all registered plugin names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor is one entry in a project's ordered plugin list.
type Descriptor struct {
	Name                    string            `yaml:"name" json:"name"`
	Path                    string            `yaml:"path,omitempty" json:"path,omitempty"`
	Options                 map[string]any    `yaml:"options,omitempty" json:"options,omitempty"`
	OverrideInquiries       map[string]string `yaml:"overrideInquiries,omitempty" json:"overrideInquiries,omitempty"`
	RemoveAfterConstruction bool              `yaml:"removeAfterConstruction,omitempty" json:"removeAfterConstruction,omitempty"`
}

// resolve turns a descriptor into a live plugin instance.
func resolve(d Descriptor) (Plugin, error) {
	factory, ok := Lookup(d.Name)
	if !ok {
		return nil, fmt.Errorf("resolving plugin %q: %w", d.Name, ErrPluginLoad)
	}

	p, err := factory(d.Options)
	if err != nil {
		return nil, fmt.Errorf("constructing plugin %q: %v: %w", d.Name, err, ErrPluginLoad)
	}
	return p, nil
}
