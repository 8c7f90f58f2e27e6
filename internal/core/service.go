package core

import (
	"fmt"
	"sort"

	"github.com/webforge-labs/webforge/internal/plugin"
)

// Service describes one project type: the package.json skeleton it starts
// from and the plugins it pulls in by default.
type Service struct {
	Name        string
	Description string
	Skeleton    func(projectName string) map[string]any
	Plugins     []plugin.Descriptor
}

var services = map[string]Service{
	"app": {
		Name:        "app",
		Description: "A browser application bundled for the web",
		Skeleton: func(projectName string) map[string]any {
			return map[string]any{
				"name":    projectName,
				"version": "0.1.0",
				"private": true,
				"scripts": map[string]any{
					"build": "webforge build",
					"serve": "webforge serve",
				},
				"dependencies":    map[string]any{},
				"devDependencies": map[string]any{},
			}
		},
		Plugins: []plugin.Descriptor{
			{Name: "babel"},
			{Name: "dev-server"},
		},
	},
	"lib": {
		Name:        "lib",
		Description: "A publishable library package",
		Skeleton: func(projectName string) map[string]any {
			return map[string]any{
				"name":    projectName,
				"version": "0.1.0",
				"main":    "dist/index.js",
				"scripts": map[string]any{
					"build": "webforge build",
				},
				"dependencies":    map[string]any{},
				"devDependencies": map[string]any{},
			}
		},
		Plugins: []plugin.Descriptor{
			{Name: "babel"},
		},
	},
}

// LookupService resolves a project type to its service definition.
func LookupService(name string) (Service, error) {
	svc, ok := services[name]
	if !ok {
		return Service{}, fmt.Errorf("project type %q: %w", name, ErrServiceNotFound)
	}
	return svc, nil
}

// ServiceNames returns the registered project types, sorted.
func ServiceNames() []string {
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
