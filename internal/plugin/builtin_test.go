package plugin

import (
	"strings"
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"babel", "typescript", "eslint", "dev-server"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("built-in plugin %q not registered", name)
		}
	}
}

func TestEslintConstructionWithOverride(t *testing.T) {
	pkg := newTestManager(t)
	r := &Runner{
		Descriptors: []Descriptor{{
			Name:              "eslint",
			OverrideInquiries: map[string]string{"eslint.config": "standard"},
		}},
		In:  strings.NewReader(""),
		Out: &strings.Builder{},
	}

	if _, err := r.RunConstruction(pkg); err != nil {
		t.Fatalf("RunConstruction: %v", err)
	}

	cfg := pkg.Config()
	devDeps := cfg["devDependencies"].(map[string]any)
	if _, ok := devDeps["eslint"]; !ok {
		t.Error("eslint missing from devDependencies")
	}
	if _, ok := devDeps["eslint-config-standard"]; !ok {
		t.Error("chosen ruleset package missing from devDependencies")
	}
	scripts := cfg["scripts"].(map[string]any)
	if _, ok := scripts["lint"]; !ok {
		t.Error("lint script not contributed")
	}
}

func TestDevServerOnlyContributesWhenServing(t *testing.T) {
	r := &Runner{Descriptors: []Descriptor{{Name: "dev-server"}}}

	buildCfg, err := r.RunRuntime(ModeBuild, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := buildCfg["devServer"]; ok {
		t.Error("devServer fragment contributed during build")
	}

	serveCfg, err := r.RunRuntime(ModeServe, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := serveCfg["devServer"]; !ok {
		t.Error("devServer fragment missing during serve")
	}
}
