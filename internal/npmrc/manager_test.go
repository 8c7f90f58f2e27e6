package npmrc

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webforge-labs/webforge/internal/merge"
	"github.com/webforge-labs/webforge/internal/pkgmgr"
)

func writePackageJSON(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewManagerMissingFileFails(t *testing.T) {
	dir := t.TempDir()

	_, err := NewManager(dir)
	if err == nil {
		t.Fatal("NewManager succeeded against a missing package.json")
	}
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestNewManagerUnparsableFileFails(t *testing.T) {
	dir := t.TempDir()
	writePackageJSON(t, dir, "{not json")

	_, err := NewManager(dir)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestNewManagerSkeletonFallback(t *testing.T) {
	dir := t.TempDir()
	skeleton := map[string]any{"name": "demo", "version": "0.1.0"}

	m, err := NewManager(dir, WithSkeleton(skeleton))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if m.State() != StateLoaded {
		t.Errorf("State = %v, want %v", m.State(), StateLoaded)
	}
	if got := m.Config()["name"]; got != "demo" {
		t.Errorf("name = %v, want %q", got, "demo")
	}

	// The manager must own a copy, not the caller's map.
	skeleton["name"] = "mutated"
	if got := m.Config()["name"]; got != "demo" {
		t.Errorf("name = %v after caller mutation, want %q", got, "demo")
	}
}

func TestNewManagerLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	writePackageJSON(t, dir, `{"name": "existing", "version": "2.0.0"}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if got := m.Config()["name"]; got != "existing" {
		t.Errorf("name = %v, want %q", got, "existing")
	}
}

func TestMergeIntoCurrentTransitionsToDirty(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{"name": "demo"}))
	if err != nil {
		t.Fatal(err)
	}

	m.MergeIntoCurrent(map[string]any{"version": "1.0.0"}, merge.DefaultOptions())

	if m.State() != StateDirty {
		t.Errorf("State = %v, want %v", m.State(), StateDirty)
	}
	if _, err := os.Stat(filepath.Join(dir, "package.json")); !os.IsNotExist(err) {
		t.Error("MergeIntoCurrent touched disk")
	}
}

func TestDependencyMergeKeepsNewerRange(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{"name": "demo"}))
	if err != nil {
		t.Fatal(err)
	}

	m.MergeIntoCurrent(map[string]any{
		"dependencies": map[string]any{"react": "^17.0.0"},
	}, merge.DefaultOptions())
	m.MergeIntoCurrent(map[string]any{
		"dependencies": map[string]any{"react": "^16.0.0"},
	}, merge.DefaultOptions())

	deps := m.Config()["dependencies"].(map[string]any)
	if deps["react"] != "^17.0.0" {
		t.Errorf("react = %v, want %q", deps["react"], "^17.0.0")
	}
}

func TestConfigPrunesEmptyMappings(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{
		"name":            "demo",
		"devDependencies": map[string]any{},
		"scripts":         map[string]any{"nested": map[string]any{}},
	}))
	if err != nil {
		t.Fatal(err)
	}

	cfg := m.Config()
	if _, ok := cfg["devDependencies"]; ok {
		t.Error("devDependencies survived pruning")
	}
	if _, ok := cfg["scripts"]; ok {
		t.Error("scripts with only an empty nested mapping survived pruning")
	}
	if _, ok := cfg["name"]; !ok {
		t.Error("name was pruned")
	}
}

func TestConfigDoesNotAliasSlices(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{
		"name":     "demo",
		"keywords": []any{"web", "tooling"},
		"workspaces": []any{
			map[string]any{"path": "packages/a"},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}

	cfg := m.Config()
	cfg["keywords"].([]any)[0] = "mutated"
	cfg["workspaces"].([]any)[0].(map[string]any)["path"] = "mutated"

	fresh := m.Config()
	if got := fresh["keywords"].([]any)[0]; got != "web" {
		t.Errorf("keywords[0] = %v, want %q", got, "web")
	}
	if got := fresh["workspaces"].([]any)[0].(map[string]any)["path"]; got != "packages/a" {
		t.Errorf("workspaces[0].path = %v, want %q", got, "packages/a")
	}
}

func TestPersistWritesOrderedJSON(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{
		"zz-custom":    "field",
		"name":         "demo",
		"version":      "1.0.0",
		"dependencies": map[string]any{"react": "^17.0.0"},
	}))
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Persist(); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if m.State() != StatePersisted {
		t.Errorf("State = %v, want %v", m.State(), StatePersisted)
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	nameIdx := strings.Index(text, `"name"`)
	versionIdx := strings.Index(text, `"version"`)
	depsIdx := strings.Index(text, `"dependencies"`)
	customIdx := strings.Index(text, `"zz-custom"`)
	if !(nameIdx < versionIdx && versionIdx < depsIdx && depsIdx < customIdx) {
		t.Errorf("key order wrong:\n%s", text)
	}
	if !strings.Contains(text, "  \"name\"") {
		t.Errorf("output not 2-space indented:\n%s", text)
	}

	// Round-trips as valid JSON.
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("persisted file is not valid JSON: %v", err)
	}
}

func TestPersistFailureWrapsErrIO(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir, WithSkeleton(map[string]any{"name": "demo"}))
	if err != nil {
		t.Fatal(err)
	}

	// Make the target path unwritable by turning it into a directory.
	if err := os.Mkdir(filepath.Join(dir, "package.json"), 0755); err != nil {
		t.Fatal(err)
	}

	err = m.Persist()
	if !errors.Is(err, ErrIO) {
		t.Errorf("err = %v, want ErrIO", err)
	}
}

func TestPackageManagerDetection(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := NewManager(dir, WithSkeleton(map[string]any{"name": "demo"}))
	if err != nil {
		t.Fatal(err)
	}
	if m.PackageManager() != pkgmgr.Yarn {
		t.Errorf("PackageManager = %q, want %q", m.PackageManager(), pkgmgr.Yarn)
	}

	m2, err := NewManager(dir,
		WithSkeleton(map[string]any{"name": "demo"}),
		WithPackageManager(pkgmgr.Npm))
	if err != nil {
		t.Fatal(err)
	}
	if m2.PackageManager() != pkgmgr.Npm {
		t.Errorf("PackageManager override = %q, want %q", m2.PackageManager(), pkgmgr.Npm)
	}
}
