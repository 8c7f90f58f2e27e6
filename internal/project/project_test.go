package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/webforge-labs/webforge/internal/plugin"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Name:    "demo",
		Service: "app",
		Plugins: []plugin.Descriptor{
			{Name: "babel"},
			{
				Name:              "eslint",
				OverrideInquiries: map[string]string{"eslint.config": "standard"},
			},
			{Name: "init-git", RemoveAfterConstruction: true},
		},
		DevServer: DevServer{Host: "0.0.0.0", Port: 3000},
	}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Name != "demo" || loaded.Service != "app" {
		t.Errorf("loaded = %+v, want name/service round-tripped", loaded)
	}
	if len(loaded.Plugins) != 3 {
		t.Fatalf("len(Plugins) = %d, want 3", len(loaded.Plugins))
	}
	if loaded.Plugins[1].OverrideInquiries["eslint.config"] != "standard" {
		t.Error("overrideInquiries lost in round trip")
	}
	if !loaded.Plugins[2].RemoveAfterConstruction {
		t.Error("removeAfterConstruction lost in round trip")
	}
	if loaded.DevServer.Host != "0.0.0.0" || loaded.DevServer.Port != 3000 {
		t.Errorf("DevServer = %+v, want host/port round-tripped", loaded.DevServer)
	}

	// Plugin order must be preserved: it determines merge precedence.
	for i, want := range []string{"babel", "eslint", "init-git"} {
		if loaded.Plugins[i].Name != want {
			t.Errorf("Plugins[%d] = %q, want %q", i, loaded.Plugins[i].Name, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load succeeded against a missing project.yaml")
	}
}

func TestLoadRejectsInvalidDescriptor(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".webforge"), 0755); err != nil {
		t.Fatal(err)
	}
	// Missing required "service" field.
	bad := "name: demo\nplugins:\n  - name: babel\n"
	if err := os.WriteFile(ConfigPath(dir), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted a descriptor missing required fields")
	}
}

func TestValidateReportsIssuePaths(t *testing.T) {
	data := []byte("name: demo\nservice: app\nplugins:\n  - path: ./local\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("descriptor with a nameless plugin validated")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/plugins/0" {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %+v, want one at /plugins/0", result.Issues)
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	data := []byte("name: demo\nservice: app\nplugins:\n  - path: ./local\ndevServer:\n  port: 123456\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("descriptor with two problems validated")
	}

	paths := make(map[string]bool)
	for _, issue := range result.Issues {
		paths[issue.Path] = true
		if issue.Message == "" {
			t.Errorf("issue at %q has no message", issue.Path)
		}
	}
	for _, want := range []string{"/plugins/0", "/devServer/port"} {
		if !paths[want] {
			t.Errorf("paths = %v, want one at %q", paths, want)
		}
	}
}

func TestValidateAcceptsMinimalDescriptor(t *testing.T) {
	result, err := Validate([]byte("name: demo\nservice: lib\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("minimal descriptor rejected: %+v", result.Issues)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	result, err := Validate([]byte("name: demo\nservice: app\ndevServer:\n  port: 123456\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Error("out-of-range port validated")
	}
}
