package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateApp(t *testing.T) {
	dir := t.TempDir()
	data := NewData("my-app", "app")

	result, err := Generate("app", data, dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, name := range []string{"index.html", "main.js", "README.md", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected file %s missing: %v", name, err)
		}
	}
	if len(result.Files) != 4 {
		t.Errorf("len(Files) = %d, want 4", len(result.Files))
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<title>my-app</title>") {
		t.Errorf("index.html not templated:\n%s", html)
	}
}

func TestGenerateUnknownService(t *testing.T) {
	_, err := Generate("spaceship", NewData("x", "spaceship"), t.TempDir())
	if err == nil {
		t.Fatal("Generate accepted an unknown template set")
	}
}

func TestGenerateRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate("app", NewData("my-app", "app"), dir)
	if err == nil {
		t.Fatal("Generate overwrote a non-empty directory")
	}
}
