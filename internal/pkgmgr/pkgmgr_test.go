package pkgmgr

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectDefaultsToNpm(t *testing.T) {
	dir := t.TempDir()

	if got := Detect(dir); got != Npm {
		t.Errorf("Detect = %q, want %q", got, Npm)
	}
}

func TestDetectYarnFromLockfile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	if got := Detect(dir); got != Yarn {
		t.Errorf("Detect = %q, want %q", got, Yarn)
	}
}

func TestProcessErrorMessage(t *testing.T) {
	err := &ProcessError{
		Tool:     Npm,
		Args:     []string{"install", "react@^17.0.0", "--save"},
		ExitCode: 1,
		Output:   "ERR! network timeout",
	}

	want := "npm install react@^17.0.0 --save exited with code 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Output != "ERR! network timeout" {
		t.Errorf("Output = %q, want captured output preserved", err.Output)
	}
}
