package core

import (
	"fmt"
	"os"
)

// InitWorkDir creates the project directory at targetPath. An existing
// path reports ErrDirectoryExists without touching the filesystem, and
// repeating the call against the same path always reports the same error.
func InitWorkDir(targetPath string) error {
	if _, err := os.Stat(targetPath); err == nil {
		return fmt.Errorf("%s: %w", targetPath, ErrDirectoryExists)
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", targetPath, err)
	}
	return nil
}
