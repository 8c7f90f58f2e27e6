package core

import "errors"

var (
	// ErrDirectoryExists indicates the target project directory already
	// exists. Nothing is created or modified when it is reported.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrServiceNotFound indicates the requested project type has no
	// registered service.
	ErrServiceNotFound = errors.New("service not found")
)
