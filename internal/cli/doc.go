// Package cli wires the cobra command tree: create, build, serve, config,
// and version. Commands translate flags into core.Manager calls; errors
// propagate up and terminate the process non-zero.
package cli
