// Package project owns the per-project descriptor file at
// .webforge/project.yaml: the project's service type, its ordered plugin
// list, and dev-server preferences. Descriptors are validated against an
// embedded JSON schema before the plugin runner consumes them.
package project
