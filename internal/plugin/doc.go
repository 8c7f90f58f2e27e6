// Package plugin implements the plugin registry and runner. Plugins are
// registered at startup under a name and expose typed capability interfaces:
// a construction hook run once at project-creation time, and a runtime hook
// run on every build/serve invocation. The runner executes an ordered
// descriptor list, threading the accumulated configuration through each hook
// as a value so order-dependence stays explicit.
package plugin
