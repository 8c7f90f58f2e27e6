// Package bundler models the handoff to the external bundler/dev-server:
// the merged bundler configuration, the resolved host/port pair, and the
// delegate that actually spawns the tool. The bundler itself is an external
// collaborator; this package only prepares and delivers its input.
package bundler
