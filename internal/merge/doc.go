// Package merge implements the configuration merge engine: a generic deep
// merge for map-shaped fragments plus a semver-aware reconciliation rule for
// dependency maps. It is the single place where plugin-contributed
// package.json and bundler-config fragments are folded into an aggregate.
package merge
