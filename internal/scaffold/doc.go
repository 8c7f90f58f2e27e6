// Package scaffold writes the initial source tree for a new project from
// embedded templates. It powers the "webforge create" command, producing
// the starting files for each service type; package.json is owned by the
// package config manager and is not templated here.
package scaffold
