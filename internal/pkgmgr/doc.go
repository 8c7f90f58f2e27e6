// Package pkgmgr is a thin wrapper around the npm and yarn executables. It
// detects which tool a project uses from its lockfile and spawns
// install/add/remove invocations in the project directory, capturing output
// and surfacing non-zero exits as ProcessError.
package pkgmgr
