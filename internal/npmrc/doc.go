// Package npmrc owns the in-memory model of a project's package.json. A
// Manager loads the document (or a caller-supplied skeleton), folds plugin
// fragments into it through the merge engine, and serializes it back with a
// stable, conventional key order. Dependency installation is delegated to
// the package-manager wrapper in pkgmgr.
package npmrc
