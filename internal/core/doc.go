// Package core orchestrates one CLI invocation: it validates create
// requests, owns the working directory, drives the plugin runner's
// construction and runtime passes, and hands the merged outputs to the
// package config manager and the bundler delegate. Steps run in a fixed
// order and stop at the first failure; completed steps are not rolled back.
package core
