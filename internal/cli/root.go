package cli

import (
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "webforge",
	Short: "Scaffold and run front-end projects with a plugin-composed configuration",
	Long: `webforge creates new front-end projects from templates, merges
plugin-contributed configuration (package.json fields, bundler fragments)
into one consistent result, and delegates building and serving to an
external bundler.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
