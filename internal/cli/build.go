package cli

import (
	"github.com/spf13/cobra"
)

var buildDir string

func init() {
	buildCmd.Flags().StringVar(&buildDir, "dir", ".", "Project directory")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project",
	Long: `Run every plugin's runtime hook to assemble the bundler configuration,
then delegate to the external bundler for a production build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(cmd)
		return m.Build(cmd.Context(), buildDir)
	},
}
