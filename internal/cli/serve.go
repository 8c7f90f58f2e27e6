package cli

import (
	"github.com/spf13/cobra"
)

var (
	serveDir  string
	serveHost string
	servePort int
)

func init() {
	serveCmd.Flags().StringVar(&serveDir, "dir", ".", "Project directory")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Dev-server host (overrides project and plugin values)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Dev-server port (overrides project and plugin values)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project with the dev server",
	Long: `Run every plugin's runtime hook to assemble the bundler configuration,
then delegate to the external dev server. Host and port given here take
precedence over plugin-contributed and configured defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(cmd)
		return m.Serve(cmd.Context(), serveDir, serveHost, servePort)
	},
}
