package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webforge-labs/webforge/internal/bundler"
	"github.com/webforge-labs/webforge/internal/config"
	"github.com/webforge-labs/webforge/internal/core"
	"github.com/webforge-labs/webforge/internal/pkgmgr"
	"github.com/webforge-labs/webforge/internal/plugin"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	createType        string
	createDir         string
	createPlugins     []string
	createAnswers     []string
	createSkipInstall bool
)

func init() {
	createCmd.Flags().StringVar(&createType, "type", "", "Project type: "+strings.Join(core.ServiceNames(), "|"))
	createCmd.Flags().StringVar(&createDir, "dir", "", "Target directory (default: ./<name>)")
	createCmd.Flags().StringArrayVar(&createPlugins, "plugin", nil, "Extra plugin to apply (repeatable)")
	createCmd.Flags().StringArrayVar(&createAnswers, "answer", nil, "Force an inquiry answer as key=value (repeatable)")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Skip dependency installation")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project from a template",
	Long: `Create a new project: scaffold its source tree, run each plugin's
construction hook to assemble package.json, and install dependencies.

Examples:
  webforge create my-app --type app
  webforge create my-lib --type lib --plugin typescript --skip-install
  webforge create my-app --type app --answer eslint.config=standard`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid project name %q: use lowercase letters, digits, and hyphens", name)
		}

		if v := core.ValidateCreateCommand(core.CreateArgs{Type: createType}); !v.Validated {
			return errors.New(v.Message)
		}

		answers, err := parseAnswers(createAnswers)
		if err != nil {
			return err
		}

		extra := make([]plugin.Descriptor, 0, len(createPlugins))
		for _, p := range createPlugins {
			extra = append(extra, plugin.Descriptor{Name: p})
		}

		m := newManager(cmd)
		err = m.Create(cmd.Context(), name, core.CreateOptions{
			Type:        createType,
			Dir:         createDir,
			Plugins:     extra,
			Answers:     answers,
			SkipInstall: createSkipInstall,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s project %q.\n", createType, name)
		if createSkipInstall {
			fmt.Fprintln(cmd.OutOrStdout(), "Run your package manager's install before building.")
		}
		return nil
	},
}

// parseAnswers turns repeated key=value flags into an override map.
func parseAnswers(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	answers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --answer %q: expected key=value", pair)
		}
		answers[k] = v
	}
	return answers, nil
}

// newManager builds a core.Manager from the user's settings and the
// command's I/O streams.
func newManager(cmd *cobra.Command) *core.Manager {
	settings := config.LoadSettings()
	return &core.Manager{
		PackageManager: pkgmgr.Tool(settings.PackageManager),
		DevServer:      bundler.DevServer{Host: settings.Host, Port: settings.Port},
		Delegate: &bundler.ProcessDelegate{
			Command: settings.BundlerCommand,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		},
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
