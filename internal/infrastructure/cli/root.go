package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/intent-apparatus/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built in
// PersistentPreRunE, after persistent flags are parsed, and copied into the
// shared struct every subcommand closes over.
func NewRootCmd(opts Options) *cobra.Command {
	container := &app.Container{}

	var (
		verbose       = opts.Verbose
		configPath    string
		simulate      bool
		screenshotDir string
	)

	root := &cobra.Command{
		Use:   "apparatus [command text]",
		Short: "Intent Apparatus - natural language desktop automation",
		Long: "Intent Apparatus interprets natural language commands (click, type,\n" +
			"press, scroll, move, screenshot) and drives the desktop through an\n" +
			"automation backend. Run with a command to execute it once, or bare\n" +
			"in a terminal for the launcher.",
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				Verbose:       verbose,
				ConfigPath:    configPath,
				Simulate:      simulate,
				ScreenshotDir: screenshotDir,
			})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runOnce(cmd, container, strings.Join(args, " "), false, false)
			}
			if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
				return runLauncher(cmd, container)
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", opts.Verbose, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.apparatus/config.yaml)")
	root.PersistentFlags().BoolVar(&simulate, "simulate", false, "Force the simulated actuator")
	root.PersistentFlags().StringVar(&screenshotDir, "screenshot-dir", "", "Directory for screenshot artifacts")

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newReplCommand(container))
	root.AddCommand(newDemoCommand(container))
	root.AddCommand(newServeCommand(container))
	root.AddCommand(newExamplesCommand(container))
	root.AddCommand(newScreenCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newVersionCommand())
	return root
}
