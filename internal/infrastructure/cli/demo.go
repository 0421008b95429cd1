package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/intent-apparatus/internal/app"
	"github.com/doeshing/intent-apparatus/internal/application/session"
	"github.com/doeshing/intent-apparatus/internal/infrastructure/actuator"
)

// demoScript walks one phrasing from every category, plus one command the
// interpreter cannot place.
var demoScript = []string{
	"click at 100, 200",
	"double click at 300, 400",
	`type "Hello World"`,
	"press enter",
	"ctrl+c",
	"scroll up 3",
	"move mouse to 500, 600",
	"take a screenshot",
	"invalid command that should fail",
}

func newDemoCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough on the simulated backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), container)
		},
	}
}

// runDemo walks the script through a fresh simulated session, whatever
// actuator mode is configured.
func runDemo(out io.Writer, container *app.Container) error {
	sim := actuator.NewSimulated(container.Config, container.Logger)
	sess, err := session.New(container.Interpreter, sim, container.Logger)
	if err != nil {
		return err
	}

	for i, command := range demoScript {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "> %s\n", command)
		RenderOutcome(out, sess.ProcessCommand(command))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "History:")
	renderHistory(out, sess.HistoryLines())
	return nil
}
