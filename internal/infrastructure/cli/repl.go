package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/intent-apparatus/internal/app"
)

func newReplCommand(container *app.Container) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive command session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !plain && isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
				return runReplTUI(container)
			}
			return runReplScanner(cmd.InOrStdin(), cmd.OutOrStdout(), container)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Line-oriented mode without the terminal UI")
	return cmd
}

// runReplScanner is the line-oriented loop used for piped input and --plain.
func runReplScanner(in io.Reader, out io.Writer, container *app.Container) error {
	_, _, info := container.Session.ScreenInfo()
	fmt.Fprintf(out, "Intent Apparatus REPL. Backend: %s. %s\n", container.Actuator.Describe(), info)
	fmt.Fprintln(out, `Type a command, or "help" for the keywords.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		handled, quit := replKeyword(out, container, line)
		if quit {
			return nil
		}
		if handled {
			continue
		}
		RenderOutcome(out, container.Session.ProcessCommand(line))
	}
}

// replKeyword handles the session keywords. It reports whether the line was
// consumed and whether the loop should end.
func replKeyword(out io.Writer, container *app.Container, line string) (handled, quit bool) {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true, true
	case "help":
		fmt.Fprintln(out, "Keywords: history, clear, examples, screen, help, quit")
		fmt.Fprintln(out, "Anything else is interpreted as an automation command.")
		return true, false
	case "history":
		renderHistory(out, container.Session.HistoryLines())
		return true, false
	case "clear":
		container.Session.ClearHistory()
		fmt.Fprintln(out, "History cleared.")
		return true, false
	case "examples":
		renderExampleCatalogue(out, container.Session.Examples())
		return true, false
	case "screen":
		_, _, info := container.Session.ScreenInfo()
		fmt.Fprintln(out, info)
		return true, false
	}
	return false, false
}
