package cli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/doeshing/intent-apparatus/internal/app"
)

// Launcher menu entries.
const (
	launchServe  = "Web control panel"
	launchRepl   = "Interactive REPL"
	launchDemo   = "Scripted demo"
	launchDoctor = "Doctor"
	launchQuit   = "Quit"
)

// runLauncher shows the menu used when apparatus is invoked bare in a
// terminal.
func runLauncher(cmd *cobra.Command, container *app.Container) error {
	prompt := promptui.Select{
		Label: "Intent Apparatus",
		Items: []string{launchServe, launchRepl, launchDemo, launchDoctor, launchQuit},
	}
	_, choice, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return nil
		}
		return fmt.Errorf("launcher selection: %w", err)
	}

	switch choice {
	case launchServe:
		return runServe(cmd.Context(), cmd.OutOrStdout(), container, "")
	case launchRepl:
		return runReplTUI(container)
	case launchDemo:
		return runDemo(cmd.OutOrStdout(), container)
	case launchDoctor:
		report, err := container.DoctorService.Run(cmd.Context())
		renderDoctorReport(cmd.OutOrStdout(), report)
		return err
	}
	return nil
}
