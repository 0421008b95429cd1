package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/doeshing/intent-apparatus/internal/app"
)

func newTestContainer(t *testing.T) *app.Container {
	t.Helper()
	dir := t.TempDir()
	container, err := app.BuildContainer(context.Background(), app.Options{
		ConfigPath:    filepath.Join(dir, "config.yaml"),
		Simulate:      true,
		ScreenshotDir: filepath.Join(dir, "shots"),
	})
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	return container
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeErr(cmd, args...)
	if err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out
}

func executeErr(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRunCommandExecutes(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newRunCommand(container), "press enter")

	if !strings.Contains(out, "Status: Success") {
		t.Fatalf("missing success status in output:\n%s", out)
	}
	if !strings.Contains(out, "[SIMULATED] Pressed key: enter") {
		t.Fatalf("missing actuator message in output:\n%s", out)
	}
}

func TestRunCommandRendersGuidanceOnParseFailure(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newRunCommand(container), "open the pod bay doors")

	if !strings.Contains(out, "Status: Unable to parse command") {
		t.Fatalf("missing parse-failure status in output:\n%s", out)
	}
	if !strings.Contains(out, "Example commands:") {
		t.Fatalf("missing guidance block in output:\n%s", out)
	}
}

func TestRunCommandParseOnly(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newRunCommand(container), "--parse-only", "click at 100, 200")

	for _, want := range []string{
		"Category: click",
		"Action: click at (100, 200) with left button",
		"Confidence: 0.8",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("parse-only output missing %q:\n%s", want, out)
		}
	}
	if len(container.Session.RecentHistory()) != 0 {
		t.Fatal("parse-only must not execute or record history")
	}
}

func TestRunCommandParseOnlyRejectsGibberish(t *testing.T) {
	container := newTestContainer(t)
	_, err := executeErr(newRunCommand(container), "--parse-only", "do a backflip")
	if err == nil {
		t.Fatal("expected an error for an uninterpretable command")
	}
	if !strings.Contains(err.Error(), "could not understand") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// A clipboard copy that cannot complete (no clipboard tools on the host)
// must not turn a processed command into a failed invocation.
func TestRunCommandCopyFlagNeverFails(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newRunCommand(container), "--copy", "press enter")

	if !strings.Contains(out, "Status: Success") {
		t.Fatalf("missing success status in output:\n%s", out)
	}
}

func TestExamplesCommandListsFullCatalogue(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newExamplesCommand(container))

	for _, header := range []string{"CLICK:", "TYPE:", "KEY:", "SCROLL:", "MOVE:", "SCREENSHOT:"} {
		if !strings.Contains(out, header) {
			t.Errorf("catalogue missing %q section:\n%s", header, out)
		}
	}

	total := 0
	for _, examples := range container.Session.Examples() {
		total += len(examples)
	}
	if got := strings.Count(out, "  - "); got != total {
		t.Fatalf("catalogue shows %d examples, want %d", got, total)
	}
	if !strings.HasPrefix(out, "CLICK:") {
		t.Fatalf("catalogue must start with the click section:\n%s", out)
	}
}

func TestScreenCommand(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newScreenCommand(container))

	if !strings.Contains(out, "Screen size: 1920x1080 pixels") {
		t.Fatalf("missing screen info:\n%s", out)
	}
	if !strings.Contains(out, "Backend: simulated display (1920x1080)") {
		t.Fatalf("missing backend description:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, newVersionCommand())
	if !strings.Contains(out, "Intent Apparatus version") {
		t.Fatalf("missing version banner:\n%s", out)
	}
	if !strings.Contains(out, "Go version: go") {
		t.Fatalf("missing go version:\n%s", out)
	}
}

func TestDoctorCommandReportsChecks(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newDoctorCommand(container))

	if !strings.Contains(out, "[OK] Config file") {
		t.Fatalf("missing config check:\n%s", out)
	}
	if !strings.Contains(out, "Actuator") {
		t.Fatalf("missing actuator check:\n%s", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newConfigCommand(container), "show")

	if !strings.Contains(out, "config_format_version:") {
		t.Fatalf("missing format version in output:\n%s", out)
	}
	// The file keeps mode auto; --simulate only overrides the session.
	if !strings.Contains(out, "mode: auto") {
		t.Fatalf("expected configured mode auto:\n%s", out)
	}
}

func TestConfigGetSetRoundTrip(t *testing.T) {
	container := newTestContainer(t)

	execute(t, newConfigCommand(container), "set", "actuator.mode", "simulated")
	out := execute(t, newConfigCommand(container), "get", "--key", "actuator.mode")

	if strings.TrimSpace(out) != "simulated" {
		t.Fatalf("get returned %q, want simulated", strings.TrimSpace(out))
	}
}

func TestConfigGetUnknownKey(t *testing.T) {
	container := newTestContainer(t)
	_, err := executeErr(newConfigCommand(container), "get", "--key", "no.such.key")
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestDemoCommandWalksScript(t *testing.T) {
	container := newTestContainer(t)
	out := execute(t, newDemoCommand(container))

	for _, command := range demoScript {
		if !strings.Contains(out, "> "+command) {
			t.Errorf("demo output missing script line %q", command)
		}
	}
	if !strings.Contains(out, "Status: Unable to parse command") {
		t.Fatalf("demo must show the parse-failure path:\n%s", out)
	}
	if !strings.Contains(out, "History:") {
		t.Fatalf("demo must close with the history window:\n%s", out)
	}
	// Eight of nine script lines parse; the walkthrough history shows them all.
	if !strings.Contains(out, "8. [ok]") {
		t.Fatalf("expected eight recorded commands:\n%s", out)
	}
	if len(container.Session.RecentHistory()) != 0 {
		t.Fatal("demo must run in its own session, not the live one")
	}
}

func TestReplScannerSession(t *testing.T) {
	container := newTestContainer(t)
	in := strings.NewReader("press enter\nhistory\nquit\nignored after quit\n")
	var out bytes.Buffer

	if err := runReplScanner(in, &out, container); err != nil {
		t.Fatalf("runReplScanner() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Intent Apparatus REPL") {
		t.Fatalf("missing banner:\n%s", got)
	}
	if !strings.Contains(got, "[SIMULATED] Pressed key: enter") {
		t.Fatalf("missing command result:\n%s", got)
	}
	if !strings.Contains(got, "1. [ok] 'press enter' - [SIMULATED] Pressed key: enter") {
		t.Fatalf("missing history line:\n%s", got)
	}
	if strings.Contains(got, "ignored after quit") {
		t.Fatalf("loop kept reading after quit:\n%s", got)
	}
}

func TestReplKeywords(t *testing.T) {
	container := newTestContainer(t)
	var out bytes.Buffer

	handled, quit := replKeyword(&out, container, "history")
	if !handled || quit {
		t.Fatalf("history: handled=%v quit=%v", handled, quit)
	}
	if !strings.Contains(out.String(), "No commands executed yet.") {
		t.Fatalf("missing empty-history notice:\n%s", out.String())
	}

	out.Reset()
	handled, quit = replKeyword(&out, container, "EXIT")
	if !handled || !quit {
		t.Fatalf("exit: handled=%v quit=%v", handled, quit)
	}

	handled, _ = replKeyword(&out, container, "screenshot")
	if handled {
		t.Fatal("screenshot is a command, not a keyword")
	}
}

func TestRootCommandDispatchesBareArgs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPARATUS_CONFIG", filepath.Join(dir, "config.yaml"))

	root := NewRootCmd(Options{})
	out := execute(t, root,
		"--simulate", "--screenshot-dir", filepath.Join(dir, "shots"),
		"click", "at", "100,", "200")

	if !strings.Contains(out, "Status: Success") {
		t.Fatalf("missing success status:\n%s", out)
	}
	if !strings.Contains(out, "[SIMULATED] Clicked at position (100, 200) with left button") {
		t.Fatalf("missing click result:\n%s", out)
	}
}

func TestRootCommandSubcommandRouting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APPARATUS_CONFIG", filepath.Join(dir, "config.yaml"))

	root := NewRootCmd(Options{})
	out := execute(t, root,
		"--simulate", "--screenshot-dir", filepath.Join(dir, "shots"),
		"screen")

	if !strings.Contains(out, "Screen size: 1920x1080 pixels") {
		t.Fatalf("screen subcommand did not run:\n%s", out)
	}
}
