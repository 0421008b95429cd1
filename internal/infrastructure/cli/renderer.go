package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// RenderOutcome prints a processed command outcome in a friendly,
// ASCII-only format.
func RenderOutcome(out io.Writer, outcome domain.CommandOutcome) {
	fmt.Fprintf(out, "Status: %s\n", outcome.Status)
	fmt.Fprintln(out, outcome.Message)
	if outcome.Screenshot != "" {
		fmt.Fprintf(out, "Follow-up screenshot: %s\n", outcome.Screenshot)
	}
}

// renderExampleCatalogue prints every recognized phrasing, grouped by
// category in rule order.
func renderExampleCatalogue(out io.Writer, examples map[domain.ActionCategory][]string) {
	for i, category := range domain.Categories() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", strings.ToUpper(string(category)))
		for _, example := range examples[category] {
			fmt.Fprintf(out, "  - %s\n", example)
		}
	}
}

// renderHistory prints numbered history lines, or the empty-state notice.
func renderHistory(out io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(out, "No commands executed yet.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

// renderIntent prints what a command parses into without executing it.
func renderIntent(out io.Writer, intent domain.Intent) {
	fmt.Fprintf(out, "Category: %s\n", intent.Category)
	fmt.Fprintf(out, "Action: %s\n", describeAction(intent.Action))
	fmt.Fprintf(out, "Confidence: %.1f\n", intent.Confidence)
}

func describeAction(action domain.Action) string {
	switch a := action.(type) {
	case domain.ClickAction:
		kind := "click"
		if a.Double {
			kind = "double click"
		}
		return fmt.Sprintf("%s at (%d, %d) with %s button", kind, a.X, a.Y, a.Button)
	case domain.TypeAction:
		return fmt.Sprintf("type %q", a.Text)
	case domain.PressKeyAction:
		return fmt.Sprintf("press %s", a.Key)
	case domain.PressComboAction:
		return fmt.Sprintf("press %s+%s", a.Keys[0], a.Keys[1])
	case domain.ScrollAction:
		return fmt.Sprintf("scroll %s by %d", a.Direction, a.Amount)
	case domain.MoveAction:
		return fmt.Sprintf("move to (%d, %d)", a.X, a.Y)
	case domain.ScreenshotAction:
		return "capture the screen"
	default:
		return "unknown"
	}
}
