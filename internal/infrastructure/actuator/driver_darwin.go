//go:build darwin

package actuator

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

const driverDescription = "cliclick driver (darwin)"

func probeTools() error {
	if _, err := exec.LookPath("cliclick"); err != nil {
		return fmt.Errorf("cliclick not found in PATH (brew install cliclick): %w", err)
	}
	// osascript ships with macOS.
	return nil
}

func (d *Driver) osClick(x, y int, button domain.MouseButton) error {
	op := "c"
	if button == domain.ButtonRight {
		op = "rc"
	}
	return runCommand("cliclick", fmt.Sprintf("%s:%d,%d", op, x, y))
}

func (d *Driver) osType(text string) error {
	script := fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, appleScriptEscape(text))
	return runCommand("osascript", "-e", script)
}

func (d *Driver) osKey(key string) error {
	if code, ok := macKeyCodes[key]; ok {
		script := fmt.Sprintf(`tell application "System Events" to key code %d`, code)
		return runCommand("osascript", "-e", script)
	}
	if len(key) == 1 {
		script := fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, appleScriptEscape(key))
		return runCommand("osascript", "-e", script)
	}
	return fmt.Errorf("key %q has no macOS key code", key)
}

func (d *Driver) osCombo(first, second string) error {
	modifier, ok := macModifiers[first]
	if !ok {
		return fmt.Errorf("combination must start with a modifier, got %q", first)
	}
	if code, ok := macKeyCodes[second]; ok {
		script := fmt.Sprintf(`tell application "System Events" to key code %d using %s`, code, modifier)
		return runCommand("osascript", "-e", script)
	}
	script := fmt.Sprintf(`tell application "System Events" to keystroke "%s" using %s`, appleScriptEscape(second), modifier)
	return runCommand("osascript", "-e", script)
}

func (d *Driver) osScroll(direction string, amount int) error {
	// Neither cliclick nor AppleScript exposes wheel events.
	return errors.New("scroll is not supported by the cliclick driver")
}

func (d *Driver) osMove(x, y int) error {
	return runCommand("cliclick", fmt.Sprintf("m:%d,%d", x, y))
}

func (d *Driver) osScreenshot(path string) error {
	return runCommand("screencapture", "-x", path)
}

func (d *Driver) osScreenSize() (int, int, error) {
	out, err := runCommandOutput("osascript", "-e",
		`tell application "Finder" to get bounds of window of desktop`)
	if err != nil {
		return 0, 0, err
	}
	// Bounds come back as "0, 0, 1920, 1080".
	parts := strings.Split(out, ",")
	if len(parts) != 4 {
		return 0, 0, fmt.Errorf("unexpected desktop bounds %q", out)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, err
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func appleScriptEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// macModifiers maps canonical modifier names onto AppleScript "using"
// clauses.
var macModifiers = map[string]string{
	"ctrl":    "control down",
	"alt":     "option down",
	"shift":   "shift down",
	"cmd":     "command down",
	"winleft": "command down",
}

// macKeyCodes maps canonical key names onto System Events key codes.
var macKeyCodes = map[string]int{
	"enter":     36,
	"esc":       53,
	"space":     49,
	"tab":       48,
	"delete":    51,
	"backspace": 51,
	"up":        126,
	"down":      125,
	"left":      123,
	"right":     124,
	"home":      115,
	"end":       119,
	"pageup":    116,
	"pagedown":  121,
	"f1":        122,
	"f2":        120,
	"f3":        99,
	"f4":        118,
	"f5":        96,
	"f6":        97,
	"f7":        98,
	"f8":        100,
	"f9":        101,
	"f10":       109,
	"f11":       103,
	"f12":       111,
}
