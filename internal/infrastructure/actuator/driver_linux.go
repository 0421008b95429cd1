//go:build linux

package actuator

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

const driverDescription = "xdotool driver (linux)"

func probeTools() error {
	if os.Getenv("DISPLAY") == "" {
		return errors.New("DISPLAY is not set; no X session to drive")
	}
	if _, err := exec.LookPath("xdotool"); err != nil {
		return fmt.Errorf("xdotool not found in PATH: %w", err)
	}
	return nil
}

func (d *Driver) osClick(x, y int, button domain.MouseButton) error {
	if err := runCommand("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y)); err != nil {
		return err
	}
	return runCommand("xdotool", "click", xdoButton(button))
}

func (d *Driver) osType(text string) error {
	return runCommand("xdotool", "type", "--delay", "12", "--", text)
}

func (d *Driver) osKey(key string) error {
	return runCommand("xdotool", "key", "--", xdoKey(key))
}

func (d *Driver) osCombo(first, second string) error {
	return runCommand("xdotool", "key", "--", xdoKey(first)+"+"+xdoKey(second))
}

func (d *Driver) osScroll(direction string, amount int) error {
	// Wheel events are buttons 4 and 5 under X11.
	button := "4"
	if direction == "down" {
		button = "5"
	}
	return runCommand("xdotool", "click", "--repeat", strconv.Itoa(amount), button)
}

func (d *Driver) osMove(x, y int) error {
	return runCommand("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y))
}

func (d *Driver) osScreenshot(path string) error {
	type grabber struct {
		name string
		args []string
	}
	for _, g := range []grabber{
		{"gnome-screenshot", []string{"-f", path}},
		{"scrot", []string{path}},
		{"import", []string{"-window", "root", path}},
	} {
		if _, err := exec.LookPath(g.name); err != nil {
			continue
		}
		return runCommand(g.name, g.args...)
	}
	return errors.New("no screenshot tool found (tried gnome-screenshot, scrot, import)")
}

func (d *Driver) osScreenSize() (int, int, error) {
	out, err := runCommandOutput("xdotool", "getdisplaygeometry")
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected display geometry %q", out)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func xdoButton(button domain.MouseButton) string {
	if button == domain.ButtonRight {
		return "3"
	}
	return "1"
}

// xdoKey maps canonical key names onto X11 keysyms.
func xdoKey(key string) string {
	switch key {
	case "enter":
		return "Return"
	case "esc":
		return "Escape"
	case "space":
		return "space"
	case "tab":
		return "Tab"
	case "delete":
		return "Delete"
	case "backspace":
		return "BackSpace"
	case "ctrl":
		return "Control_L"
	case "alt":
		return "Alt_L"
	case "shift":
		return "Shift_L"
	case "winleft", "cmd":
		return "Super_L"
	case "up":
		return "Up"
	case "down":
		return "Down"
	case "left":
		return "Left"
	case "right":
		return "Right"
	case "home":
		return "Home"
	case "end":
		return "End"
	case "pageup":
		return "Page_Up"
	case "pagedown":
		return "Page_Down"
	}
	if len(key) >= 2 && key[0] == 'f' {
		if _, err := strconv.Atoi(key[1:]); err == nil {
			return "F" + key[1:]
		}
	}
	return key
}
