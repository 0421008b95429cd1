//go:build windows

package actuator

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

const driverDescription = "powershell driver (windows)"

func probeTools() error {
	if _, err := exec.LookPath("powershell"); err != nil {
		return fmt.Errorf("powershell not found in PATH: %w", err)
	}
	return nil
}

func runPowerShell(script string) error {
	return runCommand("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

func runPowerShellOutput(script string) (string, error) {
	return runCommandOutput("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

const mouseEventPrelude = `Add-Type -MemberDefinition '[DllImport("user32.dll")] public static extern void mouse_event(uint flags, uint dx, uint dy, uint data, int extra); [DllImport("user32.dll")] public static extern bool SetCursorPos(int x, int y);' -Name U32 -Namespace Win;`

func (d *Driver) osClick(x, y int, button domain.MouseButton) error {
	down, up := uint(0x0002), uint(0x0004)
	if button == domain.ButtonRight {
		down, up = 0x0008, 0x0010
	}
	script := fmt.Sprintf(`%s [Win.U32]::SetCursorPos(%d, %d) | Out-Null; [Win.U32]::mouse_event(0x%04X, 0, 0, 0, 0); [Win.U32]::mouse_event(0x%04X, 0, 0, 0, 0)`,
		mouseEventPrelude, x, y, down, up)
	return runPowerShell(script)
}

func (d *Driver) osType(text string) error {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait(%s)`,
		powerShellString(sendKeysEscape(text)))
	return runPowerShell(script)
}

func (d *Driver) osKey(key string) error {
	token, err := sendKeysToken(key)
	if err != nil {
		return err
	}
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait(%s)`,
		powerShellString(token))
	return runPowerShell(script)
}

func (d *Driver) osCombo(first, second string) error {
	prefix, ok := sendKeysModifiers[first]
	if !ok {
		return fmt.Errorf("combination must start with a modifier, got %q", first)
	}
	token, err := sendKeysToken(second)
	if err != nil {
		return err
	}
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait(%s)`,
		powerShellString(prefix+token))
	return runPowerShell(script)
}

func (d *Driver) osScroll(direction string, amount int) error {
	delta := 120 * amount
	if direction == "down" {
		delta = -delta
	}
	script := fmt.Sprintf(`%s [Win.U32]::mouse_event(0x0800, 0, 0, [uint32](%d -band 0xFFFFFFFF), 0)`,
		mouseEventPrelude, delta)
	return runPowerShell(script)
}

func (d *Driver) osMove(x, y int) error {
	script := fmt.Sprintf(`%s [Win.U32]::SetCursorPos(%d, %d) | Out-Null`, mouseEventPrelude, x, y)
	return runPowerShell(script)
}

func (d *Driver) osScreenshot(path string) error {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms,System.Drawing; $b = [System.Windows.Forms.Screen]::PrimaryScreen.Bounds; $bmp = New-Object System.Drawing.Bitmap($b.Width, $b.Height); $g = [System.Drawing.Graphics]::FromImage($bmp); $g.CopyFromScreen($b.Location, [System.Drawing.Point]::Empty, $b.Size); $bmp.Save(%s, [System.Drawing.Imaging.ImageFormat]::Png); $g.Dispose(); $bmp.Dispose()`,
		powerShellString(path))
	return runPowerShell(script)
}

func (d *Driver) osScreenSize() (int, int, error) {
	out, err := runPowerShellOutput(`Add-Type -AssemblyName System.Windows.Forms; $s = [System.Windows.Forms.SystemInformation]::PrimaryMonitorSize; "$($s.Width) $($s.Height)"`)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected monitor size %q", out)
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

// powerShellString quotes s as a single-quoted PowerShell literal.
func powerShellString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// sendKeysEscape wraps the characters SendKeys treats as operators.
func sendKeysEscape(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '+', '^', '%', '~', '(', ')', '{', '}', '[', ']':
			b.WriteRune('{')
			b.WriteRune(r)
			b.WriteRune('}')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var sendKeysModifiers = map[string]string{
	"ctrl":  "^",
	"alt":   "%",
	"shift": "+",
}

func sendKeysToken(key string) (string, error) {
	switch key {
	case "enter":
		return "{ENTER}", nil
	case "esc":
		return "{ESC}", nil
	case "space":
		return " ", nil
	case "tab":
		return "{TAB}", nil
	case "delete":
		return "{DEL}", nil
	case "backspace":
		return "{BS}", nil
	case "up":
		return "{UP}", nil
	case "down":
		return "{DOWN}", nil
	case "left":
		return "{LEFT}", nil
	case "right":
		return "{RIGHT}", nil
	case "home":
		return "{HOME}", nil
	case "end":
		return "{END}", nil
	case "pageup":
		return "{PGUP}", nil
	case "pagedown":
		return "{PGDN}", nil
	case "winleft", "cmd":
		// SendKeys has no Windows-key token; Ctrl+Esc opens the Start menu.
		return "^{ESC}", nil
	case "ctrl", "alt", "shift":
		return "", fmt.Errorf("bare modifier %q cannot be sent through SendKeys", key)
	}
	if len(key) >= 2 && key[0] == 'f' {
		if n, err := strconv.Atoi(key[1:]); err == nil && n >= 1 && n <= 16 {
			return fmt.Sprintf("{F%d}", n), nil
		}
	}
	return sendKeysEscape(key), nil
}
