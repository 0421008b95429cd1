package actuator

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Driver implements ports.Actuator by shelling out to the platform's input
// tooling: xdotool on Linux, cliclick plus osascript on macOS, PowerShell
// on Windows. Construction fails when the tooling is missing so callers can
// fall back to the simulated backend.
//
// The os* methods live in the build-tagged driver_*.go files; everything
// here is platform neutral (bounds checks, messages, pacing).
type Driver struct {
	width    int
	height   int
	pause    time.Duration
	shotsDir string
	logger   ports.Logger
	now      func() time.Time
}

// NewDriver probes the platform tooling and caches the display size.
func NewDriver(cfg domain.Config, logger ports.Logger) (*Driver, error) {
	if err := probeTools(); err != nil {
		return nil, err
	}

	d := &Driver{
		pause:    cfg.Actuator.Pause(),
		shotsDir: cfg.Screenshots.Dir,
		logger:   logger,
		now:      time.Now,
	}

	width, height, err := d.osScreenSize()
	if err != nil {
		logger.Warn("screen size probe failed, using defaults", map[string]interface{}{"error": err.Error()})
		width, height = domain.DefaultScreenWidth, domain.DefaultScreenHeight
	}
	d.width, d.height = width, height

	logger.Info("driver actuator ready", map[string]interface{}{
		"backend": d.Describe(),
		"width":   width,
		"height":  height,
	})
	return d, nil
}

// ClickAt implements ports.Actuator.
func (d *Driver) ClickAt(x, y int, button domain.MouseButton) (domain.ActionResult, error) {
	if !inBounds(x, y, d.width, d.height) {
		return outOfBoundsResult(x, y, domain.ActionTypeClick), nil
	}
	if err := d.osClick(x, y, button); err != nil {
		return domain.ActionResult{}, fmt.Errorf("click at (%d, %d): %w", x, y, err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Clicked at position (%d, %d) with %s button", x, y, button),
		Type:    domain.ActionTypeClick,
	}, nil
}

// TypeText implements ports.Actuator.
func (d *Driver) TypeText(text string) (domain.ActionResult, error) {
	if err := d.osType(text); err != nil {
		return domain.ActionResult{}, fmt.Errorf("type text: %w", err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Typed text: '%s'", text),
		Type:    domain.ActionTypeType,
	}, nil
}

// PressKey implements ports.Actuator.
func (d *Driver) PressKey(key string) (domain.ActionResult, error) {
	if err := d.osKey(key); err != nil {
		return domain.ActionResult{}, fmt.Errorf("press key %s: %w", key, err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Pressed key: %s", key),
		Type:    domain.ActionTypeKeyPress,
	}, nil
}

// PressCombination implements ports.Actuator.
func (d *Driver) PressCombination(first, second string) (domain.ActionResult, error) {
	if err := d.osCombo(first, second); err != nil {
		return domain.ActionResult{}, fmt.Errorf("press combination %s+%s: %w", first, second, err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Pressed key combination: %s+%s", first, second),
		Type:    domain.ActionTypeKeyCombo,
	}, nil
}

// Scroll implements ports.Actuator.
func (d *Driver) Scroll(direction string, amount int) (domain.ActionResult, error) {
	if !validDirection(direction) {
		return invalidDirectionResult(direction), nil
	}
	if err := d.osScroll(strings.ToLower(direction), amount); err != nil {
		return domain.ActionResult{}, fmt.Errorf("scroll %s: %w", direction, err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Scrolled %s %d clicks", direction, amount),
		Type:    domain.ActionTypeScroll,
	}, nil
}

// MoveTo implements ports.Actuator.
func (d *Driver) MoveTo(x, y int) (domain.ActionResult, error) {
	if !inBounds(x, y, d.width, d.height) {
		return outOfBoundsResult(x, y, domain.ActionTypeMouseMove), nil
	}
	if err := d.osMove(x, y); err != nil {
		return domain.ActionResult{}, fmt.Errorf("move to (%d, %d): %w", x, y, err)
	}
	d.settle()
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("Moved mouse to (%d, %d)", x, y),
		Type:    domain.ActionTypeMouseMove,
	}, nil
}

// CaptureScreen implements ports.Actuator.
func (d *Driver) CaptureScreen() (string, error) {
	if d.shotsDir != "" {
		if err := os.MkdirAll(d.shotsDir, domain.DirectoryPermissions); err != nil {
			return "", err
		}
	}
	path := filepath.Join(d.shotsDir, fmt.Sprintf("screenshot_%d.png", d.now().Unix()))
	if err := d.osScreenshot(path); err != nil {
		return "", fmt.Errorf("capture screen: %w", err)
	}
	d.settle()
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

// ScreenSize implements ports.Actuator.
func (d *Driver) ScreenSize() (int, int) {
	return d.width, d.height
}

// Describe implements ports.Actuator.
func (d *Driver) Describe() string {
	return driverDescription
}

// settle gives the desktop time to process the previous event before the
// next one lands.
func (d *Driver) settle() {
	if d.pause > 0 {
		time.Sleep(d.pause)
	}
}

// runCommand executes a tool and folds its combined output into the error.
func runCommand(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// runCommandOutput executes a tool and returns its trimmed stdout.
func runCommandOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

var _ ports.Actuator = (*Driver)(nil)
