package actuator

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Simulated implements ports.Actuator without touching the OS input stack.
// Actions are acknowledged as if they ran, with the same bounds and
// direction checks the real driver applies. Screenshots produce a real
// placeholder image so artifact paths always resolve for viewers.
type Simulated struct {
	width    int
	height   int
	shotsDir string
	logger   ports.Logger
	now      func() time.Time
}

// NewSimulated builds a simulated actuator sized from configuration.
func NewSimulated(cfg domain.Config, logger ports.Logger) *Simulated {
	width := cfg.Actuator.Screen.Width
	height := cfg.Actuator.Screen.Height
	if width <= 0 || height <= 0 {
		width, height = domain.DefaultScreenWidth, domain.DefaultScreenHeight
	}
	logger.Info("simulated screen ready", map[string]interface{}{"width": width, "height": height})
	return &Simulated{
		width:    width,
		height:   height,
		shotsDir: cfg.Screenshots.Dir,
		logger:   logger,
		now:      time.Now,
	}
}

// ClickAt implements ports.Actuator.
func (s *Simulated) ClickAt(x, y int, button domain.MouseButton) (domain.ActionResult, error) {
	if !inBounds(x, y, s.width, s.height) {
		return outOfBoundsResult(x, y, domain.ActionTypeClick), nil
	}
	s.logger.Debug("simulated click", map[string]interface{}{"x": x, "y": y, "button": string(button)})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Clicked at position (%d, %d) with %s button", x, y, button),
		Type:    domain.ActionTypeClick,
	}, nil
}

// TypeText implements ports.Actuator.
func (s *Simulated) TypeText(text string) (domain.ActionResult, error) {
	s.logger.Debug("simulated typing", map[string]interface{}{"length": len(text)})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Typed text: '%s'", text),
		Type:    domain.ActionTypeType,
	}, nil
}

// PressKey implements ports.Actuator.
func (s *Simulated) PressKey(key string) (domain.ActionResult, error) {
	s.logger.Debug("simulated key press", map[string]interface{}{"key": key})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Pressed key: %s", key),
		Type:    domain.ActionTypeKeyPress,
	}, nil
}

// PressCombination implements ports.Actuator.
func (s *Simulated) PressCombination(first, second string) (domain.ActionResult, error) {
	s.logger.Debug("simulated key combination", map[string]interface{}{"first": first, "second": second})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Pressed key combination: %s+%s", first, second),
		Type:    domain.ActionTypeKeyCombo,
	}, nil
}

// Scroll implements ports.Actuator.
func (s *Simulated) Scroll(direction string, amount int) (domain.ActionResult, error) {
	if !validDirection(direction) {
		return invalidDirectionResult(direction), nil
	}
	s.logger.Debug("simulated scroll", map[string]interface{}{"direction": direction, "amount": amount})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Scrolled %s %d clicks", direction, amount),
		Type:    domain.ActionTypeScroll,
	}, nil
}

// MoveTo implements ports.Actuator.
func (s *Simulated) MoveTo(x, y int) (domain.ActionResult, error) {
	if !inBounds(x, y, s.width, s.height) {
		return outOfBoundsResult(x, y, domain.ActionTypeMouseMove), nil
	}
	s.logger.Debug("simulated mouse move", map[string]interface{}{"x": x, "y": y})
	return domain.ActionResult{
		Success: true,
		Message: fmt.Sprintf("[SIMULATED] Moved mouse to (%d, %d)", x, y),
		Type:    domain.ActionTypeMouseMove,
	}, nil
}

// CaptureScreen implements ports.Actuator. The artifact is a uniform frame
// at the simulated resolution.
func (s *Simulated) CaptureScreen() (string, error) {
	if s.shotsDir != "" {
		if err := os.MkdirAll(s.shotsDir, domain.DirectoryPermissions); err != nil {
			return "", err
		}
	}
	path := filepath.Join(s.shotsDir, fmt.Sprintf("mock_screenshot_%d.png", s.now().Unix()))
	if err := writePlaceholderPNG(path, s.width, s.height); err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	s.logger.Debug("simulated screenshot", map[string]interface{}{"path": path})
	return path, nil
}

// ScreenSize implements ports.Actuator.
func (s *Simulated) ScreenSize() (int, int) {
	return s.width, s.height
}

// Describe implements ports.Actuator.
func (s *Simulated) Describe() string {
	return fmt.Sprintf("simulated display (%dx%d)", s.width, s.height)
}

func writePlaceholderPNG(path string, width, height int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0x2e
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ ports.Actuator = (*Simulated)(nil)
