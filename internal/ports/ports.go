// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like OS input drivers, HTTP servers, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Interpreter, Actuator)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.apparatus/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Interpreter maps free-form command text onto structured intents via an
// ordered rule table. Interpret reports ok=false when no rule matches or a
// matched rule's extraction fails; it never returns an error and never
// panics on user input.
type Interpreter interface {
	Interpret(command string) (domain.Intent, bool)
	// Examples returns representative commands per category. The catalogue
	// is fixed; callers iterate it with domain.Categories for stable order.
	Examples() map[domain.ActionCategory][]string
}

// Actuator is the capability surface the dispatcher drives. Implementations
// report operational failures (out-of-bounds coordinates, bad scroll
// directions) inside the ActionResult with a nil error; a non-nil error
// stands for a driver-level fault (missing tool, failed process) and is
// converted into a failure result by the dispatcher.
type Actuator interface {
	ClickAt(x, y int, button domain.MouseButton) (domain.ActionResult, error)
	TypeText(text string) (domain.ActionResult, error)
	PressKey(key string) (domain.ActionResult, error)
	PressCombination(first, second string) (domain.ActionResult, error)
	Scroll(direction string, amount int) (domain.ActionResult, error)
	MoveTo(x, y int) (domain.ActionResult, error)
	// CaptureScreen writes a screenshot artifact and returns its path.
	CaptureScreen() (string, error)
	// ScreenSize reports the display dimensions in pixels.
	ScreenSize() (width, height int)
	// Describe names the backend for diagnostics and banners.
	Describe() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
