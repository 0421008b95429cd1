// Package session orchestrates the command pipeline: interpret a raw
// command, dispatch the resulting intent to the actuator, and record the
// outcome in the session history.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Service owns one interactive session: the interpreter, the actuator and
// the history log. It is not safe for concurrent callers; hosting surfaces
// serialize access to it.
type Service struct {
	Interpreter ports.Interpreter
	Actuator    ports.Actuator
	History     *domain.History
	Logger      ports.Logger

	// Clock and Sleep are seams for tests. They default to the wall clock.
	Clock func() time.Time
	Sleep func(time.Duration)
}

// New builds a session around the given collaborators.
func New(interpreter ports.Interpreter, actuator ports.Actuator, logger ports.Logger) (*Service, error) {
	if interpreter == nil || actuator == nil || logger == nil {
		return nil, errors.New("session.Service dependencies not satisfied")
	}
	return &Service{
		Interpreter: interpreter,
		Actuator:    actuator,
		History:     domain.NewHistory(),
		Logger:      logger,
		Clock:       time.Now,
		Sleep:       time.Sleep,
	}, nil
}

// ProcessCommand runs the full pipeline for one raw command line. It always
// returns an outcome; failures are reported in the outcome, never raised.
func (s *Service) ProcessCommand(command string) domain.CommandOutcome {
	if strings.TrimSpace(command) == "" {
		return domain.CommandOutcome{Status: domain.StatusError, Message: "Please enter a command."}
	}

	intent, ok := s.Interpreter.Interpret(command)
	if !ok {
		s.Logger.Debug("command not understood", map[string]interface{}{"command": command})
		return domain.CommandOutcome{
			Status:  domain.StatusParseFailed,
			Message: fmt.Sprintf("Could not understand the command: '%s'\n\n%s", command, s.exampleBlock()),
		}
	}

	s.Logger.Info("dispatching action", map[string]interface{}{
		"category":   string(intent.Category),
		"confidence": intent.Confidence,
	})

	result := s.Execute(intent)
	s.History.RecordAt(command, result, s.Clock())

	outcome := domain.CommandOutcome{Message: result.Message}
	if result.Success {
		outcome.Status = domain.StatusSuccess
	} else {
		outcome.Status = domain.StatusError
	}

	if result.Success && followUpShot(intent.Category) {
		path, err := s.Actuator.CaptureScreen()
		if err != nil {
			s.Logger.Warn("follow-up screenshot failed", map[string]interface{}{"error": err.Error()})
		} else {
			outcome.Screenshot = path
		}
	}
	return outcome
}

// Execute dispatches one intent to the actuator. Actuator errors are folded
// into a failure result carrying the intent's category; Execute never
// returns an error.
func (s *Service) Execute(intent domain.Intent) domain.ActionResult {
	result, err := s.dispatch(intent)
	if err != nil {
		s.Logger.Error("action failed", err, map[string]interface{}{
			"category": string(intent.Category),
		})
		return domain.ActionResult{
			Success: false,
			Message: fmt.Sprintf("Execution error: %s", err),
			Type:    domain.ActionType(intent.Category),
		}
	}
	return result
}

func (s *Service) dispatch(intent domain.Intent) (domain.ActionResult, error) {
	switch action := intent.Action.(type) {
	case domain.ClickAction:
		if action.Double {
			// First click's result is discarded, even on failure; the
			// second click's result stands for the pair.
			if _, err := s.Actuator.ClickAt(action.X, action.Y, action.Button); err != nil {
				return domain.ActionResult{}, err
			}
			s.Sleep(domain.DoubleClickDelay)
		}
		return s.Actuator.ClickAt(action.X, action.Y, action.Button)
	case domain.TypeAction:
		return s.Actuator.TypeText(action.Text)
	case domain.PressKeyAction:
		return s.Actuator.PressKey(action.Key)
	case domain.PressComboAction:
		return s.Actuator.PressCombination(action.Keys[0], action.Keys[1])
	case domain.ScrollAction:
		return s.Actuator.Scroll(action.Direction, action.Amount)
	case domain.MoveAction:
		return s.Actuator.MoveTo(action.X, action.Y)
	case domain.ScreenshotAction:
		path, err := s.Actuator.CaptureScreen()
		if err != nil {
			s.Logger.Error("screenshot failed", err, nil)
			return domain.ActionResult{
				Success: false,
				Message: "Failed to take screenshot",
				Type:    domain.ActionTypeScreenshot,
			}, nil
		}
		return domain.ActionResult{
			Success: true,
			Message: fmt.Sprintf("Screenshot saved as %s", path),
			Type:    domain.ActionTypeScreenshot,
		}, nil
	default:
		return domain.ActionResult{
			Success: false,
			Message: fmt.Sprintf("Unknown action type: %s", intent.Category),
			Type:    domain.ActionTypeUnknown,
		}, nil
	}
}

// followUpShot reports whether a category's effect is worth a fresh
// screenshot in the outcome.
func followUpShot(category domain.ActionCategory) bool {
	switch category {
	case domain.CategoryClick, domain.CategoryMove, domain.CategoryScreenshot:
		return true
	}
	return false
}

// exampleBlock renders the first two examples of every category for the
// parse-failure guidance text.
func (s *Service) exampleBlock() string {
	examples := s.Interpreter.Examples()
	var lines []string
	for _, category := range domain.Categories() {
		list := examples[category]
		if len(list) == 0 {
			continue
		}
		if len(list) > 2 {
			list = list[:2]
		}
		lines = append(lines, strings.ToUpper(string(category))+":")
		for _, example := range list {
			lines = append(lines, "  - "+example)
		}
	}
	return "Example commands:\n\n" + strings.Join(lines, "\n")
}

// RecentHistory returns the display window of the history, oldest first.
func (s *Service) RecentHistory() []domain.HistoryEntry {
	return s.History.Recent(domain.HistoryDisplayLimit)
}

// HistoryLines renders the display window as numbered one-line summaries.
func (s *Service) HistoryLines() []string {
	entries := s.RecentHistory()
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		marker := "[ok]"
		if !entry.Result.Success {
			marker = "[fail]"
		}
		lines = append(lines, fmt.Sprintf("%d. %s '%s' - %s", i+1, marker, entry.Command, entry.Result.Message))
	}
	return lines
}

// ClearHistory empties the session history.
func (s *Service) ClearHistory() {
	s.History.Clear()
}

// ScreenInfo reports the actuator's screen dimensions with a display line.
func (s *Service) ScreenInfo() (int, int, string) {
	width, height := s.Actuator.ScreenSize()
	return width, height, fmt.Sprintf("Screen size: %dx%d pixels", width, height)
}

// Examples exposes the interpreter's example catalogue.
func (s *Service) Examples() map[domain.ActionCategory][]string {
	return s.Interpreter.Examples()
}
