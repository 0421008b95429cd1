package domain

import (
	"fmt"
	"time"
)

// Pause returns the settle delay applied after each driver input action.
func (a ActuatorSettings) Pause() time.Duration {
	if a.PauseMS <= 0 {
		return 0
	}
	return time.Duration(a.PauseMS) * time.Millisecond
}

// KnownActuatorMode reports whether mode names a recognized backend.
func KnownActuatorMode(mode string) bool {
	switch mode {
	case ActuatorModeAuto, ActuatorModeSimulated, ActuatorModeDriver:
		return true
	default:
		return false
	}
}

// Valid reports whether the dimensions describe a usable display.
func (s ScreenSettings) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// ValidateConsistency checks the internal consistency of the configuration.
// It expects a hydrated config; zero values that hydration would have filled
// are reported as errors.
func (c Config) ValidateConsistency() error {
	if c.ConfigFormatVersion != "1" {
		return fmt.Errorf("unsupported config_format_version %q", c.ConfigFormatVersion)
	}
	if !KnownActuatorMode(c.Actuator.Mode) {
		return fmt.Errorf("actuator.mode must be auto|simulated|driver, got %q", c.Actuator.Mode)
	}
	if c.Actuator.PauseMS < 0 {
		return fmt.Errorf("actuator.pause_ms must be >= 0, got %d", c.Actuator.PauseMS)
	}
	if !c.Actuator.Screen.Valid() {
		return fmt.Errorf("actuator.screen must have positive dimensions, got %dx%d",
			c.Actuator.Screen.Width, c.Actuator.Screen.Height)
	}
	if c.Screenshots.Dir == "" {
		return fmt.Errorf("screenshots.dir must be set")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must be set")
	}
	return nil
}
