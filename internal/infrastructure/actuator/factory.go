package actuator

import (
	"fmt"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// NewFromConfig builds the actuator named by cfg.Actuator.Mode. Auto mode
// tries the OS driver and falls back to the simulated backend when the host
// has no usable automation tooling.
func NewFromConfig(cfg domain.Config, logger ports.Logger) (ports.Actuator, error) {
	switch cfg.Actuator.Mode {
	case "", domain.ActuatorModeAuto:
		driver, err := NewDriver(cfg, logger)
		if err != nil {
			logger.Info("falling back to simulated actuator", map[string]interface{}{
				"reason": err.Error(),
			})
			return NewSimulated(cfg, logger), nil
		}
		return driver, nil
	case domain.ActuatorModeSimulated:
		return NewSimulated(cfg, logger), nil
	case domain.ActuatorModeDriver:
		return NewDriver(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown actuator mode %q", cfg.Actuator.Mode)
	}
}
