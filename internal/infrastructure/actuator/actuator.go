// Package actuator provides the automation backends behind the Actuator
// port: a simulated display for safe operation and a per-OS driver that
// shells out to the platform's native input tooling.
package actuator

import (
	"fmt"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

// ProbeTools reports whether the OS driver's tooling is available on this
// host, without constructing a driver.
func ProbeTools() error { return probeTools() }

// DriverName names the OS driver backend compiled into this binary.
func DriverName() string { return driverDescription }

// inBounds reports whether a point lies on the screen. Both edges are
// inclusive, matching how dimensions are reported to users.
func inBounds(x, y, width, height int) bool {
	return 0 <= x && x <= width && 0 <= y && y <= height
}

func outOfBoundsResult(x, y int, actionType domain.ActionType) domain.ActionResult {
	return domain.ActionResult{
		Success: false,
		Message: fmt.Sprintf("Coordinates (%d, %d) are outside screen bounds", x, y),
		Type:    actionType,
	}
}

// validDirection accepts up and down in any letter case. Direction checking
// lives here rather than in the dispatcher so every backend enforces it the
// same way.
func validDirection(direction string) bool {
	switch strings.ToLower(direction) {
	case "up", "down":
		return true
	}
	return false
}

func invalidDirectionResult(direction string) domain.ActionResult {
	return domain.ActionResult{
		Success: false,
		Message: fmt.Sprintf("Invalid scroll direction: %s", direction),
		Type:    domain.ActionTypeScroll,
	}
}
