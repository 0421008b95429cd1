package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/doeshing/intent-apparatus/internal/domain"
	"github.com/doeshing/intent-apparatus/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider

	// ProbeDriver reports whether the OS driver's tooling is present;
	// DriverName names that backend. Both are injected so this package
	// stays free of platform code.
	ProbeDriver func() error
	DriverName  string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.actuatorCheck(cfg))
	checks = append(checks, displayCheck())
	checks = append(checks, screenshotDirCheck(cfg.Screenshots.Dir))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) actuatorCheck(cfg domain.Config) domain.HealthCheck {
	probe := s.ProbeDriver
	if probe == nil {
		return warn("Actuator", "driver probe not wired")
	}

	switch cfg.Actuator.Mode {
	case domain.ActuatorModeSimulated:
		return ok("Actuator", "simulated mode, no OS tooling required")
	case domain.ActuatorModeDriver:
		if err := probe(); err != nil {
			return fail("Actuator", fmt.Sprintf("%s unavailable: %v", s.DriverName, err))
		}
		return ok("Actuator", fmt.Sprintf("%s ready", s.DriverName))
	default:
		if err := probe(); err != nil {
			return warn("Actuator", fmt.Sprintf("auto mode will simulate: %v", err))
		}
		return ok("Actuator", fmt.Sprintf("auto mode will drive via %s", s.DriverName))
	}
}

func displayCheck() domain.HealthCheck {
	if runtime.GOOS != "linux" {
		return ok("Display", fmt.Sprintf("no X session required on %s", runtime.GOOS))
	}
	if display := os.Getenv("DISPLAY"); display != "" {
		return ok("Display", fmt.Sprintf("DISPLAY=%s", display))
	}
	return warn("Display", "DISPLAY is not set; X11 automation and screenshots will not work")
}

func screenshotDirCheck(dir string) domain.HealthCheck {
	if dir == "" {
		return warn("Screenshots", "no directory configured")
	}
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return fail("Screenshots", fmt.Sprintf("cannot create %s: %v", dir, err))
	}
	probe := filepath.Join(dir, ".writecheck")
	if err := os.WriteFile(probe, []byte("ok"), domain.SecureFilePermissions); err != nil {
		return fail("Screenshots", fmt.Sprintf("cannot write to %s: %v", dir, err))
	}
	os.Remove(probe)
	return ok("Screenshots", fmt.Sprintf("%s writable", dir))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
