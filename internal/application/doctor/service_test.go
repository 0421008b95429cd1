package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/intent-apparatus/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

func testConfig(t *testing.T, mode string) domain.Config {
	t.Helper()
	cfg := domain.Config{ConfigFormatVersion: "1"}
	cfg.Actuator.Mode = mode
	cfg.Screenshots.Dir = t.TempDir()
	return cfg
}

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("report has no %q check: %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunAllHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: testConfig(t, domain.ActuatorModeSimulated)},
		ProbeDriver:    func() error { return nil },
		DriverName:     "test driver",
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, name := range []string{"Config file", "Actuator", "Screenshots"} {
		if check := checkByName(t, report, name); check.Status == domain.HealthError {
			t.Errorf("%s check failed: %s", name, check.Details)
		}
	}
	if check := checkByName(t, report, "Actuator"); check.Status != domain.HealthOK {
		t.Errorf("simulated mode check = %+v, want ok", check)
	}
}

func TestRunDriverModeWithoutTools(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: testConfig(t, domain.ActuatorModeDriver)},
		ProbeDriver:    func() error { return errors.New("xdotool not found") },
		DriverName:     "test driver",
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	check := checkByName(t, report, "Actuator")
	if check.Status != domain.HealthError {
		t.Errorf("driver mode without tools = %+v, want error status", check)
	}
}

func TestRunAutoModeDegradesToWarning(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: testConfig(t, domain.ActuatorModeAuto)},
		ProbeDriver:    func() error { return errors.New("no tooling") },
		DriverName:     "test driver",
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	check := checkByName(t, report, "Actuator")
	if check.Status != domain.HealthWarn {
		t.Errorf("auto mode without tools = %+v, want warn status", check)
	}
}

func TestRunConfigFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{err: errors.New("corrupt yaml")},
		ProbeDriver:    func() error { return nil },
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Error("Run() did not surface the config error")
	}
	check := checkByName(t, report, "Config file")
	if check.Status != domain.HealthError {
		t.Errorf("config check = %+v, want error status", check)
	}
}
