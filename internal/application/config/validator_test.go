package config_test

import (
	"strings"
	"testing"

	configapp "github.com/doeshing/intent-apparatus/internal/application/config"
	"github.com/doeshing/intent-apparatus/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Actuator: domain.ActuatorSettings{
			Mode:    domain.ActuatorModeAuto,
			PauseMS: 100,
			Screen:  domain.ScreenSettings{Width: 1920, Height: 1080},
		},
		Screenshots: domain.ScreenshotSettings{Dir: "/tmp/apparatus-shots"},
		Server:      domain.ServerSettings{Addr: "127.0.0.1:8741"},
	}
}

func TestValidateAcceptsHydratedConfig(t *testing.T) {
	if err := configapp.Validate(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantMsg string
	}{
		{
			name:    "unsupported format version",
			mutate:  func(c *domain.Config) { c.ConfigFormatVersion = "2" },
			wantMsg: "config_format_version",
		},
		{
			name:    "unknown actuator mode",
			mutate:  func(c *domain.Config) { c.Actuator.Mode = "telekinesis" },
			wantMsg: "actuator.mode",
		},
		{
			name:    "negative pause",
			mutate:  func(c *domain.Config) { c.Actuator.PauseMS = -5 },
			wantMsg: "pause_ms",
		},
		{
			name:    "zero screen dimensions",
			mutate:  func(c *domain.Config) { c.Actuator.Screen = domain.ScreenSettings{} },
			wantMsg: "actuator.screen",
		},
		{
			name:    "missing screenshots dir",
			mutate:  func(c *domain.Config) { c.Screenshots.Dir = "" },
			wantMsg: "screenshots.dir",
		},
		{
			name:    "addr without port",
			mutate:  func(c *domain.Config) { c.Server.Addr = "127.0.0.1" },
			wantMsg: "server.addr",
		},
		{
			name:    "port out of range",
			mutate:  func(c *domain.Config) { c.Server.Addr = "127.0.0.1:99999" },
			wantMsg: "1-65535",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := configapp.Validate(cfg)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
